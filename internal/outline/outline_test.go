package outline

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/pkg/lecture"
)

type fakeLLM struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeLLM) CompleteVision(ctx context.Context, png []byte, instruction string) (string, error) {
	return "", errors.New("not used here")
}

func quietLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

func TestGenerateDetailInstruction(t *testing.T) {
	tests := []struct {
		detail lecture.DetailLevel
		want   string
	}{
		{lecture.DetailStandard, "要件（標準版）"},
		{lecture.DetailDetailed, "要件（詳細版）"},
	}
	for _, tt := range tests {
		fake := &fakeLLM{reply: "タイトル: テスト講義"}
		svc := New(fake, quietLogger())

		if _, err := svc.Generate(context.Background(), "量子計算の入門講義", tt.detail); err != nil {
			t.Fatalf("Generate(%s) error: %v", tt.detail, err)
		}
		if len(fake.prompts) != 1 {
			t.Fatalf("Generate(%s) made %d calls, want 1", tt.detail, len(fake.prompts))
		}
		if !strings.Contains(fake.prompts[0], tt.want) {
			t.Errorf("prompt for %s does not carry %q", tt.detail, tt.want)
		}
		if !strings.Contains(fake.prompts[0], "量子計算の入門講義") {
			t.Errorf("prompt for %s does not carry the input text", tt.detail)
		}
	}
}

func TestGenerateStripsFence(t *testing.T) {
	fake := &fakeLLM{reply: "```\nタイトル: テスト\n\nアジェンダ:\n1. はじめに\n```"}
	svc := New(fake, quietLogger())

	got, err := svc.Generate(context.Background(), "テキスト", lecture.DetailStandard)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if strings.Contains(got, "```") {
		t.Errorf("fence not stripped: %q", got)
	}
	if !strings.HasPrefix(got, "タイトル:") {
		t.Errorf("unexpected outline start: %q", got)
	}
}

func TestToStructure(t *testing.T) {
	fake := &fakeLLM{reply: "```json\n" + `{
  "title": "機械学習の基礎",
  "agenda": ["機械学習とは", "代表的なアルゴリズム", "モデル評価"],
  "main": {
    "機械学習とは": ["- 定義\n- 実用例", "- 教師あり学習\n- 教師なし学習"],
    "代表的なアルゴリズム": ["- 線形回帰\n- 決定木"],
    "モデル評価": ["- 交差検証"]
  }
}` + "\n```"}
	svc := New(fake, quietLogger())

	st, err := svc.ToStructure(context.Background(), "タイトル: 機械学習の基礎 ...")
	if err != nil {
		t.Fatalf("ToStructure() error: %v", err)
	}
	if st.Title != "機械学習の基礎" {
		t.Errorf("Title = %q", st.Title)
	}
	if len(st.Agenda) != 3 {
		t.Fatalf("len(Agenda) = %d, want 3", len(st.Agenda))
	}
	if got := st.ContentSlideCount(); got != 4 {
		t.Errorf("ContentSlideCount() = %d, want 4", got)
	}
	if got := st.TotalSlideCount(); got != 7 {
		t.Errorf("TotalSlideCount() = %d, want 7", got)
	}
}

func TestToStructureRejectsNonJSON(t *testing.T) {
	fake := &fakeLLM{reply: "すみません、変換できませんでした。"}
	svc := New(fake, quietLogger())

	_, err := svc.ToStructure(context.Background(), "壊れたアウトライン")
	if err == nil {
		t.Fatal("ToStructure() should fail on a non-JSON reply")
	}
	if !strings.Contains(err.Error(), "すみません") {
		t.Errorf("error should surface the reply, got: %v", err)
	}
}

func TestToStructureRejectsIncomplete(t *testing.T) {
	fake := &fakeLLM{reply: `{"title": "講義", "agenda": []}`}
	svc := New(fake, quietLogger())

	if _, err := svc.ToStructure(context.Background(), "アウトライン"); err == nil {
		t.Fatal("ToStructure() should fail on an incomplete structure")
	}
}

func TestToStructureSurfacesLLMError(t *testing.T) {
	fake := &fakeLLM{err: errors.New("rate limited")}
	svc := New(fake, quietLogger())

	if _, err := svc.ToStructure(context.Background(), "アウトライン"); err == nil {
		t.Fatal("ToStructure() should surface completion errors")
	}
}
