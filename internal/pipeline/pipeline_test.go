package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/yuyakanda/slidecast/internal/config"
	"github.com/yuyakanda/slidecast/internal/deck"
	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/internal/pptx"
	"github.com/yuyakanda/slidecast/internal/pptx/pptxtest"
	"github.com/yuyakanda/slidecast/pkg/lecture"
)

type fakeOutline struct {
	outline   string
	structure *lecture.Structure
	details   []lecture.DetailLevel
}

func (f *fakeOutline) Generate(ctx context.Context, lectureText string, detail lecture.DetailLevel) (string, error) {
	f.details = append(f.details, detail)
	return f.outline, nil
}

func (f *fakeOutline) ToStructure(ctx context.Context, outlineText string) (*lecture.Structure, error) {
	return f.structure, nil
}

func TestProcess(t *testing.T) {
	inputDir := t.TempDir()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Paths.Output = t.TempDir()
	cfg.Paths.Archived = t.TempDir()
	cfg.Deck.Template = pptxtest.WriteTemplate(t)

	svc := &fakeOutline{
		outline: "# 講義の概要\n- はじめに\n- まとめ",
		structure: &lecture.Structure{
			Title:  "機械学習入門",
			Agenda: []string{"はじめに", "まとめ"},
			Main: map[string][]string{
				"はじめに": {"導入の本文です。"},
				"まとめ":  {"まとめの本文です。"},
			},
		},
	}
	log := logger.NewWithWriter(io.Discard, "error")
	proc := New(cfg, svc, deck.New(log), log)

	lecturePath := filepath.Join(inputDir, "ml_basics.txt")
	if err := os.WriteFile(lecturePath, []byte("今日は機械学習の話をします。"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := proc.Process(context.Background(), lecturePath); err != nil {
		t.Fatalf("Process() error: %v", err)
	}

	// Watch mode always generates the standard outline.
	if len(svc.details) != 1 || svc.details[0] != lecture.DetailStandard {
		t.Errorf("detail levels = %v", svc.details)
	}

	outlineData, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "ml_basics_outline.txt"))
	if err != nil {
		t.Fatalf("outline artifact: %v", err)
	}
	if string(outlineData) != svc.outline {
		t.Errorf("outline artifact = %q", outlineData)
	}

	st, err := lecture.Load(filepath.Join(cfg.Paths.Output, "ml_basics.json"))
	if err != nil {
		t.Fatalf("structure artifact: %v", err)
	}
	if st.Title != "機械学習入門" {
		t.Errorf("structure title = %q", st.Title)
	}

	p, err := pptx.Open(filepath.Join(cfg.Paths.Output, "ml_basics.pptx"))
	if err != nil {
		t.Fatalf("deck artifact: %v", err)
	}
	if got := p.SlideCount(); got != 5 {
		t.Errorf("deck has %d slides, want 5", got)
	}

	// Input is archived, not left in the watched folder.
	if _, err := os.Stat(lecturePath); !os.IsNotExist(err) {
		t.Errorf("lecture still present in input dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "ml_basics.txt")); err != nil {
		t.Errorf("lecture not archived: %v", err)
	}
}

func TestProcessMissingFile(t *testing.T) {
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Paths.Output = t.TempDir()
	cfg.Paths.Archived = t.TempDir()

	log := logger.NewWithWriter(io.Discard, "error")
	proc := New(cfg, &fakeOutline{}, deck.New(log), log)

	err := proc.Process(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Process() should fail on a missing lecture file")
	}
}
