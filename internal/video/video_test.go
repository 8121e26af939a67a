package video

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuyakanda/slidecast/internal/config"
	"github.com/yuyakanda/slidecast/internal/logger"
	"github.com/yuyakanda/slidecast/internal/pptx"
	"github.com/yuyakanda/slidecast/internal/pptx/pptxtest"
)

// fakeExecutor records every invocation. ffprobe reports a fixed
// duration; the concat list is captured at call time, before the temp
// dir is removed.
type fakeExecutor struct {
	t          *testing.T
	calls      [][]string
	concatList string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if name == "ffprobe" {
		return "2.5\n", nil
	}
	if name == "ffmpeg" && contains(args, "concat") {
		data, err := os.ReadFile(flagValue(args, "-i"))
		if err != nil {
			f.t.Fatalf("read concat list: %v", err)
		}
		f.concatList = string(data)
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) clipCalls() [][]string {
	var clips [][]string
	for _, call := range f.calls {
		if call[0] == "ffmpeg" && contains(call, "-loop") {
			clips = append(clips, call)
		}
	}
	return clips
}

type fakeSpeaker struct {
	texts []string
}

func (f *fakeSpeaker) Synthesize(ctx context.Context, text, outputPath string) error {
	f.texts = append(f.texts, text)
	return os.WriteFile(outputPath, []byte("RIFF"), 0644)
}

func contains(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasPair(args []string, flag, value string) bool {
	for i, a := range args {
		if a == flag && i+1 < len(args) && args[i+1] == value {
			return true
		}
	}
	return false
}

func newTestGenerator(t *testing.T, exec *fakeExecutor, speaker *fakeSpeaker) Generator {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return New(cfg, speaker, exec, logger.NewWithWriter(io.Discard, "error"))
}

// writeDeck builds a deck whose slides carry the given notes; an empty
// string leaves that slide without notes.
func writeDeck(t *testing.T, notes []string) string {
	t.Helper()
	p, err := pptx.Open(pptxtest.WriteTemplate(t))
	if err != nil {
		t.Fatalf("open template: %v", err)
	}
	for i, note := range notes {
		if err := p.AddSlide(1, nil); err != nil {
			t.Fatalf("add slide: %v", err)
		}
		if note != "" {
			if err := p.SetNotesText(i, note); err != nil {
				t.Fatalf("set notes: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := p.Save(path); err != nil {
		t.Fatalf("save deck: %v", err)
	}
	return path
}

func writeZip(t *testing.T, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slides.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractImagesOrderAndFiltering(t *testing.T) {
	zipPath := writeZip(t, map[string][]byte{
		"スライド10.jpeg":         []byte("ten"),
		"スライド2.jpeg":          []byte("two"),
		"folder/":             nil,
		"__MACOSX/スライド1.jpeg": []byte("meta"),
		"sub/.hidden.jpeg":    []byte("hidden"),
		"カバー.jpeg":            []byte("no number"),
		"readme.txt":          []byte("text"),
	})

	paths, err := extractImages(zipPath, t.TempDir())
	if err != nil {
		t.Fatalf("extractImages() error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("extracted %d images, want 2: %v", len(paths), paths)
	}

	// Numeric order: slide 2 before slide 10.
	want := []string{"two", "ten"}
	for i, w := range want {
		data, err := os.ReadFile(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != w {
			t.Errorf("image %d = %q, want %q", i, data, w)
		}
	}
}

func TestGenerate(t *testing.T) {
	exec := &fakeExecutor{t: t}
	speaker := &fakeSpeaker{}
	gen := newTestGenerator(t, exec, speaker)

	deckPath := writeDeck(t, []string{"こんにちは、今日の講義を始めます。", ""})
	zipPath := writeZip(t, map[string][]byte{
		"スライド1.jpeg": []byte("one"),
		"スライド2.jpeg": []byte("two"),
	})
	outPath := filepath.Join(t.TempDir(), "lecture.mp4")

	var steps []string
	progress := func(step string, current, total int) {
		steps = append(steps, fmt.Sprintf("%d/%d %s", current, total, step))
	}

	count, err := gen.Generate(context.Background(), deckPath, zipPath, outPath, progress)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if count != 2 {
		t.Errorf("Generate() = %d slides, want 2", count)
	}

	if len(speaker.texts) != 1 || speaker.texts[0] != "こんにちは、今日の講義を始めます。" {
		t.Errorf("synthesized texts = %v", speaker.texts)
	}

	clips := exec.clipCalls()
	if len(clips) != 2 {
		t.Fatalf("clip invocations = %d, want 2", len(clips))
	}

	// Slide 1: narrated, probed duration drives -t.
	if !hasPair(clips[0], "-t", "2.5") {
		t.Errorf("narrated clip args = %v", clips[0])
	}
	if contains(clips[0], "anullsrc=channel_layout=mono:sample_rate=48000") {
		t.Error("narrated clip should not use a silent source")
	}

	// Slide 2: silent fallback at the configured length.
	if !contains(clips[1], "anullsrc=channel_layout=mono:sample_rate=48000") {
		t.Errorf("silent clip args = %v", clips[1])
	}
	if !hasPair(clips[1], "-t", "3") {
		t.Errorf("silent clip args = %v", clips[1])
	}

	// Final concat joins both clips in order, stream copied.
	last := exec.calls[len(exec.calls)-1]
	if last[0] != "ffmpeg" || !contains(last, "concat") || !hasPair(last, "-c", "copy") {
		t.Errorf("last call = %v", last)
	}
	if last[len(last)-1] != outPath {
		t.Errorf("concat output = %q, want %q", last[len(last)-1], outPath)
	}
	lines := strings.Split(strings.TrimSpace(exec.concatList), "\n")
	if len(lines) != 2 {
		t.Fatalf("concat list = %q", exec.concatList)
	}
	if !strings.Contains(lines[0], "slide_001.mp4") || !strings.Contains(lines[1], "slide_002.mp4") {
		t.Errorf("concat list order = %q", exec.concatList)
	}

	wantSteps := []string{
		"0/1 Extracting speaker notes",
		"0/1 Extracting slide images",
		"1/3 Slide 1/2: generating audio",
		"2/3 Slide 2/2: creating silent clip",
		"3/3 Combining clips",
		"3/3 Done",
	}
	if len(steps) != len(wantSteps) {
		t.Fatalf("progress steps = %v", steps)
	}
	for i, w := range wantSteps {
		if steps[i] != w {
			t.Errorf("steps[%d] = %q, want %q", i, steps[i], w)
		}
	}
}

func TestGenerateSlideCountMismatch(t *testing.T) {
	exec := &fakeExecutor{t: t}
	speaker := &fakeSpeaker{}
	gen := newTestGenerator(t, exec, speaker)

	deckPath := writeDeck(t, []string{"原稿"})
	zipPath := writeZip(t, map[string][]byte{
		"スライド1.jpeg": []byte("one"),
		"スライド2.jpeg": []byte("two"),
	})

	_, err := gen.Generate(context.Background(), deckPath, zipPath,
		filepath.Join(t.TempDir(), "lecture.mp4"), nil)
	if err == nil {
		t.Fatal("Generate() should fail on a slide count mismatch")
	}
	if !strings.Contains(err.Error(), "slide count mismatch") {
		t.Errorf("unexpected error: %v", err)
	}

	// The mismatch is caught before any synthesis or encoding.
	if len(speaker.texts) != 0 {
		t.Errorf("speaker invoked %d times, want 0", len(speaker.texts))
	}
	if len(exec.calls) != 0 {
		t.Errorf("executor invoked %d times, want 0: %v", len(exec.calls), exec.calls)
	}
}

func TestGenerateNoImages(t *testing.T) {
	exec := &fakeExecutor{t: t}
	speaker := &fakeSpeaker{}
	gen := newTestGenerator(t, exec, speaker)

	deckPath := writeDeck(t, []string{"原稿"})
	zipPath := writeZip(t, map[string][]byte{"readme.txt": []byte("not an image")})

	_, err := gen.Generate(context.Background(), deckPath, zipPath,
		filepath.Join(t.TempDir(), "lecture.mp4"), nil)
	if err == nil {
		t.Fatal("Generate() should fail when the archive has no slide images")
	}
	if !strings.Contains(err.Error(), "no slide images") {
		t.Errorf("unexpected error: %v", err)
	}
}
