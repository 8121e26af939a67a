package lecture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSlideCounts(t *testing.T) {
	tests := []struct {
		name        string
		structure   Structure
		wantContent int
		wantTotal   int
	}{
		{
			name: "every agenda item has bodies",
			structure: Structure{
				Title:  "機械学習の基礎",
				Agenda: []string{"導入", "手法", "評価"},
				Main: map[string][]string{
					"導入": {"a"},
					"手法": {"b", "c"},
					"評価": {"d", "e", "f"},
				},
			},
			wantContent: 6,
			wantTotal:   9,
		},
		{
			name: "agenda item missing from main contributes nothing",
			structure: Structure{
				Title:  "t",
				Agenda: []string{"導入", "手法"},
				Main: map[string][]string{
					"導入": {"a", "b"},
				},
			},
			wantContent: 2,
			wantTotal:   5,
		},
		{
			name: "main keys not in agenda are ignored",
			structure: Structure{
				Title:  "t",
				Agenda: []string{"導入"},
				Main: map[string][]string{
					"導入": {"a"},
					"余分": {"x", "y"},
				},
			},
			wantContent: 1,
			wantTotal:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.structure.ContentSlideCount(); got != tt.wantContent {
				t.Errorf("ContentSlideCount() = %d, want %d", got, tt.wantContent)
			}
			if got := tt.structure.TotalSlideCount(); got != tt.wantTotal {
				t.Errorf("TotalSlideCount() = %d, want %d", got, tt.wantTotal)
			}
		})
	}
}

func TestSaveKeepsJapaneseReadable(t *testing.T) {
	s := &Structure{
		Title:  "機械学習の基礎",
		Agenda: []string{"導入"},
		Main:   map[string][]string{"導入": {"• 機械学習とは"}},
	}

	path := filepath.Join(t.TempDir(), "structure.json")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	text := string(data)
	if !strings.Contains(text, "機械学習の基礎") {
		t.Errorf("saved JSON should keep UTF-8 text readable, got:\n%s", text)
	}
	if !strings.Contains(text, "\n  \"agenda\"") {
		t.Errorf("saved JSON should be indented with two spaces, got:\n%s", text)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Title != s.Title {
		t.Errorf("Title = %q, want %q", loaded.Title, s.Title)
	}
	if len(loaded.Main["導入"]) != 1 {
		t.Errorf("Main round trip lost bodies: %v", loaded.Main)
	}
}

func TestLoadRejectsIncompleteStructure(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing title", `{"agenda": ["a"], "main": {"a": ["x"]}}`},
		{"empty agenda", `{"title": "t", "agenda": [], "main": {}}`},
		{"missing main", `{"title": "t", "agenda": ["a"]}`},
		{"not json", `タイトル: 機械学習`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "structure.json")
			if err := os.WriteFile(path, []byte(tt.json), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should reject incomplete structure")
			}
		})
	}
}

func TestParseDetailLevel(t *testing.T) {
	if _, err := ParseDetailLevel("standard"); err != nil {
		t.Errorf("standard should parse: %v", err)
	}
	if _, err := ParseDetailLevel("detailed"); err != nil {
		t.Errorf("detailed should parse: %v", err)
	}
	if _, err := ParseDetailLevel("verbose"); err == nil {
		t.Error("unknown level should be rejected")
	}
}
