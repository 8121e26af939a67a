package lecture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// DetailLevel controls how verbose the generated outline is.
type DetailLevel string

const (
	DetailStandard DetailLevel = "standard"
	DetailDetailed DetailLevel = "detailed"
)

// ParseDetailLevel validates a user-supplied detail level string.
func ParseDetailLevel(s string) (DetailLevel, error) {
	switch DetailLevel(s) {
	case DetailStandard, DetailDetailed:
		return DetailLevel(s), nil
	default:
		return "", fmt.Errorf("unknown detail level %q (expected %q or %q)", s, DetailStandard, DetailDetailed)
	}
}

// Structure is the strict form of a lecture produced by the outline
// converter and consumed by the deck builder. Agenda defines both the
// slide order and the lookup keys into Main; an agenda entry that is
// not a key in Main contributes zero content slides.
type Structure struct {
	Title  string              `json:"title"`
	Agenda []string            `json:"agenda"`
	Main   map[string][]string `json:"main"`
}

// Validate checks that all three fields are populated.
func (s *Structure) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("structure is missing a title")
	}
	if len(s.Agenda) == 0 {
		return fmt.Errorf("structure has an empty agenda")
	}
	if s.Main == nil {
		return fmt.Errorf("structure is missing the main section")
	}
	return nil
}

// ContentSlideCount returns the number of content slides the deck
// builder will emit: one per body text, walked in agenda order.
func (s *Structure) ContentSlideCount() int {
	count := 0
	for _, item := range s.Agenda {
		if bodies, ok := s.Main[item]; ok {
			count += len(bodies)
		}
	}
	return count
}

// TotalSlideCount returns the full deck size: title and closing slides,
// one agenda slide, plus the content slides.
func (s *Structure) TotalSlideCount() int {
	return 2 + 1 + s.ContentSlideCount()
}

// Save writes the structure as human-readable JSON: two-space indent,
// UTF-8 text kept as-is so Japanese titles stay inspectable.
func (s *Structure) Save(path string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode structure: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write structure: %w", err)
	}
	return nil
}

// Load reads a structure previously written by Save (or edited by hand).
func Load(path string) (*Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read structure: %w", err)
	}
	var s Structure
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse structure: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
