package llm

import "testing"

func TestStripFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare text untouched",
			input: "タイトル: 機械学習の基礎",
			want:  "タイトル: 機械学習の基礎",
		},
		{
			name:  "plain fence",
			input: "```\nタイトル: 機械学習\nアジェンダ:\n```",
			want:  "タイトル: 機械学習\nアジェンダ:",
		},
		{
			name:  "json fence",
			input: "```json\n{\"title\": \"t\"}\n```",
			want:  "{\"title\": \"t\"}",
		},
		{
			name:  "fence with surrounding whitespace",
			input: "  ```json\n{}\n```  ",
			want:  "{}",
		},
		{
			name:  "single line fence",
			input: "```json {\"title\": \"t\"}```",
			want:  "{\"title\": \"t\"}",
		},
		{
			name:  "no closing fence",
			input: "```\n{\"title\": \"t\"}",
			want:  "{\"title\": \"t\"}",
		},
		{
			name:  "empty reply",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFence(tt.input); got != tt.want {
				t.Errorf("StripFence(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
