package textnorm

import (
	"reflect"
	"testing"
)

func TestArxivIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"prefix form", "arXiv:2401.12345", []string{"2401.12345"}},
		{"abs url", "https://arxiv.org/abs/2401.12345", []string{"2401.12345"}},
		{"pdf url", "https://arxiv.org/pdf/2401.12345", []string{"2401.12345"}},
		{"bare id", "2401.12345", []string{"2401.12345"}},
		{"multiple", "arXiv:2401.12345, arXiv:2402.00001", []string{"2401.12345", "2402.00001"}},
		{"duplicates dropped", "2401.12345, arXiv:2401.12345", []string{"2401.12345"}},
		{"doi skipped", "https://doi.org/10.1038/2401.12345", nil},
		{"unrelated url skipped", "https://example.com/2401.12345", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArxivIDs(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ArxivIDs(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://vimeo.com/12345", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := YouTubeID(tt.input); got != tt.want {
			t.Errorf("YouTubeID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
