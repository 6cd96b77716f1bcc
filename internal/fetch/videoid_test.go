package fetch

import "testing"

func TestResolveVideoID(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"bare id", "GJLlxj_dtq8", "GJLlxj_dtq8"},
		{"bare id padded", "  GJLlxj_dtq8 ", "GJLlxj_dtq8"},
		{"watch url", "https://www.youtube.com/watch?v=GJLlxj_dtq8", "GJLlxj_dtq8"},
		{"watch url extra params", "https://www.youtube.com/watch?t=10&v=GJLlxj_dtq8&list=x", "GJLlxj_dtq8"},
		{"short link", "https://youtu.be/GJLlxj_dtq8", "GJLlxj_dtq8"},
		{"short link with query", "https://youtu.be/GJLlxj_dtq8?t=30", "GJLlxj_dtq8"},
		{"embed url", "https://www.youtube.com/embed/GJLlxj_dtq8", "GJLlxj_dtq8"},
		{"shorts url", "https://www.youtube.com/shorts/GJLlxj_dtq8", "GJLlxj_dtq8"},
		{"live url", "https://www.youtube.com/live/GJLlxj_dtq8", "GJLlxj_dtq8"},
		{"v path", "https://youtube.com/v/GJLlxj_dtq8", "GJLlxj_dtq8"},
		{"no scheme", "youtube.com/watch?v=GJLlxj_dtq8", "GJLlxj_dtq8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveVideoID(tt.target)
			if err != nil {
				t.Fatalf("ResolveVideoID(%q): %v", tt.target, err)
			}
			if got != tt.want {
				t.Errorf("ResolveVideoID(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestResolveVideoIDRejects(t *testing.T) {
	for _, target := range []string{
		"",
		"short",
		"https://example.com/watch?v=GJLlxj_dtq8x_not_youtube",
		"https://www.youtube.com/watch?v=tooshort",
		"twelve_chars",
	} {
		if got, err := ResolveVideoID(target); err == nil {
			t.Errorf("ResolveVideoID(%q) = %q, want error", target, got)
		}
	}
}
