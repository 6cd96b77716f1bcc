package language

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Code
		ok       bool
	}{
		{"en", "en", true},
		{"fr", "fr", true},
		{"zh", "zh", true},
		{"iw", "iw", true},
		{"fil", "fil", true},
		{"vi", "vi", true},
		{" en ", "en", true},
		{"EN", "", false},
		{"eng", "", false},
		{"english", "", false},
		{"xx", "", false},
		{"zh-Hans", "", false},
		{"", "", false},
		{" ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, err := Parse(tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
				}
				if code != tt.expected {
					t.Errorf("Parse(%q) = %q, want %q", tt.input, code, tt.expected)
				}
				return
			}
			if err == nil {
				t.Errorf("Parse(%q) = %q, want error", tt.input, code)
			}
		})
	}
}

func TestDefaultIsSupported(t *testing.T) {
	if !IsSupported(string(Default)) {
		t.Fatalf("default code %q not in supported set", Default)
	}
}

func TestSupported(t *testing.T) {
	all := Supported()
	if len(all) != 47 {
		t.Fatalf("Supported() returned %d codes, want 47", len(all))
	}
	seen := make(map[Code]struct{}, len(all))
	for _, c := range all {
		if _, dup := seen[c]; dup {
			t.Errorf("Supported() lists %q twice", c)
		}
		seen[c] = struct{}{}
	}
	if _, ok := seen["en"]; !ok {
		t.Error("Supported() missing en")
	}

	// Returned slice must be a copy; callers can reorder it freely.
	all[0] = "zz"
	if Supported()[0] == "zz" {
		t.Error("Supported() exposes internal slice")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{"en", "English"},
		{"de", "German"},
		{"fr", "French"},
		{"ja", "Japanese"},
		{"iw", "Hebrew"},
		{"fil", "Filipino"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.code, got, tt.expected)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"", "Unknown"},
		{"!!bad!!", "!!bad!!"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Describe(tt.input); got != tt.expected {
				t.Errorf("Describe(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}

	// Regional variants resolve to something more specific than the raw code.
	if got := Describe("zh-Hans"); got == "zh-Hans" || got == "" {
		t.Errorf("Describe(%q) = %q, want a resolved display name", "zh-Hans", got)
	}
}
