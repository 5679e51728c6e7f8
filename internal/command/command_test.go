package command

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    Kind
	}{
		{"review all", "gemini review all", KindAll},
		{"review diff", "gemini review diff", KindDiff},
		{"suggest", "gemini suggest next steps", KindSuggest},
		{"case insensitive", "Gemini Review ALL", KindAll},
		{"leading whitespace", "  gemini review all please", KindAll},
		{"unrecognized defaults to diff", "lgtm", KindDiff},
		{"empty defaults to diff", "", KindDiff},
		{"command must be a prefix", "please gemini review all", KindDiff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.comment); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.comment, got, tt.want)
			}
		})
	}
}
