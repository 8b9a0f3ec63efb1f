package match

import "testing"

func TestSplitVersion(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCore    string
		wantVersion string
	}{
		{"empty", "", "", ""},
		{"no version info", "Plain Song", "Plain Song", ""},
		{"parenthesized mix", "Song (Extended Mix)", "Song", "Extended Mix"},
		{"bracketed edit", "Track [Radio Edit]", "Track", "Radio Edit"},
		{"remix with artist", "Song (Artist Remix)", "Song", "Artist Remix"},
		{"non-version group kept", "Song (Part II)", "Song (Part II)", ""},
		{"live descriptor", "Song (Live)", "Song", "Live"},
		{"multiple groups", "Song (feat. Guest) (Club Mix)", "Song (feat. Guest)", "Club Mix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, version := SplitVersion(tt.input)
			if core != tt.wantCore || version != tt.wantVersion {
				t.Errorf("SplitVersion(%q) = (%q, %q), want (%q, %q)",
					tt.input, core, version, tt.wantCore, tt.wantVersion)
			}
		})
	}
}

func TestCoreTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"radio edit", "Track [Radio Edit]", "track"},
		{"extended mix", "Song (Extended Mix)", "song"},
		{"unbracketed original mix", "Song Original Mix", "song"},
		{"unbracketed extended mix", "Song Extended Mix", "song"},
		{"no version keyword", "Plain Song", "plain song"},
		{"url stripped before extraction", "Song www.promo.example (Club Mix)", "song"},
		{"normalization applied", "Sông (VIP)", "song"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoreTitle(tt.input); got != tt.want {
				t.Errorf("CoreTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
