package passcheck

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"leet classic", "P@ssw0rd", "password"},
		{"dollar and bang", "pa$$w0rd!", "passwordi"},
		{"digits as letters", "5up3r7", "supert"},
		{"trims whitespace", "  hello  ", "hello"},
		{"lowercases", "ADMIN", "admin"},
		{"untouched", "plainword", "plainword"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.password); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.password, got, tt.want)
			}
		})
	}
}

func TestNormalize_MatchesSeedList(t *testing.T) {
	// The round-trip that justifies the normalizer: a leet-spelled common
	// password must land exactly on its dictionary entry.
	d := NewDictionary()
	if !d.Contains(Normalize("P@ssw0rd")) {
		t.Error("Normalize(P@ssw0rd) should hit the seed list")
	}
	if !d.Contains(Normalize("qw3rty")) {
		t.Error("Normalize(qw3rty) should hit the seed list")
	}
}
