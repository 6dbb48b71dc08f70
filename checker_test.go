package passcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEvaluate_EmptyPassword(t *testing.T) {
	c := New(nil)
	res := c.Evaluate("")

	if res.Score != 0 {
		t.Errorf("expected score 0, got %d", res.Score)
	}
	if res.Rating != RatingVeryWeak {
		t.Errorf("expected rating %q, got %q", RatingVeryWeak, res.Rating)
	}
	if res.EntropyBits != 0 {
		t.Errorf("expected 0 entropy bits, got %v", res.EntropyBits)
	}
	wantIssues := []string{"Password is empty."}
	if !reflect.DeepEqual(res.Issues, wantIssues) {
		t.Errorf("issues = %v, want %v", res.Issues, wantIssues)
	}
	if len(res.Suggestions) != 1 {
		t.Errorf("expected exactly one suggestion, got %v", res.Suggestions)
	}
}

func TestEvaluate_ScoreBounds(t *testing.T) {
	c := New(nil)

	passwords := []string{
		"",
		"a",
		"password",
		"P@ssw0rd",
		"qwerty1234",
		"aaaa",
		"abcd1234",
		"x",
		strings.Repeat("a", 300),
		"Zk9#mWq2!vLr$Tx8&Yp4",
		"日本語パスワード",
		"password123!qwerty",
	}

	for _, pw := range passwords {
		res := c.Evaluate(pw)
		if res.Score < 0 || res.Score > 100 {
			t.Errorf("Evaluate(%q) score %d out of [0,100]", pw, res.Score)
		}
		if res.EntropyBits < 0 {
			t.Errorf("Evaluate(%q) negative entropy %v", pw, res.EntropyBits)
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	c := New(nil)

	for _, pw := range []string{"", "password", "Tr0ub4dor&3", "abcd1234"} {
		first := c.Evaluate(pw)
		second := c.Evaluate(pw)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Evaluate(%q) not deterministic:\n%+v\n%+v", pw, first, second)
		}
	}
}

func TestEvaluate_CommonPassword(t *testing.T) {
	c := New(nil)

	// "P@ssw0rd" normalizes to "password", which is in the seed list and
	// takes the full -40 exact-match penalty.
	res := c.Evaluate("P@ssw0rd")

	found := false
	for _, issue := range res.Issues {
		if issue == "Appears in common password lists." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected common-password issue for P@ssw0rd, got %v", res.Issues)
	}
	if res.Rating == RatingStrong || res.Rating == RatingVeryStrong {
		t.Errorf("P@ssw0rd should not rate %q (score %d)", res.Rating, res.Score)
	}
}

func TestEvaluate_CommonSubstring(t *testing.T) {
	c := New(nil)

	res := c.Evaluate("Xpassword99$k")
	found := false
	for _, issue := range res.Issues {
		if issue == "Contains a common password word/pattern." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected common-substring issue, got %v", res.Issues)
	}
}

func TestEvaluate_SequencePenalizedOnce(t *testing.T) {
	c := New(nil)

	// "abcd1234" trips both the monotonic detector (abcd, 1234) and the
	// keyboard detector (1234); the penalty must still apply exactly once.
	res := c.Evaluate("abcd1234")

	count := 0
	for _, issue := range res.Issues {
		if issue == "Contains an easy sequence (keyboard or ordered characters)." {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one sequence issue, got %d (%v)", count, res.Issues)
	}

	// Scored by hand: 8 chars (+10), lower+digit (+20), sequence (-15),
	// word+digits template (-10), entropy < 50 bits (-10) = -5, clamped to 0.
	if res.Score != 0 {
		t.Errorf("abcd1234 score = %d, want 0", res.Score)
	}
	if res.Rating != RatingVeryWeak {
		t.Errorf("abcd1234 rating = %q, want %q", res.Rating, RatingVeryWeak)
	}
}

func TestEvaluate_RepeatedRun(t *testing.T) {
	c := New(nil)

	res := c.Evaluate("aaaa1234XY")
	want := "Contains repeated characters (e.g., '****')."
	found := false
	for _, issue := range res.Issues {
		if issue == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in issues, got %v", want, res.Issues)
	}
}

func TestEvaluate_VeryStrong(t *testing.T) {
	c := New(nil)

	// 20 chars, all four classes, no common words, sequences or repeats.
	// Entropy = 20 * log2(95) ≈ 131 bits, so: 40 + 40 + 10 = 90.
	res := c.Evaluate("Zk9#mWq2!vLr$Tx8&Yp4")

	if res.Score < 85 {
		t.Errorf("expected score >= 85, got %d (issues: %v)", res.Score, res.Issues)
	}
	if res.Rating != RatingVeryStrong {
		t.Errorf("expected rating %q, got %q", RatingVeryStrong, res.Rating)
	}
	if res.EntropyBits < 80 {
		t.Errorf("expected >= 80 entropy bits, got %v", res.EntropyBits)
	}
}

func TestEvaluate_MissingListFallsBack(t *testing.T) {
	dict := LoadDictionary(filepath.Join(t.TempDir(), "no-such-file.txt"))
	c := New(dict)

	// "letmein" is only in the built-in seed; it must still be flagged.
	res := c.Evaluate("letmein")
	found := false
	for _, issue := range res.Issues {
		if issue == "Appears in common password lists." {
			found = true
		}
	}
	if !found {
		t.Errorf("seed fallback lost: letmein not flagged, issues %v", res.Issues)
	}
}

func TestEvaluate_SubstringScanCapped(t *testing.T) {
	// Build a supplemental list with 6000 non-matching filler words before a
	// word that would match; entries past the cap must never be inspected.
	path := filepath.Join(t.TempDir(), "big_list.txt")
	var b strings.Builder
	for i := 0; i < 6000; i++ {
		fmt.Fprintf(&b, "fillerword%06d\n", i)
	}
	b.WriteString("zzyzxroad\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	dict := LoadDictionary(path)
	if dict.Len() <= maxSubstringScan {
		t.Fatalf("test list too small: %d entries", dict.Len())
	}

	c := New(dict)
	res := c.Evaluate("Kzzyzxroad88#Q")
	for _, issue := range res.Issues {
		if issue == "Contains a common password word/pattern." {
			t.Errorf("entry beyond the %d-entry cap was scanned", maxSubstringScan)
		}
	}
}

func TestEvaluate_SuggestionsDeduped(t *testing.T) {
	c := New(nil)
	res := c.Evaluate("abc")

	seen := make(map[string]bool)
	for _, s := range res.Suggestions {
		if seen[s] {
			t.Errorf("duplicate suggestion %q", s)
		}
		seen[s] = true
	}
}

func TestRatingFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, RatingVeryWeak},
		{29, RatingVeryWeak},
		{30, RatingWeak},
		{49, RatingWeak},
		{50, RatingModerate},
		{69, RatingModerate},
		{70, RatingStrong},
		{84, RatingStrong},
		{85, RatingVeryStrong},
		{100, RatingVeryStrong},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score_%d", tt.score), func(t *testing.T) {
			if got := RatingFromScore(tt.score); got != tt.want {
				t.Errorf("RatingFromScore(%d) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}

	// Monotonic: rating never gets weaker as the score rises.
	order := map[string]int{
		RatingVeryWeak:   0,
		RatingWeak:       1,
		RatingModerate:   2,
		RatingStrong:     3,
		RatingVeryStrong: 4,
	}
	prev := 0
	for score := 0; score <= 100; score++ {
		cur := order[RatingFromScore(score)]
		if cur < prev {
			t.Fatalf("rating regressed at score %d", score)
		}
		prev = cur
	}
}
