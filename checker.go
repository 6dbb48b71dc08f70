package passcheck

import (
	"fmt"
	"math"
	"strings"
)

// Rating labels, ordered weakest to strongest.
const (
	RatingVeryWeak   = "Very Weak"
	RatingWeak       = "Weak"
	RatingModerate   = "Moderate"
	RatingStrong     = "Strong"
	RatingVeryStrong = "Very Strong"
)

// Result is the outcome of evaluating one password. Issues appear in
// detection order; suggestions are de-duplicated preserving first occurrence.
type Result struct {
	Score       int      `json:"score"`
	Rating      string   `json:"rating"`
	EntropyBits float64  `json:"entropy_bits"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Checker evaluates password strength against a common-password dictionary.
// It is stateless apart from the dictionary, which is read-only after
// construction, so a single Checker is safe for concurrent use.
type Checker struct {
	dict *Dictionary
}

// New creates a Checker backed by dict. A nil dict means seed list only.
func New(dict *Dictionary) *Checker {
	if dict == nil {
		dict = NewDictionary()
	}
	return &Checker{dict: dict}
}

// evalContext carries the per-password inputs shared by all scoring rules.
type evalContext struct {
	password   string
	lower      string
	normalized string
	classes    charClasses
	entropy    float64
	dict       *Dictionary
}

// contribution is one rule's output: a signed score delta plus any issue and
// suggestion texts it wants appended.
type contribution struct {
	delta       int
	issues      []string
	suggestions []string
}

// rule is a pure scoring step. Rules run in a fixed order; the order only
// affects issue/suggestion text ordering since deltas are summed.
type rule func(*evalContext) contribution

var scoringRules = []rule{
	scoreLength,
	scoreVariety,
	penalizeCommonPassword,
	penalizeCommonSubstring,
	penalizeSequences,
	penalizeRepeats,
	penalizeTemplate,
	adjustForEntropy,
}

// Evaluate scores a password and returns the full assessment. It is total
// over arbitrary string input, including empty and non-ASCII passwords, and
// never returns an error.
func (c *Checker) Evaluate(password string) Result {
	if password == "" {
		return Result{
			Score:       0,
			Rating:      RatingVeryWeak,
			EntropyBits: 0,
			Issues:      []string{"Password is empty."},
			Suggestions: []string{"Enter a password with at least 12–16 characters."},
		}
	}

	ctx := &evalContext{
		password:   password,
		lower:      strings.ToLower(password),
		normalized: Normalize(password),
		classes:    classesOf(password),
		entropy:    EstimateEntropy(password),
		dict:       c.dict,
	}

	score := 0
	var issues, suggestions []string
	for _, r := range scoringRules {
		contrib := r(ctx)
		score += contrib.delta
		issues = append(issues, contrib.issues...)
		suggestions = append(suggestions, contrib.suggestions...)
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Score:       score,
		Rating:      RatingFromScore(score),
		EntropyBits: math.Round(ctx.entropy*100) / 100,
		Issues:      issues,
		Suggestions: dedupe(suggestions),
	}
}

// RatingFromScore maps a clamped score to its label using fixed thresholds.
func RatingFromScore(score int) string {
	switch {
	case score >= 85:
		return RatingVeryStrong
	case score >= 70:
		return RatingStrong
	case score >= 50:
		return RatingModerate
	case score >= 30:
		return RatingWeak
	default:
		return RatingVeryWeak
	}
}

// scoreLength awards up to 40 points for length, the heaviest single signal.
func scoreLength(ctx *evalContext) contribution {
	length := len(ctx.password)
	switch {
	case length >= 16:
		return contribution{delta: 40}
	case length >= 12:
		return contribution{delta: 30}
	case length >= 10:
		return contribution{delta: 20}
	case length >= 8:
		return contribution{delta: 10}
	}
	return contribution{
		issues:      []string{"Too short (aim for at least 12 characters)."},
		suggestions: []string{"Use 12–16+ characters (a passphrase works well)."},
	}
}

// scoreVariety awards 10 points per character class present and flags each
// absent class. Class detection always looks at the raw password.
func scoreVariety(ctx *evalContext) contribution {
	c := contribution{delta: ctx.classes.count() * 10}
	if !ctx.classes.lower {
		c.issues = append(c.issues, "No lowercase letters.")
		c.suggestions = append(c.suggestions, "Add lowercase letters (a–z).")
	}
	if !ctx.classes.upper {
		c.issues = append(c.issues, "No uppercase letters.")
		c.suggestions = append(c.suggestions, "Add uppercase letters (A–Z).")
	}
	if !ctx.classes.digit {
		c.issues = append(c.issues, "No digits.")
		c.suggestions = append(c.suggestions, "Add digits (0–9).")
	}
	if !ctx.classes.symbol {
		c.issues = append(c.issues, "No symbols.")
		c.suggestions = append(c.suggestions, "Add symbols (e.g., !@#$%).")
	}
	return c
}

func penalizeCommonPassword(ctx *evalContext) contribution {
	if !ctx.dict.Contains(ctx.normalized) {
		return contribution{}
	}
	return contribution{
		delta:       -40,
		issues:      []string{"Appears in common password lists."},
		suggestions: []string{"Avoid common passwords; use a unique passphrase."},
	}
}

// maxSubstringScan caps how many dictionary entries the substring check
// inspects, bounding worst-case work against arbitrarily large supplemental
// lists.
const maxSubstringScan = 5000

// minSubstringLen is the shortest dictionary word considered as an embedded
// common-password fragment, e.g. "password" inside "password123!".
const minSubstringLen = 6

func penalizeCommonSubstring(ctx *evalContext) contribution {
	words := ctx.dict.Words()
	if len(words) > maxSubstringScan {
		words = words[:maxSubstringScan]
	}
	for _, word := range words {
		if len(word) < minSubstringLen {
			continue
		}
		if strings.Contains(ctx.normalized, word) {
			// One penalty regardless of how many entries match.
			return contribution{
				delta:       -20,
				issues:      []string{"Contains a common password word/pattern."},
				suggestions: []string{"Remove common words (e.g., 'password', 'admin') and use a unique phrase."},
			}
		}
	}
	return contribution{}
}

// penalizeSequences applies a single penalty whether one or both sequence
// detectors fire.
func penalizeSequences(ctx *evalContext) contribution {
	if !hasKeyboardSequence(ctx.lower) && !hasMonotonicSequence(ctx.lower) {
		return contribution{}
	}
	return contribution{
		delta:       -15,
		issues:      []string{"Contains an easy sequence (keyboard or ordered characters)."},
		suggestions: []string{"Avoid sequences like 1234, abcd, qwer."},
	}
}

func penalizeRepeats(ctx *evalContext) contribution {
	found, runLen := repeatedRun(ctx.password)
	if !found {
		return contribution{}
	}
	masked := strings.Repeat("*", min(runLen, 6))
	return contribution{
		delta:       -10,
		issues:      []string{fmt.Sprintf("Contains repeated characters (e.g., '%s').", masked)},
		suggestions: []string{"Avoid long repeats like aaaa or 1111."},
	}
}

func penalizeTemplate(ctx *evalContext) contribution {
	if !matchesWordDigitsTemplate(ctx.password) {
		return contribution{}
	}
	return contribution{
		delta:       -10,
		issues:      []string{"Looks like a common pattern (word + digits)."},
		suggestions: []string{"Use a passphrase or mix words in a less predictable way."},
	}
}

// adjustForEntropy rewards high-entropy passwords and nudges low-entropy ones
// with a suggestion only, no issue text.
func adjustForEntropy(ctx *evalContext) contribution {
	switch {
	case ctx.entropy >= 80:
		return contribution{delta: 10}
	case ctx.entropy < 50:
		return contribution{
			delta:       -10,
			suggestions: []string{"Increase complexity and length to raise entropy."},
		}
	}
	return contribution{}
}

// dedupe removes duplicate strings preserving first-seen order.
func dedupe(in []string) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
