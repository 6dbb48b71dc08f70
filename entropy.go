package passcheck

import "math"

// symbolPoolSize approximates the printable symbol alphabet. The estimate
// uses a fixed size rather than counting the distinct symbols actually used.
const symbolPoolSize = 33

// EstimateEntropy returns a rough entropy estimate in bits, computed from the
// character classes present and the password length. It is an upper-bound
// proxy for guess-resistance, not a real information-theoretic measure.
func EstimateEntropy(password string) float64 {
	if len(password) == 0 {
		return 0
	}

	pool := poolSize(password)
	if pool == 0 {
		return 0
	}

	return float64(len(password)) * math.Log2(float64(pool))
}

// poolSize sums the alphabet sizes of the character classes present in the
// raw password.
func poolSize(password string) int {
	classes := classesOf(password)

	pool := 0
	if classes.lower {
		pool += 26
	}
	if classes.upper {
		pool += 26
	}
	if classes.digit {
		pool += 10
	}
	if classes.symbol {
		pool += symbolPoolSize
	}
	return pool
}

// charClasses records which character classes appear in a password.
type charClasses struct {
	lower  bool
	upper  bool
	digit  bool
	symbol bool
}

// classesOf inspects the raw password. Anything outside [A-Za-z0-9],
// including non-ASCII runes, counts as a symbol.
func classesOf(password string) charClasses {
	var c charClasses
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.symbol = true
		}
	}
	return c
}

// count returns how many of the four classes are present.
func (c charClasses) count() int {
	n := 0
	for _, present := range []bool{c.lower, c.upper, c.digit, c.symbol} {
		if present {
			n++
		}
	}
	return n
}
