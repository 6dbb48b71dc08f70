package passcheck

import (
	"fmt"
	"strings"
)

// FormatReport renders a Result as the human-readable text report. The
// password is masked with asterisks unless show is set.
func FormatReport(password string, result Result, show bool) string {
	display := password
	if !show {
		display = strings.Repeat("*", len(password))
	}

	var b strings.Builder
	b.WriteString("Password Strength Report\n")
	b.WriteString(strings.Repeat("-", 26) + "\n")
	fmt.Fprintf(&b, "Password: %s\n", display)
	fmt.Fprintf(&b, "Score:    %d/100\n", result.Score)
	fmt.Fprintf(&b, "Rating:   %s\n", result.Rating)
	fmt.Fprintf(&b, "Entropy:  ~%v bits (rough estimate)\n", result.EntropyBits)
	b.WriteString("\n")

	if len(result.Issues) > 0 {
		b.WriteString("Issues found:\n")
		for _, issue := range result.Issues {
			fmt.Fprintf(&b, " - %s\n", issue)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Issues found: none\n\n")
	}

	if len(result.Suggestions) > 0 {
		b.WriteString("Suggestions:\n")
		for _, s := range result.Suggestions {
			fmt.Fprintf(&b, " - %s\n", s)
		}
	}

	return b.String()
}
