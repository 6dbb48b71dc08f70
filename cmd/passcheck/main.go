// Command passcheck evaluates a password's strength and prints a report.
//
// Usage:
//
//	passcheck
//	passcheck -p "MyPass123!"
//	passcheck -p "MyPass123!" -show
//	passcheck -common-list common_passwords.txt
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fernandezvara/passcheck"
	"github.com/fernandezvara/passcheck/internal/termio"
)

func main() {
	var (
		password   string
		show       bool
		commonList string
	)
	flag.StringVar(&password, "password", "", "Password string (avoid using this on shared machines)")
	flag.StringVar(&password, "p", "", "Shorthand for -password")
	flag.BoolVar(&show, "show", false, "Show the password in the output (hidden by default)")
	flag.StringVar(&commonList, "common-list", "", "Path to a supplemental common-passwords file")
	flag.Parse()

	if err := run(password, show, commonList); err != nil {
		log.Fatalf("passcheck: %v", err)
	}
}

func run(password string, show bool, commonList string) error {
	dict := passcheck.LoadDictionary(commonList)
	checker := passcheck.New(dict)

	if password == "" && !passwordFlagSet() {
		var err error
		password, err = termio.PromptPassword("Enter a password to check: ")
		if err != nil {
			return err
		}
	}

	result := checker.Evaluate(password)
	fmt.Println(passcheck.FormatReport(password, result, show))
	return nil
}

// passwordFlagSet distinguishes an explicitly empty -p "" from no flag at
// all; the former is evaluated as an empty password, the latter prompts.
func passwordFlagSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "password" || f.Name == "p" {
			set = true
		}
	})
	return set
}
