package main

import (
	"os"
	"strings"

	"directory-cli/internal/cli"

	"github.com/joho/godotenv"
)

func rewriteDirectContactLookupArgs(argv []string, commands []string) []string {
	// Convenience: `directory <contact-id>` works like `directory contacts show <contact-id>`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
	// Users often pass persistent flags first (e.g. `directory --data x.json 7`), so we look
	// for the first positional token, not just argv[1].
	if len(argv) < 2 {
		return argv
	}

	known := map[string]bool{}
	for _, c := range commands {
		known[c] = true
	}
	valueFlags := map[string]bool{
		"--data":   true,
		"--format": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 >= len(argv) {
				return argv
			}
			out := make([]string, 0, len(argv)+2)
			out = append(out, argv[:i]...)
			out = append(out, "contacts", "show", "--")
			out = append(out, argv[i+1:]...)
			return out
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++ // skip value if present
			}
			continue
		}

		// First positional token. Only a lone positional is a contact id, so a mistyped
		// subcommand (`directory contcts list`) still gets cobra's unknown-command error.
		if known[a] || !onlyFlagsAfter(argv[i+1:], valueFlags) {
			return argv
		}
		out := make([]string, 0, len(argv)+2)
		out = append(out, argv[:i]...)
		out = append(out, "contacts", "show")
		out = append(out, argv[i:]...)
		return out
	}

	return argv
}

func onlyFlagsAfter(args []string, valueFlags map[string]bool) bool {
	for i := 0; i < len(args); i++ {
		a := strings.TrimSpace(args[i])
		switch {
		case a == "":
		case strings.HasPrefix(a, "-"):
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
		default:
			return false
		}
	}
	return true
}

func main() {
	// Optional .env next to the dataset; variables already set in the environment win.
	_ = godotenv.Load()

	os.Args = rewriteDirectContactLookupArgs(os.Args, cli.CommandNames())

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
