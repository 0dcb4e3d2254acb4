// Package flagx contains helpers for parsing a subset of command-line flags
// without interfering with flags defined elsewhere in the program.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns a slice of command-line arguments that only contains
// the allowed flags (and their values) specified in allowedFlags.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -e .env
//  2. Flag and value combined with '=':      --env-file=.env
//
// args is usually os.Args[1:]; allowedFlags lists the accepted flag names
// (e.g. []string{"-e", "--env-file"}).
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	// Always return a non-nil slice so callers can pass it to flag.FlagSet.Parse.
	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "--flag=value" or "-f=value"
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		// flag as a separate argument, value possibly following
		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// EnvFileFlag inspects command-line arguments and extracts the path of an
// optional dotenv file provided via the -e or -env-file flags.
//
// Only these flags are parsed; other arguments are ignored. If neither flag
// is present, an empty string is returned and no file is loaded.
func EnvFileFlag() string {
	var envFile string

	args := FilterArgs(os.Args[1:], []string{"-e", "-env-file"})

	fs := flag.NewFlagSet("env", flag.ContinueOnError)
	fs.StringVar(&envFile, "env-file", "", "Path to dotenv file")
	fs.StringVar(&envFile, "e", "", "Path to dotenv file (short)")
	_ = fs.Parse(args)

	return envFile
}
