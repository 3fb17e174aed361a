// Package flagx lets several configuration layers read their own flags from
// the same command line without tripping over each other's definitions.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the allowed flags from args, together with their
// values. Both "-f value" and "-f=value" forms are recognised; a value is
// taken from the next argument only when it does not itself start with '-'.
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, found := strings.Cut(arg, "="); found {
			if allowed[name] {
				filtered = append(filtered, arg)
			}
			continue
		}

		if !allowed[arg] {
			continue
		}
		filtered = append(filtered, arg)
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			filtered = append(filtered, args[next])
			i = next
		}
	}

	return filtered
}

// ConfigFiles holds the paths of optional configuration files given on the
// command line.
type ConfigFiles struct {
	// JSON is set by -c or -config.
	JSON string
	// Env is a dotenv file set by -env.
	Env string
}

// ConfigFileFlags extracts -c/-config and -env from os.Args, ignoring every
// other flag. Missing flags leave the corresponding path empty.
func ConfigFileFlags() ConfigFiles {
	var files ConfigFiles

	args := FilterArgs(os.Args[1:], []string{"-c", "-config", "-env"})

	fs := flag.NewFlagSet("files", flag.ContinueOnError)
	fs.StringVar(&files.JSON, "config", "", "path to JSON config file")
	fs.StringVar(&files.JSON, "c", "", "path to JSON config file (short)")
	fs.StringVar(&files.Env, "env", "", "path to .env file")
	_ = fs.Parse(args)

	return files
}
