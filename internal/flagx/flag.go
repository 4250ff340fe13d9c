// Package flagx lets several components parse their own flags out of one
// shared argument list without tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs keeps only the flags listed in allowed, together with their
// values. Both "-f value" and "-f=value" forms are recognised. A token that
// starts with "-" is never consumed as a value.
//
// The result is never nil.
func FilterArgs(args []string, allowed []string) []string {
	known := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		known[f] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if known[name] {
				out = append(out, arg)
			}
			continue
		}

		if !known[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// ConfigFileFlag returns the JSON config path given by -c or -config, or ""
// when neither is present.
func ConfigFileFlag(args []string) string {
	return stringFlag(args, "config", "c", "path to JSON config file")
}

// EnvFileFlag returns the dotenv path given by -env, or "" when absent.
func EnvFileFlag(args []string) string {
	return stringFlag(args, "env", "", "path to .env file")
}

func stringFlag(args []string, long, short, usage string) string {
	var value string

	names := []string{"-" + long}
	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&value, long, "", usage)
	if short != "" {
		names = append(names, "-"+short)
		fs.StringVar(&value, short, "", usage)
	}

	_ = fs.Parse(FilterArgs(args, names))
	return value
}
