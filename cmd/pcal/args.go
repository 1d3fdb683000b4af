package main

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// negativeArgs rewrites args so that negative numbers such as "-1" reach
// the target command as positional arguments instead of being read as
// shorthand flags. When one is present, the positionals are moved behind
// a "--" terminator; flags and their values keep their order. Args without
// a negative number are returned unchanged.
func negativeArgs(root *cobra.Command, args []string) []string {
	found := false
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if negativeNumber.MatchString(arg) {
			found = true
			break
		}
	}
	if !found {
		return args
	}

	cmd, _, err := root.Find(args)
	if err != nil || cmd == root {
		return args
	}
	path := strings.Fields(cmd.CommandPath())[1:]
	sets := []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()}

	var names, flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case negativeNumber.MatchString(arg):
			positional = append(positional, arg)
		case strings.HasPrefix(arg, "--"):
			flags = append(flags, arg)
			name := strings.TrimPrefix(arg, "--")
			if !strings.Contains(name, "=") && needsValue(sets, name, false) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flags = append(flags, arg)
			if len(arg) == 2 && needsValue(sets, arg[1:], true) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case len(names) < len(path):
			names = append(names, arg)
		default:
			positional = append(positional, arg)
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, path...)
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

// needsValue reports whether the flag takes a separate value token.
// Unknown flags are left for cobra to reject.
func needsValue(sets []*pflag.FlagSet, name string, short bool) bool {
	for _, fs := range sets {
		var f *pflag.Flag
		if short {
			f = fs.ShorthandLookup(name)
		} else {
			f = fs.Lookup(name)
		}
		if f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}
