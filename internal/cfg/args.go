package cfg

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// cmdLine is the command line split into flag assignments (applied to the flag set)
// and the remaining free tokens.
type cmdLine struct {
	free    []string
	unknown []string
	help    bool
}

// parseCmdLine walks args in order, setting the flags in fs it recognizes.
//
// A recognized "--name" takes the next token as its value whatever it looks like,
// and does nothing when it is the last token. Boolean flags take no value unless
// written as "--name=value". Tokens starting with "-" that name no flag are
// skipped on their own. Everything else is kept, in order, as a free token.
func parseCmdLine(fs *pflag.FlagSet, args []string) (cmdLine, error) {
	var cl cmdLine

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "-h" || arg == "--help":
			cl.help = true
			continue
		case len(arg) < 2 || arg[0] != '-':
			cl.free = append(cl.free, arg)
			continue
		}

		if !strings.HasPrefix(arg, "--") {
			cl.unknown = append(cl.unknown, arg)
			continue
		}
		name, value, hasValue := strings.Cut(arg[2:], "=")
		f := fs.Lookup(name)
		if f == nil {
			cl.unknown = append(cl.unknown, arg)
			continue
		}

		if !hasValue {
			switch {
			case f.NoOptDefVal != "":
				value = f.NoOptDefVal
			case i+1 < len(args):
				i++
				value = args[i]
			default:
				continue
			}
		}

		if err := fs.Set(name, value); err != nil {
			return cl, fmt.Errorf("invalid argument %q for %q flag: %w", value, "--"+name, err)
		}
	}
	return cl, nil
}
