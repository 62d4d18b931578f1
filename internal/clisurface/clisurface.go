// Package clisurface parses the interpreter's thin command-line
// surface: --filepath, --debug, --bare, --stack-size,
// --native-stack-size, --help, --version, and a positional main file
// followed by arguments forwarded to the program.
package clisurface

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// Options is the parsed command line.
type Options struct {
	Filepath        string
	Debug           bool
	Bare            bool
	StackSize       int64
	NativeStackSize int64
	Help            bool
	Version         bool
	MainFile        string
	ForwardedArgs   []string
}

// DefaultStackSize applies when no --stack-size is given.
const DefaultStackSize = 1 << 20

// Parse reads argv (conventionally os.Args[1:]) into Options. It
// never touches the filesystem; acting on the options is the caller's
// business.
func Parse(argv []string) (*Options, error) {
	opts := &Options{StackSize: DefaultStackSize, NativeStackSize: DefaultStackSize}

	i := 0
	for ; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--help" || arg == "-help":
			opts.Help = true
		case arg == "--version":
			opts.Version = true
		case arg == "--debug":
			opts.Debug = true
		case arg == "--bare":
			opts.Bare = true
		case arg == "--filepath":
			i++
			if i >= len(argv) {
				return nil, fmt.Errorf("--filepath requires a value")
			}
			opts.Filepath = argv[i]
		case strings.HasPrefix(arg, "--filepath="):
			opts.Filepath = strings.TrimPrefix(arg, "--filepath=")
		case arg == "--stack-size":
			i++
			if i >= len(argv) {
				return nil, fmt.Errorf("--stack-size requires a value")
			}
			n, err := parseSize(argv[i])
			if err != nil {
				return nil, err
			}
			opts.StackSize = n
		case strings.HasPrefix(arg, "--stack-size="):
			n, err := parseSize(strings.TrimPrefix(arg, "--stack-size="))
			if err != nil {
				return nil, err
			}
			opts.StackSize = n
		case arg == "--native-stack-size":
			i++
			if i >= len(argv) {
				return nil, fmt.Errorf("--native-stack-size requires a value")
			}
			n, err := parseSize(argv[i])
			if err != nil {
				return nil, err
			}
			opts.NativeStackSize = n
		case strings.HasPrefix(arg, "--native-stack-size="):
			n, err := parseSize(strings.TrimPrefix(arg, "--native-stack-size="))
			if err != nil {
				return nil, err
			}
			opts.NativeStackSize = n
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unrecognized flag: %s", arg)
		default:
			// First non-flag argument is the positional main file;
			// everything after it is forwarded verbatim.
			opts.MainFile = arg
			opts.ForwardedArgs = append([]string{}, argv[i+1:]...)
			return opts, nil
		}
	}
	return opts, nil
}

// parseSize accepts a decimal size with an optional K/M/G
// (1024-based) suffix.
func parseSize(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size value")
	}
	mult := int64(1)
	suffix := s[len(s)-1]
	numeric := s
	switch suffix {
	case 'K', 'k':
		mult = 1024
		numeric = s[:len(s)-1]
	case 'M', 'm':
		mult = 1024 * 1024
		numeric = s[:len(s)-1]
	case 'G', 'g':
		mult = 1024 * 1024 * 1024
		numeric = s[:len(s)-1]
	}
	n, err := strconv.ParseInt(numeric, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return n * mult, nil
}

// IsInteractive reports whether stdout is attached to a terminal
// (Cygwin ptys included), used to pick --bare's default when the flag
// is not given explicitly.
func IsInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// EffectiveBare resolves --bare's default: explicit --bare always
// wins; otherwise a non-interactive stdout (piped output) implies
// bare mode.
func (o *Options) EffectiveBare() bool {
	return o.Bare || !IsInteractive()
}
