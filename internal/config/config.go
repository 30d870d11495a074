// Package config resolves the raw argument list into a validated search
// configuration.
//
// Arguments are classified in a single left-to-right pass: short flags may
// appear before or after positional arguments, and a bare "--" closes option
// recognition so that everything after it is treated as positional. The
// first positional token is the search pattern, every later one an input
// path. Help and error paths never construct a Config and never touch the
// filesystem.
package config

import (
	"errors"
	"regexp"
)

// Error strings are part of the CLI contract and are printed to standard
// error verbatim.
var (
	ErrMissingArguments = errors.New("Missing arguments. Use -h for help.")
	ErrMissingPattern   = errors.New("Missing search pattern.")
	ErrMissingInputs    = errors.New("Missing input files.")
)

// Config holds the resolved search options. It is built once by Parse and
// read-only for the rest of the run.
type Config struct {
	// Inputs are the file and directory paths to search. Never empty.
	Inputs []string

	// Pattern is the literal search text exactly as given on the command line.
	Pattern string

	ShowLineNumbers bool
	InvertMatch     bool
	Recursive       bool
	ShowFilenames   bool
	Colored         bool

	// Matcher matches Pattern as a literal substring; case sensitivity is
	// baked in at construction time.
	Matcher *regexp.Regexp
}

// Outcome is the result of a successful parse: either help was requested
// and nothing further should run, or a validated Config is ready to use.
type Outcome struct {
	Help   bool
	Config *Config
}

// Parse classifies args into flags, the search pattern, and input paths.
//
// -h/--help short-circuits the scan wherever it appears, even between
// positionals. Any token that is not a recognized flag (or any token at all
// once "--" has been seen) is positional.
func Parse(args []string) (Outcome, error) {
	if len(args) == 0 {
		return Outcome{}, ErrMissingArguments
	}

	cfg := &Config{}
	var (
		caseInsensitive bool
		patternSet      bool
		optionsDone     bool
	)

	for _, arg := range args {
		if !optionsDone {
			switch arg {
			case "-h", "--help":
				return Outcome{Help: true}, nil
			case "-i":
				caseInsensitive = true
				continue
			case "-n":
				cfg.ShowLineNumbers = true
				continue
			case "-v":
				cfg.InvertMatch = true
				continue
			case "-r":
				cfg.Recursive = true
				continue
			case "-f":
				cfg.ShowFilenames = true
				continue
			case "-c":
				cfg.Colored = true
				continue
			case "--":
				optionsDone = true
				continue
			}
		}

		if !patternSet {
			cfg.Pattern = arg
			patternSet = true
		} else {
			cfg.Inputs = append(cfg.Inputs, arg)
		}
	}

	if !patternSet {
		return Outcome{}, ErrMissingPattern
	}
	if len(cfg.Inputs) == 0 {
		return Outcome{}, ErrMissingInputs
	}

	matcher, err := compileMatcher(cfg.Pattern, caseInsensitive)
	if err != nil {
		return Outcome{}, err
	}
	cfg.Matcher = matcher

	return Outcome{Config: cfg}, nil
}

// compileMatcher escapes the pattern so it matches as a literal substring
// rather than a regular expression, then compiles it with the requested
// case sensitivity. Compilation cannot realistically fail on an escaped
// pattern, but a failure surfaces the engine's own message.
func compileMatcher(pattern string, caseInsensitive bool) (*regexp.Regexp, error) {
	expr := regexp.QuoteMeta(pattern)
	if caseInsensitive {
		expr = "(?i)" + expr
	}
	return regexp.Compile(expr)
}
