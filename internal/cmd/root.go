package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/grep/internal/config"
	"github.com/harrison/grep/internal/search"
)

// Execute runs the root command against os.Args and returns the process
// exit code. Parse errors print their fixed message; scan failures print
// the underlying cause behind an "Error: " marker.
func Execute() int {
	root := NewRootCommand(os.Stdout)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		var ee *ExitError
		if errors.As(err, &ee) {
			if ee.Msg != "" {
				fmt.Fprintln(os.Stderr, ee.Msg)
			}
			return ee.Code
		}
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// NewRootCommand creates and returns the root cobra command for grep.
//
// Flag parsing is disabled: the argument grammar allows single-dash short
// flags interleaved with positionals and a bare "--" separator, so the raw
// argument list goes to the config resolver untouched instead of through
// pflag. Matching lines and the help text are written to stdout.
func NewRootCommand(stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "grep [OPTIONS] <pattern> <files...>",
		Short: "Search files for a literal pattern",
		Long: `grep scans text files line by line and prints every line that contains
the given pattern. The pattern is always matched literally; characters
that are special in regular expressions carry no special meaning here.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := config.Parse(args)
			if err != nil {
				return &ExitError{Code: 1, Msg: err.Error()}
			}
			if outcome.Help {
				fmt.Fprint(stdout, config.Usage())
				return nil
			}
			engine := search.NewEngine(outcome.Config, stdout)
			if err := engine.Run(); err != nil {
				return &ExitError{Code: 1, Msg: fmt.Sprintf("Error: %v", err)}
			}
			return nil
		},
	}
	return root
}
