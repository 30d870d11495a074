package search

import (
	"regexp"

	"github.com/fatih/color"
)

var matchColor = color.New(color.FgRed)

// highlightMatches wraps every non-overlapping occurrence of the pattern
// in the match color, leaving the rest of the line unchanged.
func highlightMatches(line string, matcher *regexp.Regexp) string {
	return matcher.ReplaceAllStringFunc(line, func(m string) string {
		return matchColor.Sprint(m)
	})
}
