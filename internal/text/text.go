package text

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/davidmdm/ansi"
)

type DiffFunc func(expected, actual File, context int) string

type File struct {
	Name    string
	Content string
}

// Diff returns the unified diff from expected to actual, or the empty string when they are equal.
func Diff(expected, actual File, context int) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected.Content),
		B:        difflib.SplitLines(actual.Content),
		FromFile: expected.Name,
		ToFile:   actual.Name,
		Context:  context,
	})
	return diff
}

func DiffColorized(expected, actual File, context int) string {
	return colorize(Diff(expected, actual, context))
}

var (
	green = ansi.MakeStyle(ansi.FgGreen)
	red   = ansi.MakeStyle(ansi.FgRed)
	cyan  = ansi.MakeStyle(ansi.FgCyan)
)

func colorize(value string) string {
	lines := strings.Split(value, "\n")
	colorized := make([]string, len(lines))
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			colorized[i] = line
		case line[0] == '-':
			colorized[i] = red.Sprint(line)
		case line[0] == '+':
			colorized[i] = green.Sprint(line)
		case line[0] == '@':
			colorized[i] = cyan.Sprint(line)
		default:
			colorized[i] = line
		}
	}

	return strings.Join(colorized, "\n")
}
