package scenario

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/kr/pretty"
	"github.com/vito/abt/pkg/abt"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ReportOptions controls how results are written.
type ReportOptions struct {
	// Color styles the output for a terminal.
	Color bool

	// Verbose dumps the full check of every failure.
	Verbose bool
}

// Report writes one line per result followed by a summary, and returns the
// number of failed checks.
func Report(w io.Writer, name string, results []Result, opts ReportOptions) (int, error) {
	style := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}

	failed := 0
	for _, r := range results {
		var line string
		switch {
		case r.Passed:
			line = fmt.Sprintf("%s %s", style(passStyle, "PASS"), r.Check.Name)
		case r.Err != nil:
			failed++
			line = fmt.Sprintf("%s %s: %s", style(failStyle, "FAIL"), r.Check.Name, r.Err)
		default:
			failed++
			line = fmt.Sprintf("%s %s: got %s, want %s",
				style(failStyle, "FAIL"), r.Check.Name, r.Got, want(r.Check))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return failed, err
		}
		if !r.Passed && opts.Verbose {
			dump := fmt.Sprintf("%# v", pretty.Formatter(r.Check))
			if _, err := fmt.Fprintln(w, style(dimStyle, dump)); err != nil {
				return failed, err
			}
		}
	}

	summary := fmt.Sprintf("%s: %d passed, %d failed", name, len(results)-failed, failed)
	if failed > 0 {
		summary = style(failStyle, summary)
	} else {
		summary = style(passStyle, summary)
	}
	_, err := fmt.Fprintln(w, summary)
	return failed, err
}

func want(c Check) string {
	switch c.Kind {
	case KindEqual, KindUnequal:
		return string(c.Kind)
	case KindFreeVars:
		return abt.NewNames(c.Names...).String()
	case KindError:
		return fmt.Sprintf("error containing %q", c.Want)
	default:
		return c.Want
	}
}
