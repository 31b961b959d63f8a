package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	contentschema "github.com/reoring/contentschema"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	hintColor    = color.New(color.Faint)
)

func (a *App) success(format string, args ...any) {
	fmt.Fprintln(a.Out, successColor.Sprintf("✓ "+format, args...))
}

func (a *App) info(format string, args ...any) {
	fmt.Fprintln(a.Out, infoColor.Sprintf("ℹ "+format, args...))
}

func (a *App) warn(format string, args ...any) {
	fmt.Fprintln(a.Err, warnColor.Sprintf("⚠ "+format, args...))
}

func (a *App) errorf(format string, args ...any) {
	fmt.Fprintln(a.Err, errorColor.Sprintf("✗ "+format, args...))
}

// report prints err, expanding joined errors and issue lists one line each.
func (a *App) report(err error) {
	for _, e := range flatten(err) {
		iss, ok := contentschema.AsIssues(e)
		if !ok {
			a.errorf("%v", e)
			continue
		}
		if prefix := strings.TrimSuffix(e.Error(), ": "+iss.Error()); prefix != e.Error() {
			a.errorf("%s", prefix)
		}
		for _, it := range iss {
			writeIssue(a.Err, it)
		}
	}
}

func writeIssue(w io.Writer, it contentschema.Issue) {
	var b strings.Builder
	if it.Collection != "" {
		fmt.Fprintf(&b, "[%s] ", it.Collection)
	}
	b.WriteString(it.Message)
	fmt.Fprintf(&b, " at %s", it.Path)
	if it.Identifier != "" {
		fmt.Fprintf(&b, " (%s)", it.Identifier)
	}
	fmt.Fprintf(&b, " [%s]", it.Code)
	fmt.Fprintln(w, errorColor.Sprint("  ✗ ")+b.String())
	if it.Hint != "" {
		fmt.Fprintln(w, hintColor.Sprint("    "+it.Hint))
	}
}

// flatten splits errors.Join trees into their leaves. Issues stay whole.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if _, ok := err.(contentschema.Issues); ok {
		return []error{err}
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range j.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}
