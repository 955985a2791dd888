// Package tlog helpers to render errors with their structured context in tests.
package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold = "\033[1m"
	red  = "\033[1;31m"
)

// Log logs error.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error signal error.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Expect checks err matches target. Matched error is logged, anything
// else including nil is signaled as a test error. Returns true on match.
func Expect(t TestingPrinter, err error, target error) bool {
	t.Helper()

	switch {
	case err == nil:
		t.Error(render(errors.Wrap(target, "expected error was not returned"), red))
		return false
	case !errors.Is(err, target):
		t.Error(render(errors.Wrap(err, "unexpected error"), red))
		return false
	}

	t.Log(render(err, bold))
	return true
}

// Check do nothing and return false if error is nil.
// Prints error and return true otherwise.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString("\033[0m\n")

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c contextConsumer
	d.Deliver(&c)

	var maxname int
	for _, v := range c.vars {
		if len(v.name) > maxname {
			maxname = len(v.name)
		}
	}

	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString("\033[0m: ")
		b.WriteString(strings.Repeat(" ", maxname-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}
