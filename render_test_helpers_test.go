package mdtty

import (
	"bytes"
	"regexp"
	"testing"
)

var (
	ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	osc8Regexp = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	return s
}

// plainTheme renders without any style tokens, so tests can compare output
// byte for byte.
func plainTheme() Theme {
	return NewTheme("plain", Styles{})
}

func renderEvents(t *testing.T, events []Event, columns int, theme Theme, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Events:  events,
		Writer:  &out,
		Columns: columns,
		Theme:   theme,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out.String()
}
