package mdtty

import (
	"os"
	"strconv"
	"strings"
)

const (
	osc8Prefix = "\x1b]8;;"
	osc8Close  = "\x1b]8;;\x1b\\"
)

// osc8Anchor opens an OSC 8 hyperlink pointing at destination. The anchor
// stays open until osc8Close is written.
func osc8Anchor(destination string) string {
	return osc8Prefix + destination + "\x1b\\"
}

// DetectOSC8Support returns true if the current environment likely supports
// OSC 8 hyperlinks.
func DetectOSC8Support() bool {
	if os.Getenv("OSC8") == "0" {
		return false
	}
	if os.Getenv("DOMTERM") != "" {
		return true
	}
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "vscode":
		return true
	}
	if strings.Contains(strings.ToLower(os.Getenv("TERM")), "kitty") {
		return true
	}
	if vte := os.Getenv("VTE_VERSION"); vte != "" {
		if n, err := strconv.Atoi(vte); err == nil && n >= 5000 {
			return true
		}
	}
	return false
}
