package main

import (
	"os"
	"strings"
)

// droppedFile reports whether pasted text is a file dropped onto the
// terminal. Terminals paste the path, sometimes quoted or with escaped
// spaces; the extension is not checked.
func droppedFile(pasted string) (string, bool) {
	p := strings.TrimSpace(pasted)
	if p == "" || strings.ContainsAny(p, "\n\r") {
		return "", false
	}

	candidates := []string{p}
	if unq := unquotePath(p); unq != p {
		candidates = append(candidates, unq)
	}
	if unesc := strings.ReplaceAll(p, `\ `, " "); unesc != p {
		candidates = append(candidates, unesc)
	}

	for _, c := range candidates {
		info, err := os.Stat(c)
		if err == nil && info.Mode().IsRegular() {
			return c, true
		}
	}
	return "", false
}

func unquotePath(p string) string {
	if len(p) < 2 {
		return p
	}
	first, last := p[0], p[len(p)-1]
	if (first == '\'' || first == '"') && first == last {
		return p[1 : len(p)-1]
	}
	return p
}
