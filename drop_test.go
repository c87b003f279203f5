package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDroppedFile(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "report.pdf")
	spaced := filepath.Join(dir, "annual report.pdf")
	noExt := filepath.Join(dir, "scan")
	for _, p := range []string{plain, spaced, noExt} {
		require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4\n"), 0o644))
	}

	tests := []struct {
		name   string
		pasted string
		want   string
		ok     bool
	}{
		{"plain path", plain, plain, true},
		{"surrounding whitespace", "  " + plain + "\n", plain, true},
		{"single quoted", "'" + spaced + "'", spaced, true},
		{"double quoted", `"` + spaced + `"`, spaced, true},
		{"escaped spaces", filepath.Join(dir, `annual\ report.pdf`), spaced, true},
		{"no extension check", noExt, noExt, true},
		{"directory", dir, "", false},
		{"missing file", filepath.Join(dir, "missing.pdf"), "", false},
		{"question text", "What is the conclusion?", "", false},
		{"empty", "   ", "", false},
		{"multiple lines", plain + "\n" + plain, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := droppedFile(tt.pasted)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
