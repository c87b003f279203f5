package main

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

// extractText returns the plain text of every page of the PDF at path,
// in page order, joined by newlines.
func extractText(log *logrus.Logger, path string) (text string, err error) {
	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parsing PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	numPages := r.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", i, err)
		}
		pages = append(pages, content)
	}

	text = strings.Join(pages, "\n")
	log.WithFields(logrus.Fields{
		"path":  path,
		"pages": numPages,
		"chars": len(text),
	}).Debug("extracted PDF text")

	return text, nil
}
