// Package gofmt hands file content to the Go formatter.
//
// The formatter parses the content itself, so a file is rewritten whole,
// in the canonical style, or not at all.
package gofmt

import (
	"fmt"
	"strings"

	"golang.org/x/tools/imports"
)

// Format joins the lines and formats them as a Go source file.
func Format(path string, lines []string) (string, error) {
	src := strings.Join(lines, "\n")
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}

	out, err := imports.Process(path, []byte(src), nil)
	if err != nil {
		return "", fmt.Errorf(`cannot format "%s": %w`, path, err)
	}
	return string(out), nil
}
