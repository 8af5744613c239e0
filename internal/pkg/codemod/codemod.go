// Package codemod rewrites the export list declaration in the entry file
// of the target library.
//
// Everything outside the declaration block is opaque passthrough text.
package codemod

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/gochart/exportgen/internal/pkg/codemod/gofmt"
	"github.com/gochart/exportgen/internal/pkg/filesystem"
)

// DeclName is the name of the managed declaration.
const DeclName = "ExportedNames"

const declPrefix = "var " + DeclName + " ="

// Update replaces the export list declaration in the file with the given
// names and hands the result to the formatter, which validates the content
// and writes it back in the canonical style.
//
// When the declaration boundaries are not found, an error is returned before
// anything is written, the file must not be silently corrupted.
func Update(logger *zap.SugaredLogger, fs filesystem.Fs, path string, names []string) error {
	current, updated, err := Candidate(fs, path, names)
	if err != nil {
		return err
	}

	if current == updated {
		logger.Debugf(`"%s" is already up to date`, path)
		return nil
	}

	if err := fs.WriteFile(filesystem.NewFile(path, updated).SetDescription("entry file")); err != nil {
		return err
	}

	logger.Debugf(`Updated "%s", %d exported names`, path, len(names))
	return nil
}

// Candidate computes the updated entry file content without writing it.
// It returns the current content and the formatted replacement.
func Candidate(fs filesystem.Fs, path string, names []string) (current string, updated string, err error) {
	file, err := fs.ReadFile(path, "entry file")
	if err != nil {
		return "", "", err
	}

	lines := splitLines(file.Content)
	first, last, err := FindDeclBounds(lines)
	if err != nil {
		return "", "", fmt.Errorf(`cannot update "%s": %w`, path, err)
	}

	// Put the file back together, replacing the old declaration block,
	// keeping the rest as is.
	newLines := make([]string, 0, len(lines))
	newLines = append(newLines, lines[:first]...)
	newLines = append(newLines, Render(names)...)
	newLines = append(newLines, lines[last+1:]...)

	updated, err = gofmt.Format(path, newLines)
	if err != nil {
		return "", "", err
	}
	return file.Content, updated, nil
}

// FindDeclBounds returns the indexes of the first and the last line of the
// export list declaration block.
func FindDeclBounds(lines []string) (first int, last int, err error) {
	first, last = -1, -1
	for idx, line := range lines {
		if strings.HasPrefix(line, declPrefix) {
			first = idx
			// The formatter may collapse a short list to a single line
			if strings.HasSuffix(strings.TrimSpace(line), "}") {
				last = idx
				break
			}
		} else if first != -1 && strings.HasPrefix(line, "}") {
			last = idx
			break
		}
	}

	if first == -1 {
		return -1, -1, fmt.Errorf(`declaration "%s" not found`, DeclName)
	}
	if last == -1 {
		return -1, -1, fmt.Errorf(`declaration "%s" is not terminated by "}"`, DeclName)
	}
	return first, last, nil
}

// Render writes the declaration, one name per line with a trailing comma,
// so the formatter keeps the block shape stable across runs.
func Render(names []string) []string {
	if len(names) == 0 {
		return []string{declPrefix + " []string{}"}
	}

	out := make([]string, 0, len(names)+2)
	out = append(out, declPrefix+" []string{")
	for _, name := range names {
		out = append(out, "\t"+strconv.Quote(name)+",")
	}
	out = append(out, "}")
	return out
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r\n")
	}
	return lines
}
