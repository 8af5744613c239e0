package codemod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gochart/exportgen/internal/pkg/filesystem"
	"github.com/gochart/exportgen/internal/pkg/filesystem/aferofs"
	"github.com/gochart/exportgen/internal/pkg/log"
)

const entryFileContent = `// Package vizlib is a declarative charting library.
package vizlib

var ExportedNames = []string{
	"OldChart",
	"Chart",
}

// Chart is a single visualization.
type Chart struct{}
`

const updatedEntryFileContent = `// Package vizlib is a declarative charting library.
package vizlib

var ExportedNames = []string{
	"Chart",
	"Encode",
	"geom",
}

// Chart is a single visualization.
type Chart struct{}
`

func newTestFs(t *testing.T) filesystem.Fs {
	t.Helper()
	fs, err := aferofs.NewMemoryFs(log.NewNopLogger(), "")
	require.NoError(t, err)
	return fs
}

func TestUpdate(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("vizlib.go", entryFileContent)))

	require.NoError(t, Update(log.NewNopLogger(), fs, "vizlib.go", []string{"Chart", "Encode", "geom"}))

	file, err := fs.ReadFile("vizlib.go", "entry file")
	require.NoError(t, err)
	assert.Equal(t, updatedEntryFileContent, file.Content)
}

func TestUpdateIdempotent(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("vizlib.go", entryFileContent)))

	names := []string{"Chart", "Encode", "geom"}
	require.NoError(t, Update(log.NewNopLogger(), fs, "vizlib.go", names))
	first, err := fs.ReadFile("vizlib.go", "entry file")
	require.NoError(t, err)

	// A second run on an already updated file changes nothing
	require.NoError(t, Update(log.NewNopLogger(), fs, "vizlib.go", names))
	second, err := fs.ReadFile("vizlib.go", "entry file")
	require.NoError(t, err)
	assert.Equal(t, first.Content, second.Content)
}

func TestUpdateEmptyList(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t)
	require.NoError(t, fs.WriteFile(filesystem.NewFile("vizlib.go", entryFileContent)))

	require.NoError(t, Update(log.NewNopLogger(), fs, "vizlib.go", nil))

	file, err := fs.ReadFile("vizlib.go", "entry file")
	require.NoError(t, err)
	assert.Contains(t, file.Content, "var ExportedNames = []string{}")

	// And again, the single line block is found too
	require.NoError(t, Update(log.NewNopLogger(), fs, "vizlib.go", []string{"Chart"}))
	file, err = fs.ReadFile("vizlib.go", "entry file")
	require.NoError(t, err)
	assert.Contains(t, file.Content, `"Chart",`)
}

func TestUpdateMissingDeclaration(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t)
	original := "package vizlib\n\ntype Chart struct{}\n"
	require.NoError(t, fs.WriteFile(filesystem.NewFile("vizlib.go", original)))

	err := Update(log.NewNopLogger(), fs, "vizlib.go", []string{"Chart"})
	assert.ErrorContains(t, err, `declaration "ExportedNames" not found`)

	// Nothing was written
	file, readErr := fs.ReadFile("vizlib.go", "entry file")
	require.NoError(t, readErr)
	assert.Equal(t, original, file.Content)
}

func TestUpdateUnterminatedDeclaration(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t)
	original := "package vizlib\n\nvar ExportedNames = []string{\n\t\"Chart\",\n"
	require.NoError(t, fs.WriteFile(filesystem.NewFile("vizlib.go", original)))

	err := Update(log.NewNopLogger(), fs, "vizlib.go", []string{"Chart"})
	assert.ErrorContains(t, err, `is not terminated`)

	// Nothing was written
	file, readErr := fs.ReadFile("vizlib.go", "entry file")
	require.NoError(t, readErr)
	assert.Equal(t, original, file.Content)
}

func TestFindDeclBounds(t *testing.T) {
	t.Parallel()

	lines := []string{
		"package vizlib",
		"",
		"var ExportedNames = []string{",
		`	"Chart",`,
		"}",
		"",
	}
	first, last, err := FindDeclBounds(lines)
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	assert.Equal(t, 4, last)

	// Single line form
	first, last, err = FindDeclBounds([]string{"package vizlib", "var ExportedNames = []string{}"})
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, last)
}

func TestRender(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"var ExportedNames = []string{}"}, Render(nil))
	assert.Equal(
		t,
		[]string{
			"var ExportedNames = []string{",
			"\t\"Chart\",",
			"\t\"geom\",",
			"}",
		},
		Render([]string{"Chart", "geom"}),
	)
}
