package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-ats/internal/testutil"
)

func TestExtractTextSinglePage(t *testing.T) {
	parser := NewPDFParserService(nil)

	text, err := parser.ExtractText(testutil.BuildPDF("Senior Python engineer"))

	require.NoError(t, err)
	// the text positioning operator yields a leading newline
	assert.Equal(t, "\nSenior Python engineer", text)
}

func TestExtractTextConcatenatesPagesWithoutSeparator(t *testing.T) {
	parser := NewPDFParserService(nil)
	pages := []string{"Python", "SQL", "Go"}

	var want strings.Builder
	for _, page := range pages {
		single, err := parser.ExtractText(testutil.BuildPDF(page))
		require.NoError(t, err)
		want.WriteString(single)
	}

	text, err := parser.ExtractText(testutil.BuildPDF(pages...))

	require.NoError(t, err)
	assert.Equal(t, want.String(), text)
	assert.Equal(t, "\nPython\nSQL\nGo", text)
}

func TestExtractTextEmptyPageIsNotAnError(t *testing.T) {
	parser := NewPDFParserService(nil)

	text, err := parser.ExtractText(testutil.BuildPDF(""))

	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(text))
}

func TestExtractTextMalformed(t *testing.T) {
	parser := NewPDFParserService(nil)

	_, err := parser.ExtractText([]byte("this is not a pdf at all, just some words"))
	assert.Error(t, err)

	_, err = parser.ExtractText(nil)
	assert.Error(t, err)
}

func TestExtractTextFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	data := testutil.BuildPDF("Jane", " Doe")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	want, err := NewPDFParserService(nil).ExtractText(data)
	require.NoError(t, err)

	text, err := NewPDFParserService(nil).ExtractTextFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, want, text)
	assert.Equal(t, "\nJane\n Doe", text)

	_, err = NewPDFParserService(nil).ExtractTextFromFile(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorContains(t, err, "failed to read file")
}
