// Package ingestion loads input documents and converts them to plain text.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies how an input document is stored on disk.
type Format string

// Supported document formats. Anything without a recognized extension is
// treated as plain text.
const (
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatHTML Format = "html"
)

// DetectFormat maps a file path to its document format by extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDocx
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// ReadDocument reads the file at path and returns its content as plain text.
// PDF, DOCX, and HTML documents are converted; everything else is read as-is.
// Line endings are normalized to LF. Internal whitespace is left untouched
// because the resume parser relies on runs of spaces and tabs.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &LoadError{Message: fmt.Sprintf("file not found: %s", path), Cause: err}
		}
		return "", &LoadError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}

	var text string
	switch DetectFormat(path) {
	case FormatPDF:
		text, err = extractPDFText(data)
	case FormatDocx:
		text, err = extractDocxText(data)
	case FormatHTML:
		text, err = ExtractHTMLText(string(data))
	default:
		text = string(data)
	}
	if err != nil {
		return "", &LoadError{Message: fmt.Sprintf("failed to extract text from %s", path), Cause: err}
	}

	return NormalizeNewlines(text), nil
}

// ReadDocumentWithMetadata reads a document and records its provenance.
func ReadDocumentWithMetadata(path string) (string, *Metadata, error) {
	text, err := ReadDocument(path)
	if err != nil {
		return "", nil, err
	}
	return text, NewMetadata(path, DetectFormat(path), text), nil
}

// NormalizeNewlines converts CRLF and bare CR line endings to LF.
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
