package ingestion

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var docxTagPattern = regexp.MustCompile(`<[^>]+>`)

// docxEntityReplacer undoes the XML escaping left behind after tag stripping.
var docxEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// extractDocxText extracts plain text from a DOCX document. Paragraph
// boundaries become line breaks so downstream line-based parsing still works.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = docxTagPattern.ReplaceAllString(content, "")
	return docxEntityReplacer.Replace(content), nil
}
