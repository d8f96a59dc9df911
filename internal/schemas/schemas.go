// Package schemas provides JSON Schema validation for the tool's inputs and
// emitted reports. Schemas are stored as JSON files and embedded at compile
// time, so validation works from any working directory.
package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Embedded schema file names.
const (
	EditsSchema            = "edits.schema.json"
	PreprocessReportSchema = "preprocess_report.schema.json"
	ValidationReportSchema = "validation_report.schema.json"
)

// Get returns the content of an embedded schema by file name.
func Get(filename string) (string, error) {
	data, err := schemaFiles.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("schema %q not embedded: %w", filename, err)
	}
	return string(data), nil
}

// MustGet returns the content of an embedded schema, panicking if missing.
// Use this only for the schema names defined in this package.
func MustGet(filename string) string {
	content, err := Get(filename)
	if err != nil {
		panic(fmt.Sprintf("failed to load schema: %v", err))
	}
	return content
}
