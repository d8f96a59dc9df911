package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"
)

// Metadata contains provenance for an ingested input document
type Metadata struct {
	Path      string `json:"path"`
	Format    string `json:"format"`
	CharCount int    `json:"char_count"`
	SHA256    string `json:"sha256"`    // hex digest of the extracted text
	Timestamp string `json:"timestamp"` // RFC3339 format
}

// NewMetadata creates a Metadata instance for a document's extracted text
func NewMetadata(path string, format Format, text string) *Metadata {
	return &Metadata{
		Path:      path,
		Format:    string(format),
		CharCount: utf8.RuneCountInString(text),
		SHA256:    computeHash(text),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
