package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a JSON geometry dump produced by the PDF-parsing collaborator
// and returns the decoded Document. A missing or unreadable file, or a dump
// that fails to decode, is an input error: the caller should treat it as
// fatal for the whole run rather than as a content-quality issue.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read geometry dump: %w", err)
	}
	return Decode(data)
}

// Decode parses a JSON geometry dump from memory.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse geometry dump: %w", err)
	}

	// Pages missing an explicit number take their document position.
	for i := range doc.Pages {
		if doc.Pages[i].Number == 0 {
			doc.Pages[i].Number = i + 1
		}
	}

	return &doc, nil
}
