package metobs

import (
	"encoding/json"
	"os"
)

// Document is an OpenAPI-style specification body. The structure is not
// interpreted, only round-tripped to disk.
type Document map[string]any

// WriteDocument serializes a document with two-space indentation, fully
// overwriting path. Keys serialize in sorted order, so an unchanged remote
// document always produces byte-identical output.
func WriteDocument(path string, doc Document) error {
	contents, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, contents, 0644)
}
