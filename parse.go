package rfc2org

import (
	"fmt"

	"github.com/beevik/etree"
)

// parseDocument parses the XML source and returns its root element.
func parseDocument(source string) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(source); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrDocumentParse
	}
	return root, nil
}
