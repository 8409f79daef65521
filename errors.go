package rfc2org

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument = errors.New("document content cannot be empty")
	ErrDocumentParse = errors.New("failed to parse document")

	// Conversion errors for malformed document structure.
	ErrDocName          = errors.New("invalid docName format")
	ErrXrefTarget       = errors.New("xref missing target attribute")
	ErrReferencesInBody = errors.New("references not allowed in middle section")
	ErrReferenceAnchor  = errors.New("anchor required for reference")
	ErrFigureArtwork    = errors.New("figure missing artwork")
)
