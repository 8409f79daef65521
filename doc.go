// Package rfc2org converts xml2rfc v3 documents to org-mode outline
// markup.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := rfc2org.New()
//	body, err := svc.Convert(ctx, rfc2org.Input{Document: xmlSource})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rfc2org.Preamble + "\n\n" + body)
//
// # Conversion Pipeline
//
// Conversion is a two-pass walk over the parsed element tree:
//
//  1. Collect section anchors and count the xref elements targeting them.
//  2. Render the rfc attributes and front matter as keyword directives,
//     then the middle and back sections as an org outline.
//
// Cross-references render as [[#anchor]] internal links when the target
// names a section anchor, and as [[target]] external links otherwise.
// Sections whose anchor is actually referenced receive a CUSTOM_ID
// property drawer. Paragraph text is reflowed to a fixed column width.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	svc := rfc2org.New(
//	    rfc2org.WithWidth(72),
//	    rfc2org.WithLogger(logger),
//	)
//
// The emitted markup follows ox-rfc conventions: RFC_* keyword
// directives for document metadata, REF_* property drawers for
// bibliography entries, and #+ATTR_RFC lines for list rendering hints.
package rfc2org
