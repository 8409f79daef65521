package rfc2org

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// walkMode distinguishes middle-section from back-section traversal.
type walkMode int

const (
	modeMiddle walkMode = iota
	modeBack
)

// String implements fmt.Stringer for logging.
func (m walkMode) String() string {
	if m == modeMiddle {
		return "middle"
	}
	return "back"
}

// converter carries the state threaded through a single conversion.
// A fresh converter is built per document, so conversions never share
// author, keyword, or reference state.
type converter struct {
	width int
	log   *zap.Logger
	refs  map[string]int

	didAuthor   bool
	keywords    []string
	keywordSeen map[string]bool
}

func newConverter(width int, log *zap.Logger, refs map[string]int) *converter {
	return &converter{
		width:       width,
		log:         log,
		refs:        refs,
		keywordSeen: make(map[string]bool),
	}
}

// convertDocument walks the rfc element and renders the whole document.
// A root element other than rfc yields empty output.
func (c *converter) convertDocument(root *etree.Element) (string, error) {
	if root.Tag != "rfc" {
		c.log.Debug("ignoring root tag", zap.String("tag", root.Tag))
		return "", nil
	}

	var buf strings.Builder
	if err := c.convertRFCAttrs(root, &buf); err != nil {
		return "", err
	}

	for _, e := range root.ChildElements() {
		switch e.Tag {
		case "front":
			c.log.Debug("processing front tag")
			for _, child := range e.ChildElements() {
				if err := c.convertFront(child, &buf, 0); err != nil {
					return "", err
				}
			}
			c.writeKeywordsDirective(&buf)
		case "middle":
			c.log.Debug("processing middle tag")
			for _, child := range e.ChildElements() {
				if err := c.convertBodyBack(child, &buf, modeMiddle, 0); err != nil {
					return "", err
				}
			}
		case "back":
			c.log.Debug("processing back tag")
			for _, child := range e.ChildElements() {
				if err := c.convertBodyBack(child, &buf, modeBack, 0); err != nil {
					return "", err
				}
			}
		default:
			c.log.Debug("ignoring rfc child tag", zap.String("tag", e.Tag))
		}
	}

	return buf.String(), nil
}

// expandElementText renders lead followed by e's child elements and their
// trailing text, then reflows the whole fragment. Continuation lines are
// indented by indent columns; children are converted at the element's own
// depth, so their output is reflowed along with the surrounding text.
func (c *converter) expandElementText(e *etree.Element, lead string, indent int, mode walkMode, depth int) (string, error) {
	var frag strings.Builder
	frag.WriteString(lead)
	for _, child := range e.ChildElements() {
		if err := c.convertBodyBack(child, &frag, mode, depth); err != nil {
			return "", err
		}
		if tail := child.Tail(); tail != "" {
			frag.WriteString(unindent(tail))
		}
	}
	return fill(frag.String(), c.width, strings.Repeat(" ", indent)), nil
}

// writeAttrDirective emits "#+name: value" when the attribute is present
// with a non-empty trimmed value.
func writeAttrDirective(e *etree.Element, attr, name string, buf *strings.Builder) {
	v := strings.TrimSpace(e.SelectAttrValue(attr, ""))
	if v != "" {
		fmt.Fprintf(buf, "#+%s: %s\n", name, v)
	}
}
