package rfc2org

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// docNamePattern splits a draft name into its base name and two-digit
// version, e.g. "draft-example-01" into "draft-example" and "01".
var docNamePattern = regexp.MustCompile(`^([-a-z0-9]+)-([0-9][0-9])`)

// rfcAttrDirectives maps rfc element attributes to document directives.
// docName is handled separately because it splits into two directives.
var rfcAttrDirectives = map[string]string{
	"category":       "RFC_CATEGORY",
	"consensus":      "RFC_CONSENSUS",
	"ipr":            "RFC_IPR",
	"obsoletes":      "RFC_OBSOLETES",
	"submissionType": "RFC_STREAM",
	"tocDepth":       "RFC_TOC_DEPTH",
	"updates":        "RFC_UPDATES",
	"version":        "RFC_XML_VERSION",
}

// convertRFCAttrs renders the rfc element's attributes as document
// directives, in document order, followed by a blank line. docName must
// carry a two-digit draft version; unknown attributes are logged and
// skipped.
func (c *converter) convertRFCAttrs(root *etree.Element, buf *strings.Builder) error {
	for _, attr := range root.Attr {
		switch {
		case attr.Space == "xmlns" || attr.Key == "xmlns":
			// Namespace declarations carry no document metadata.
		case attr.Space != "":
			c.log.Warn("not processing rfc tag attribute", zap.String("attribute", attr.FullKey()))
		case attr.Key == "docName":
			m := docNamePattern.FindStringSubmatch(attr.Value)
			if m == nil {
				return fmt.Errorf("%w: %q", ErrDocName, attr.Value)
			}
			fmt.Fprintf(buf, "#+RFC_NAME: %s\n", m[1])
			fmt.Fprintf(buf, "#+RFC_VERSION: %s\n", m[2])
		default:
			directive, ok := rfcAttrDirectives[attr.Key]
			if !ok {
				c.log.Warn("not processing rfc tag attribute", zap.String("attribute", attr.Key))
				continue
			}
			if (attr.Key == "obsoletes" || attr.Key == "updates") && attr.Value == "" {
				continue
			}
			fmt.Fprintf(buf, "#+%s: %s\n", directive, attr.Value)
		}
	}
	buf.WriteString("\n")
	return nil
}

// convertFront renders one child element of the document front matter.
// Unrecognized containers are descended transparently.
func (c *converter) convertFront(e *etree.Element, buf *strings.Builder, depth int) error {
	c.log.Debug("processing front element", zap.Int("level", depth), zap.String("tag", e.Tag))

	switch e.Tag {
	case "title":
		fmt.Fprintf(buf, "#+TITLE: %s\n", strings.TrimSpace(e.Text()))
		writeAttrDirective(e, "abbrev", "RFC_SHORT_TITLE", buf)
	case "author":
		c.convertAuthor(e, buf)
	case "abstract":
		buf.WriteString("\n#+begin_abstract\n")
		for _, child := range e.ChildElements() {
			if err := c.convertBodyBack(child, buf, modeMiddle, depth+1); err != nil {
				return err
			}
		}
		buf.WriteString("#+end_abstract\n")
	case "area":
		fmt.Fprintf(buf, "#+RFC_AREA: %s\n", strings.TrimSpace(e.Text()))
	case "workgroup":
		fmt.Fprintf(buf, "#+RFC_WORKGROUP: %s\n", strings.TrimSpace(e.Text()))
	case "keyword":
		c.addKeyword(strings.TrimSpace(e.Text()))
	default:
		for _, child := range e.ChildElements() {
			if err := c.convertFront(child, buf, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// convertAuthor renders an author element. The first author becomes the
// document author directives; every later author is appended as a single
// RFC_ADD_AUTHOR entry.
func (c *converter) convertAuthor(e *etree.Element, buf *strings.Builder) {
	fullname := e.SelectAttrValue("fullname", "")

	var email, org, orgAbbrev string
	if address := e.SelectElement("address"); address != nil {
		if em := address.SelectElement("email"); em != nil {
			email = strings.TrimSpace(em.Text())
		}
	}
	if o := e.SelectElement("organization"); o != nil {
		org = strings.TrimSpace(o.Text())
		orgAbbrev = strings.TrimSpace(o.SelectAttrValue("abbrev", ""))
	}

	if c.didAuthor {
		if orgAbbrev != "" {
			org = fmt.Sprintf(`("%s" "%s")`, orgAbbrev, org)
		} else {
			org = fmt.Sprintf(`"%s"`, org)
		}
		fmt.Fprintf(buf, `#+RFC_ADD_AUTHOR: ("%s" "%s" %s)`+"\n", fullname, email, org)
		return
	}

	c.didAuthor = true
	fmt.Fprintf(buf, "#+AUTHOR: %s\n", fullname)
	if email != "" {
		fmt.Fprintf(buf, "#+EMAIL: %s\n", email)
	}
	if org != "" {
		fmt.Fprintf(buf, "#+AFFILIATION: %s\n", org)
	}
	if orgAbbrev != "" {
		fmt.Fprintf(buf, "#+RFC_SHORT_ORG: %s\n", orgAbbrev)
	}
}

// addKeyword records a keyword once, preserving first-seen order.
func (c *converter) addKeyword(kw string) {
	if c.keywordSeen[kw] {
		return
	}
	c.keywordSeen[kw] = true
	c.keywords = append(c.keywords, kw)
}

// writeKeywordsDirective emits the collected keywords as one directive,
// most recently seen first.
func (c *converter) writeKeywordsDirective(buf *strings.Builder) {
	if len(c.keywords) == 0 {
		return
	}
	quoted := make([]string, 0, len(c.keywords))
	for i := len(c.keywords) - 1; i >= 0; i-- {
		quoted = append(quoted, `"`+c.keywords[i]+`"`)
	}
	fmt.Fprintf(buf, "#+RFC_KEYWORDS: (%s)\n", strings.Join(quoted, " "))
}
