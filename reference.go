package rfc2org

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
)

// Citation library include hrefs encode the cited document's series and
// name.
var (
	rfcIncludePattern   = regexp.MustCompile(`^.*reference\.RFC\.([0-9]+)\.xml`)
	draftIncludePattern = regexp.MustCompile(`^.*reference\.I-D.([-a-z0-9]+)\.xml`)
)

// convertReference renders one entry of a references section: include
// directives become bare RFC or I-D headings, reference elements become
// headings with a property drawer. Anything else is skipped.
func (c *converter) convertReference(e *etree.Element, buf *strings.Builder) error {
	if strings.Contains(e.Tag, "include") {
		if href := e.SelectAttr("href"); href != nil {
			if m := rfcIncludePattern.FindStringSubmatch(href.Value); m != nil {
				fmt.Fprintf(buf, "** RFC%s\n", m[1])
				return nil
			}
			if m := draftIncludePattern.FindStringSubmatch(href.Value); m != nil {
				fmt.Fprintf(buf, "** I-D.%s\n", m[1])
				return nil
			}
		}
	}

	if e.Tag != "reference" {
		return nil
	}

	anchor := e.SelectAttr("anchor")
	if anchor == nil {
		return ErrReferenceAnchor
	}
	fmt.Fprintf(buf, "** %s\n", anchor.Value)
	buf.WriteString(":PROPERTIES:\n")

	if target := e.SelectAttr("target"); target != nil {
		fmt.Fprintf(buf, ":REF_TARGET: %s\n", strings.TrimSpace(target.Value))
	}

	if front := e.SelectElement("front"); front != nil {
		if title := front.SelectElement("title"); title != nil {
			fmt.Fprintf(buf, ":REF_TITLE: %s\n", strings.TrimSpace(title.Text()))
		}
		if author := front.SelectElement("author"); author != nil {
			if org := author.SelectElement("organization"); org != nil {
				fmt.Fprintf(buf, ":REF_ORG: %s\n", strings.TrimSpace(org.Text()))
			}
		}
	}

	buf.WriteString(":END:\n")
	return nil
}
