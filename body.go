package rfc2org

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// convertBodyBack renders one element of the document body or back
// matter. Unrecognized containers are descended transparently one level
// deeper.
func (c *converter) convertBodyBack(e *etree.Element, buf *strings.Builder, mode walkMode, depth int) error {
	c.log.Debug("processing element",
		zap.Stringer("mode", mode),
		zap.Int("level", depth),
		zap.String("tag", e.Tag))

	switch e.Tag {
	case "section":
		return c.convertSection(e, buf, mode, depth)
	case "references":
		return c.convertReferences(e, buf, mode, depth)
	case "t":
		return c.convertParagraph(e, buf, mode, depth)
	case "xref":
		return c.convertXref(e, buf, mode, depth)
	case "table":
		c.convertTable(e, buf)
		return nil
	case "dl":
		return c.convertDefinitionList(e, buf, mode, depth)
	case "ol", "ul":
		return c.convertItemList(e, buf, mode, depth)
	case "figure":
		return c.convertFigure(e, buf)
	default:
		for _, child := range e.ChildElements() {
			if err := c.convertBodyBack(child, buf, mode, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// convertSection emits a heading with depth+1 stars, a CUSTOM_ID property
// drawer when the section's anchor is actually referenced, then the
// children apart from the already-consumed title.
func (c *converter) convertSection(e *etree.Element, buf *strings.Builder, mode walkMode, depth int) error {
	title := strings.TrimSpace(e.SelectAttrValue("title", ""))
	if title == "" {
		if name := e.SelectElement("name"); name != nil {
			title = strings.TrimSpace(name.Text())
		}
	}
	if title != "" {
		fmt.Fprintf(buf, "\n%s %s\n", strings.Repeat("*", depth+1), title)

		anchor := strings.TrimSpace(e.SelectAttrValue("anchor", ""))
		if anchor != "" && c.refs[anchor] > 0 {
			buf.WriteString(":PROPERTIES:\n")
			fmt.Fprintf(buf, ":CUSTOM_ID: %s\n", anchor)
			buf.WriteString(":END:\n")
		}
	}

	buf.WriteString("\n")

	for _, child := range e.ChildElements() {
		if child.Tag == "title" {
			continue
		}
		if err := c.convertBodyBack(child, buf, mode, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// convertReferences emits a reference-section heading and its entries.
// References are only legal in the back matter.
func (c *converter) convertReferences(e *etree.Element, buf *strings.Builder, mode walkMode, depth int) error {
	if mode == modeMiddle {
		return ErrReferencesInBody
	}
	if name := e.SelectElement("name"); name != nil {
		fmt.Fprintf(buf, "\n%s %s\n\n", strings.Repeat("*", depth+1), strings.TrimSpace(name.Text()))
	}
	for _, child := range e.ChildElements() {
		if child.Tag == "name" {
			continue
		}
		if err := c.convertReference(child, buf); err != nil {
			return err
		}
	}
	return nil
}

// convertParagraph reflows a t element, its inline children, and their
// tails into one paragraph terminated by exactly one blank line.
func (c *converter) convertParagraph(e *etree.Element, buf *strings.Builder, mode walkMode, depth int) error {
	lead := strings.TrimLeftFunc(unindent(e.Text()), unicode.IsSpace)
	text, err := c.expandElementText(e, lead, 0, mode, depth)
	if err != nil {
		return err
	}
	text = collapseBlankLines(text)
	switch {
	case strings.HasSuffix(text, "\n\n"):
	case strings.HasSuffix(text, "\n"):
		text += "\n"
	default:
		text += "\n\n"
	}
	buf.WriteString(text)
	return nil
}

// convertXref writes an org link for the xref target: an internal
// [[#anchor]] link when the target names a section anchor, otherwise a
// plain [[target]] link. Child elements follow at the same depth.
func (c *converter) convertXref(e *etree.Element, buf *strings.Builder, mode walkMode, depth int) error {
	target := e.SelectAttrValue("target", "")
	if target == "" {
		return ErrXrefTarget
	}
	if _, ok := c.refs[target]; ok {
		fmt.Fprintf(buf, "[[#%s]]", target)
	} else {
		fmt.Fprintf(buf, "[[%s]]", target)
	}
	for _, child := range e.ChildElements() {
		if err := c.convertBodyBack(child, buf, mode, depth); err != nil {
			return err
		}
	}
	return nil
}

// convertDefinitionList renders dl children as "- term :: definition"
// lines, walking the children strictly pairwise. A trailing term with no
// definition is dropped.
func (c *converter) convertDefinitionList(e *etree.Element, buf *strings.Builder, mode walkMode, depth int) error {
	buf.WriteString("\n")

	attrs := ""
	if h := e.SelectAttrValue("hanging", ""); h == "true" || h == "yes" {
		attrs += " :hanging t"
	}
	if e.SelectAttrValue("spacing", "") == "compact" {
		attrs += " :compact t"
	}
	if attrs != "" {
		fmt.Fprintf(buf, "#+ATTR_RFC:%s\n", attrs)
	}

	children := e.ChildElements()
	for i := 0; i+1 < len(children); i += 2 {
		term := strings.TrimSpace(children[i].Text())
		def := children[i+1]
		lead := strings.TrimLeftFunc(unindent(def.Text()), unicode.IsSpace)
		text, err := c.expandElementText(def, lead, 2, mode, depth)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "- %s :: %s\n", term, text)
	}

	buf.WriteString("\n")
	return nil
}

// convertItemList renders ol and ul elements. Only li children become
// items; ordered lists keep the same dash bullets as unordered ones.
func (c *converter) convertItemList(e *etree.Element, buf *strings.Builder, mode walkMode, depth int) error {
	buf.WriteString("\n")

	if e.SelectAttrValue("spacing", "") == "compact" {
		buf.WriteString("#+ATTR_RFC: :compact t\n")
	}

	for _, item := range e.SelectElements("li") {
		lead := strings.TrimLeftFunc(unindent(item.Text()), unicode.IsSpace)
		text, err := c.expandElementText(item, lead, 2, mode, depth)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "- %s\n", text)
	}

	buf.WriteString("\n")
	return nil
}

// convertFigure emits a source block holding the figure's verbatim
// artwork, preceded by optional caption and name directives.
func (c *converter) convertFigure(e *etree.Element, buf *strings.Builder) error {
	var name string
	if n := e.SelectElement("name"); n != nil {
		name = strings.TrimSpace(n.Text())
	}
	artwork := e.SelectElement("artwork")
	if artwork == nil {
		return ErrFigureArtwork
	}
	if name != "" {
		fmt.Fprintf(buf, "#+caption: %s\n", name)
	}
	writeAttrDirective(e, "anchor", "name", buf)
	fmt.Fprintf(buf, "#+begin_src\n%s\n#+end_src\n", artwork.Text())
	return nil
}
