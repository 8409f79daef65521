package rfc2org

import "github.com/beevik/etree"

// collectSectionRefs builds the section cross-reference table: every
// non-empty section anchor mapped to the number of xref elements that
// target it. Duplicate anchors share a single entry. The table is built
// in full before conversion starts and is read-only afterward.
func collectSectionRefs(root *etree.Element) map[string]int {
	refs := make(map[string]int)

	for _, e := range root.FindElements(".//section") {
		if anchor := e.SelectAttrValue("anchor", ""); anchor != "" {
			refs[anchor] = 0
		}
	}

	for _, e := range root.FindElements(".//xref") {
		if target := e.SelectAttrValue("target", ""); target != "" {
			if _, ok := refs[target]; ok {
				refs[target]++
			}
		}
	}

	return refs
}
