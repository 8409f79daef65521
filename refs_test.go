package rfc2org

import (
	"maps"
	"testing"

	"github.com/beevik/etree"
)

// mustParse parses an XML fragment and returns its root element.
func mustParse(t *testing.T, source string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(source); err != nil {
		t.Fatalf("ReadFromString() error = %v", err)
	}
	root := doc.Root()
	if root == nil {
		t.Fatalf("ReadFromString() produced no root element")
	}
	return root
}

func TestCollectSectionRefs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected map[string]int
	}{
		{
			name:     "anchored section without references",
			source:   `<rfc><middle><section anchor="intro"><t>hi</t></section></middle></rfc>`,
			expected: map[string]int{"intro": 0},
		},
		{
			name: "xref increments its target",
			source: `<rfc><middle>
				<section anchor="intro"><t>See <xref target="deep"/> and <xref target="deep"/>.</t></section>
				<section anchor="deep"><t>x</t></section>
			</middle></rfc>`,
			expected: map[string]int{"intro": 0, "deep": 2},
		},
		{
			name: "xref to unknown target ignored",
			source: `<rfc><middle>
				<section anchor="intro"><t><xref target="RFC9999"/></t></section>
			</middle></rfc>`,
			expected: map[string]int{"intro": 0},
		},
		{
			name: "section without anchor skipped",
			source: `<rfc><middle>
				<section><t>x</t></section>
				<section anchor=""><t>y</t></section>
			</middle></rfc>`,
			expected: map[string]int{},
		},
		{
			name: "nested sections collected",
			source: `<rfc><middle>
				<section anchor="outer"><section anchor="inner"><t>x</t></section></section>
			</middle></rfc>`,
			expected: map[string]int{"outer": 0, "inner": 0},
		},
		{
			name: "duplicate anchors share one entry",
			source: `<rfc><middle>
				<section anchor="dup"><t>a</t></section>
				<section anchor="dup"><t><xref target="dup"/></t></section>
			</middle></rfc>`,
			expected: map[string]int{"dup": 1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := collectSectionRefs(mustParse(t, tt.source))
			if !maps.Equal(got, tt.expected) {
				t.Errorf("collectSectionRefs() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCollectSectionRefsIdempotent(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `<rfc><middle>
		<section anchor="a"><t><xref target="b"/></t></section>
		<section anchor="b"><t>x</t></section>
	</middle></rfc>`)

	first := collectSectionRefs(root)
	second := collectSectionRefs(root)
	if !maps.Equal(first, second) {
		t.Errorf("repeated collection diverged: %v then %v", first, second)
	}
}
