// Package links classifies hrefs so templates can decide navigation
// behavior (same-tab vs new-tab) without inspecting URLs themselves.
package links

import "strings"

// Kind is the shape of an href.
type Kind int

const (
	// Internal is an in-site path handled by the router.
	Internal Kind = iota
	// Anchor is a same-page fragment link.
	Anchor
	// External is an absolute http(s) URL.
	External
	// Document is a downloadable document such as a PDF.
	Document
)

func (k Kind) String() string {
	switch k {
	case Anchor:
		return "anchor"
	case External:
		return "external"
	case Document:
		return "document"
	default:
		return "internal"
	}
}

// NewTab reports whether links of this kind open in a new tab.
func (k Kind) NewTab() bool {
	return k == External || k == Document
}

// Classify maps an href to its Kind. Classification affects navigation
// behavior only, never data correctness: an unrecognized href is simply
// Internal.
func Classify(href string) Kind {
	switch {
	case strings.HasPrefix(href, "#"):
		return Anchor
	case strings.HasPrefix(href, "http"):
		return External
	case strings.HasSuffix(href, ".pdf"):
		return Document
	default:
		return Internal
	}
}
