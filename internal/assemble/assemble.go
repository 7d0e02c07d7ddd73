// Package assemble builds page view models from the content store. Every
// assembler is a pure function: content in, renderable struct out. All
// optional fields are resolved here so templates never see blanks; list
// ordering always follows the source documents.
package assemble

import (
	"strings"
	"unicode"

	"github.com/aldrenb/aldren-dev/internal/content"
	"github.com/aldrenb/aldren-dev/internal/links"
)

// Button is a classified action link ready for the button partial.
type Button struct {
	Label   string
	Href    string
	Variant string // primary, secondary, ghost
	Kind    links.Kind
	NewTab  bool
}

func newButton(label, href, variant string) Button {
	kind := links.Classify(href)
	return Button{
		Label:   label,
		Href:    href,
		Variant: variant,
		Kind:    kind,
		NewTab:  kind.NewTab(),
	}
}

// Chrome is the header/footer block shared by every page.
type Chrome struct {
	Name       string
	Email      string
	Nav        []Button
	FooterNav  []Button
	ContactCta Button
}

func chrome(store *content.Store) Chrome {
	c := Chrome{
		Name:       store.Meta.Name,
		Email:      store.Meta.Email,
		ContactCta: newButton("Contact", "#contact", "secondary"),
	}
	for _, l := range store.Meta.Links {
		c.Nav = append(c.Nav, newButton(l.Label, l.Href, "ghost"))
		c.FooterNav = append(c.FooterNav, newButton(l.Label, l.Href, "secondary"))
	}
	return c
}

// Mailto builds a mailto href from a content field verbatim. No address
// validation; malformed addresses pass through unchanged.
func Mailto(address string) string {
	return "mailto:" + address
}

// Initials derives the fallback-card monogram from a name: first letter of
// the first two words, upper-cased.
func Initials(name string) string {
	var b strings.Builder
	taken := 0
	for _, word := range strings.Fields(name) {
		b.WriteRune(unicode.ToUpper([]rune(word)[0]))
		taken++
		if taken == 2 {
			break
		}
	}
	if taken == 0 {
		return "?"
	}
	return b.String()
}
