package assemble

import "github.com/aldrenb/aldren-dev/internal/content"

// Defaults for the process page. Like the case-study placeholders these are
// authoring aids, shown whenever a section of content/process.json is blank.
const (
	DefaultProcessTitle    = "Systems & process"
	DefaultProcessSubtitle = "I design delivery workflows that reduce ambiguity and improve reliability."

	DefaultPrinciplesTitle = "What I optimize for"
	PlaceholderPrinciples  = "Add principles content in content/process.json."

	DefaultLoopTitle     = "My delivery loop"
	PlaceholderLoopSteps = "Add steps in process.loop.steps."
	PlaceholderStep      = "Add 3–5 bullets describing what you do in this step."

	DefaultToolingTitle = "Tooling & habits"
	PlaceholderTooling  = "Add tooling items in process.tooling.items."

	DefaultProcessCtaTitle = "Want to work together?"
	DefaultProcessCtaBody  = "If you need a reliable developer who can own delivery and reduce ambiguity, let’s talk."
)

// ProcessPage is the /process view model.
type ProcessPage struct {
	Chrome Chrome

	Title    string
	Subtitle string

	ContactButton Button
	WorkButton    Button

	Principles CardSection
	Loop       LoopSection
	Tooling    CardSection

	Cta struct {
		Title     string
		Body      string
		Primary   Button
		Secondary Button
	}
}

// CardSection is a titled grid of title/body cards, with a placeholder
// card when the section has no items.
type CardSection struct {
	Title       string
	Items       []content.Principle
	Placeholder string
}

func (s CardSection) Empty() bool { return len(s.Items) == 0 }

type LoopSection struct {
	Title       string
	Steps       []LoopStep
	Placeholder string
}

func (s LoopSection) Empty() bool { return len(s.Steps) == 0 }

// LoopStep is one delivery-loop card with its resolved bullet list.
type LoopStep struct {
	Title   string
	Bullets content.ListOrPlaceholder
}

// Process assembles the /process page view model.
func Process(store *content.Store) ProcessPage {
	proc := store.Process

	var p ProcessPage
	p.Chrome = chrome(store)

	p.Title = content.Text(proc.Meta.Title, DefaultProcessTitle)
	p.Subtitle = content.Text(proc.Meta.Subtitle, DefaultProcessSubtitle)

	p.ContactButton = newButton("Contact", "/#contact", "primary")
	p.WorkButton = newButton("View case studies", "/#work", "secondary")

	p.Principles = CardSection{
		Title:       content.Text(proc.Principles.Title, DefaultPrinciplesTitle),
		Items:       proc.Principles.Items,
		Placeholder: PlaceholderPrinciples,
	}

	p.Loop = LoopSection{
		Title:       content.Text(proc.Loop.Title, DefaultLoopTitle),
		Placeholder: PlaceholderLoopSteps,
	}
	for _, step := range proc.Loop.Steps {
		p.Loop.Steps = append(p.Loop.Steps, LoopStep{
			Title:   step.Title,
			Bullets: content.List(step.Bullets, PlaceholderStep),
		})
	}

	p.Tooling = CardSection{
		Title:       content.Text(proc.Tooling.Title, DefaultToolingTitle),
		Items:       proc.Tooling.Items,
		Placeholder: PlaceholderTooling,
	}

	p.Cta.Title = content.Text(proc.Cta.Title, DefaultProcessCtaTitle)
	p.Cta.Body = content.Text(proc.Cta.Body, DefaultProcessCtaBody)
	p.Cta.Primary = ctaButton(proc.Cta.Buttons, 0, "Contact", "/#contact", "primary")
	p.Cta.Secondary = ctaButton(proc.Cta.Buttons, 1, "View work", "/#work", "secondary")

	return p
}

// ctaButton picks the i-th configured CTA button, falling back to the
// default label and href when the slot is missing.
func ctaButton(buttons []content.Link, i int, label, href, variant string) Button {
	if i < len(buttons) {
		b := buttons[i]
		return newButton(
			content.Text(b.Label, label),
			content.Text(b.Href, href),
			variant,
		)
	}
	return newButton(label, href, variant)
}
