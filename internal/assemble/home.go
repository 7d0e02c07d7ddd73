package assemble

import "github.com/aldrenb/aldren-dev/internal/content"

// HomePage is the view model for the landing page. Section order is fixed:
// hero, credibility, experience, work, how, systems, about, contact.
type HomePage struct {
	Chrome Chrome

	Hero struct {
		RoleLine     string
		Headline     string
		Subheadline  string
		Email        string
		MailtoHref   string
		PrimaryCta   Button
		SecondaryCta Button
		Portrait     content.Image
		ShowPortrait bool
		Initials     string
		Name         string
		Location     string
	}

	Credibility content.Credibility
	Experience  content.Experience
	Work        WorkSection
	How         content.How
	Systems     SystemsSection
	About       content.About

	Contact struct {
		Title      string
		Body       string
		CtaTitle   string
		CtaBody    string
		CtaButtons []Button
		EmailLabel string
		MailtoHref string
	}
}

type WorkSection struct {
	Title string
	Items []WorkCard
}

// WorkCard is one project teaser on the home page.
type WorkCard struct {
	Title     string
	Outcome   string
	Href      string
	Image     *content.Image
	ShowImage bool
	Delay     int // sibling stagger index for the reveal script
}

type SystemsSection struct {
	Title string
	Body  string
	Link  Button
}

// Home assembles the landing page view model.
func Home(store *content.Store) HomePage {
	var p HomePage
	p.Chrome = chrome(store)

	p.Hero.RoleLine = store.Meta.Role
	p.Hero.Headline = store.Hero.Headline
	p.Hero.Subheadline = store.Hero.Subheadline
	p.Hero.Email = store.Hero.Email
	p.Hero.MailtoHref = Mailto(store.Hero.Email)
	p.Hero.PrimaryCta = newButton(store.Hero.PrimaryCta.Label, store.Hero.PrimaryCta.Href, "primary")
	p.Hero.SecondaryCta = newButton(store.Hero.SecondaryCta.Label, store.Hero.SecondaryCta.Href, "secondary")
	p.Hero.Portrait = store.Hero.Portrait
	p.Hero.Initials = Initials(store.Meta.Name)
	p.Hero.Name = store.Meta.Name
	p.Hero.Location = store.Meta.Location

	p.Credibility = store.Credibility
	p.Experience = store.Experience

	p.Work.Title = store.Work.Title
	for i, item := range store.Work.Items {
		p.Work.Items = append(p.Work.Items, WorkCard{
			Title:   item.Title,
			Outcome: item.Outcome,
			Href:    item.Href,
			Image:   item.Image,
			Delay:   i,
		})
	}

	p.How = store.How
	p.Systems = SystemsSection{
		Title: store.Systems.Title,
		Body:  store.Systems.Body,
		Link:  newButton(store.Systems.Link.Label, store.Systems.Link.Href, "secondary"),
	}
	p.About = store.About

	p.Contact.Title = store.Contact.Title
	p.Contact.Body = store.Contact.Body
	p.Contact.CtaTitle = store.Cta.Title
	p.Contact.CtaBody = store.Cta.Body
	for i, b := range store.Cta.Buttons {
		variant := "secondary"
		if i == 0 {
			variant = "primary"
		}
		p.Contact.CtaButtons = append(p.Contact.CtaButtons, newButton(b.Label, b.Href, variant))
	}
	p.Contact.EmailLabel = store.Contact.EmailLabel
	p.Contact.MailtoHref = Mailto(store.Contact.EmailLabel)

	return p
}
