package assemble

import (
	"github.com/aldrenb/aldren-dev/internal/content"
)

// Placeholders for absent case-study fields. Field-specific on purpose:
// they tell the content author exactly what is missing, so they must stay
// stable and must not collapse into a generic "N/A".
const (
	PlaceholderTitle   = "Project case study"
	PlaceholderSummary = "A production project focused on clarity, maintainability, and real-world delivery."

	PlaceholderRole        = "Contributor"
	PlaceholderEnvironment = "Production"
	PlaceholderDuration    = "—"

	PlaceholderScope          = "Scope placeholder — describe what the system does and who it served."
	PlaceholderResponsibility = "Responsibility placeholder — list what you owned end-to-end."

	PlaceholderProblem     = "Add 2–4 sentences describing what was broken, slow, unclear, risky, or costly — and why it mattered."
	PlaceholderConstraints = "Add 3–6 constraints: time pressure, stakeholders, legacy systems, infrastructure limits, team size, content workflows, etc."
	PlaceholderApproach    = "Explain your thinking: tradeoffs, why you chose X over Y, and how you prioritized maintainability and delivery."

	PlaceholderArchField = "—"
	PlaceholderArchHint  = "Add a simple breakdown: frontend, CMS, data layer, deployment, CI/CD — keep it calm and readable."

	PlaceholderExecution  = "Add 4–8 bullets of what you built/owned: modules, workflows, deployment setup, patterns, reliability improvements."
	PlaceholderOutcomes   = "Add 2–6 outcomes. Even without numbers, be specific: what improved, what became easier, what risk was reduced."
	PlaceholderReflection = "Add what you’d improve next, what you learned, and what you’d do differently. This signals seniority."
)

// ProjectPage is the case-study view model.
type ProjectPage struct {
	Chrome Chrome

	Slug    string
	Title   string
	Summary string

	BackButton Button
	LiveButton *Button
	RepoButton *Button

	Meta struct {
		Role        string
		Environment string
		Duration    string
		Stack       string
	}

	Overview struct {
		Scope          string
		Responsibility string
	}

	HeroImage     *content.Image
	ShowHeroImage bool
	Initials      string
	Video         string

	Problem     string
	Constraints content.ListOrPlaceholder
	Approach    string

	Architecture struct {
		Frontend   string
		CMS        string
		Data       string
		Deployment string
		ShowHint   bool
	}

	Execution content.ListOrPlaceholder
	Outcomes  content.ListOrPlaceholder

	Reflection    string
	MoreButton    Button
	ContactButton Button
}

// Project assembles the case-study page for slug. Returns
// content.ErrNotFound when the slug has no project; the handler turns that
// into a 404 page, not an application error.
func Project(store *content.Store, idx *content.Index, slug string) (*ProjectPage, error) {
	proj, err := idx.BySlug(slug)
	if err != nil {
		return nil, err
	}

	var p ProjectPage
	p.Chrome = chrome(store)
	p.Slug = proj.Slug
	p.Title = content.Text(proj.Title, PlaceholderTitle)
	p.Summary = content.Text(proj.Summary, PlaceholderSummary)

	p.BackButton = newButton("Back to Work", "/#work", "primary")
	if live := proj.Links.Live; content.Text(live, "") != "" {
		b := newButton("Live Site", live, "secondary")
		p.LiveButton = &b
	}
	if repo := proj.Links.Repo; content.Text(repo, "") != "" {
		b := newButton("Repo", repo, "secondary")
		p.RepoButton = &b
	}

	p.Meta.Role = content.Text(proj.Meta.Role, PlaceholderRole)
	p.Meta.Environment = content.Text(proj.Meta.Environment, PlaceholderEnvironment)
	p.Meta.Duration = content.Text(proj.Meta.Duration, PlaceholderDuration)
	p.Meta.Stack = content.StackDisplay(proj.Meta.Stack)

	p.Overview.Scope = content.Text(proj.Overview.Scope, PlaceholderScope)
	p.Overview.Responsibility = content.Text(proj.Overview.Responsibility, PlaceholderResponsibility)

	p.HeroImage = proj.HeroImage
	p.Initials = "PRJ"
	p.Video = proj.Video

	p.Problem = content.Text(proj.Problem, PlaceholderProblem)
	p.Constraints = content.List(proj.Constraints, PlaceholderConstraints)
	p.Approach = content.Text(proj.Approach, PlaceholderApproach)

	p.Architecture.Frontend = content.Text(proj.Architecture.Frontend, PlaceholderArchField)
	p.Architecture.CMS = content.Text(proj.Architecture.CMS, PlaceholderArchField)
	p.Architecture.Data = content.Text(proj.Architecture.Data, PlaceholderArchField)
	p.Architecture.Deployment = content.Text(proj.Architecture.Deployment, PlaceholderArchField)
	p.Architecture.ShowHint = proj.Architecture.Empty()

	p.Execution = content.List(proj.Execution, PlaceholderExecution)
	p.Outcomes = content.List(proj.Outcomes, PlaceholderOutcomes)

	p.Reflection = content.Text(proj.Reflection, PlaceholderReflection)
	p.MoreButton = newButton("View more work", "/#work", "primary")
	p.ContactButton = newButton("Contact", "/#contact", "secondary")

	return &p, nil
}
