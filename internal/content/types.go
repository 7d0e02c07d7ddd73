// Package content holds the immutable site content store: typed structs for
// the two JSON content documents, the loader that validates them, the field
// resolver used by every page, and the slug index over projects.
package content

// Link is a labeled href used for navigation, footers, and CTA buttons.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Image is an opaque image reference. Src is never fetched here; probing
// happens in the safeimg package.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Meta is the site identity block shared by the header and footer.
type Meta struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Links    []Link `json:"links"`
}

type Hero struct {
	Headline     string `json:"headline"`
	Subheadline  string `json:"subheadline"`
	Email        string `json:"email"`
	PrimaryCta   Link   `json:"primaryCta"`
	SecondaryCta Link   `json:"secondaryCta"`
	Portrait     Image  `json:"portrait"`
}

type Credibility struct {
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	Bullets []string `json:"bullets"`
}

type Role struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Date       string   `json:"date"`
	Highlights []string `json:"highlights"`
}

type Experience struct {
	Title string `json:"title"`
	Roles []Role `json:"roles"`
}

type WorkItem struct {
	Title   string `json:"title"`
	Outcome string `json:"outcome"`
	Href    string `json:"href"`
	Image   *Image `json:"image"`
}

type Work struct {
	Title string     `json:"title"`
	Items []WorkItem `json:"items"`
}

type Principle struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type How struct {
	Title      string      `json:"title"`
	Intro      string      `json:"intro"`
	Principles []Principle `json:"principles"`
}

type Systems struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Link  Link   `json:"link"`
}

type About struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Cta struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Buttons []Link `json:"buttons"`
}

type Contact struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	EmailLabel string `json:"emailLabel"`
}

// ProjectMeta is the role/environment/duration/stack card on a case study.
type ProjectMeta struct {
	Role        string   `json:"role"`
	Environment string   `json:"environment"`
	Duration    string   `json:"duration"`
	Stack       []string `json:"stack"`
}

type ProjectLinks struct {
	Live string `json:"live"`
	Repo string `json:"repo"`
}

type ProjectOverview struct {
	Scope          string `json:"scope"`
	Responsibility string `json:"responsibility"`
}

type ProjectArchitecture struct {
	Frontend   string `json:"frontend"`
	CMS        string `json:"cms"`
	Data       string `json:"data"`
	Deployment string `json:"deployment"`
}

// Empty reports whether no architecture field is set. The case-study page
// shows an extra authoring hint when the whole card is blank.
func (a ProjectArchitecture) Empty() bool {
	return a.Frontend == "" && a.CMS == "" && a.Data == "" && a.Deployment == ""
}

// Project is a single case study. Slug is the only external identifier;
// every other field is optional and falls back to a field-specific
// placeholder at assembly time.
type Project struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	HeroImage *Image `json:"heroImage"`
	Video     string `json:"video"`

	Meta  ProjectMeta  `json:"meta"`
	Links ProjectLinks `json:"links"`

	Overview ProjectOverview `json:"overview"`

	Problem     string   `json:"problem"`
	Constraints []string `json:"constraints"`
	Approach    string   `json:"approach"`

	Architecture ProjectArchitecture `json:"architecture"`

	Execution []string `json:"execution"`
	Outcomes  []string `json:"outcomes"`

	Reflection string `json:"reflection"`
}

// Store is the root content document. It is loaded once at startup and
// never mutated; every handler reads the same snapshot.
type Store struct {
	Meta        Meta        `json:"meta"`
	Hero        Hero        `json:"hero"`
	Credibility Credibility `json:"credibility"`
	Experience  Experience  `json:"experience"`
	Work        Work        `json:"work"`
	How         How         `json:"how"`
	Systems     Systems     `json:"systems"`
	About       About       `json:"about"`
	Cta         Cta         `json:"cta"`
	Contact     Contact     `json:"contact"`
	Projects    []Project   `json:"projects"`

	Process Process `json:"-"`
}

// Process is the second content document, backing the /process page.
// Every section is optional; the assembler supplies defaults.
type Process struct {
	Meta struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
	} `json:"meta"`
	Principles struct {
		Title string      `json:"title"`
		Items []Principle `json:"items"`
	} `json:"principles"`
	Loop struct {
		Title string `json:"title"`
		Steps []struct {
			Title   string   `json:"title"`
			Bullets []string `json:"bullets"`
		} `json:"steps"`
	} `json:"loop"`
	Tooling struct {
		Title string      `json:"title"`
		Items []Principle `json:"items"`
	} `json:"tooling"`
	Cta struct {
		Title   string `json:"title"`
		Body    string `json:"body"`
		Buttons []Link `json:"buttons"`
	} `json:"cta"`
}
