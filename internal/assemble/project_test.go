package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldrenb/aldren-dev/internal/content"
	"github.com/aldrenb/aldren-dev/internal/links"
)

func testStore(projects ...content.Project) *content.Store {
	return &content.Store{
		Meta: content.Meta{
			Name:  "Test Person",
			Role:  "Web Developer",
			Email: "test@example.com",
			Links: []content.Link{
				{Label: "Work", Href: "/#work"},
				{Label: "Process", Href: "/process"},
			},
		},
		Projects: projects,
	}
}

func TestProjectBareRecordGetsPlaceholders(t *testing.T) {
	store := testStore(content.Project{Slug: "case-a", Title: "Case A"})
	idx := content.NewIndex(store.Projects, nil)

	p, err := Project(store, idx, "case-a")
	require.NoError(t, err)

	assert.Equal(t, "Case A", p.Title)
	assert.Equal(t, PlaceholderSummary, p.Summary)
	assert.Equal(t, "Contributor", p.Meta.Role)
	assert.Equal(t, "Production", p.Meta.Environment)
	assert.Equal(t, "—", p.Meta.Duration)
	assert.Equal(t, "Web stack", p.Meta.Stack)
	assert.Equal(t, PlaceholderScope, p.Overview.Scope)
	assert.Equal(t, PlaceholderResponsibility, p.Overview.Responsibility)
	assert.Equal(t, PlaceholderProblem, p.Problem)
	assert.Equal(t, PlaceholderApproach, p.Approach)
	assert.Equal(t, PlaceholderReflection, p.Reflection)

	assert.True(t, p.Constraints.IsPlaceholder())
	assert.Equal(t, PlaceholderConstraints, p.Constraints.Placeholder)
	assert.True(t, p.Execution.IsPlaceholder())
	assert.True(t, p.Outcomes.IsPlaceholder())

	assert.Equal(t, "—", p.Architecture.Frontend)
	assert.Equal(t, "—", p.Architecture.Deployment)
	assert.True(t, p.Architecture.ShowHint)

	assert.Nil(t, p.LiveButton)
	assert.Nil(t, p.RepoButton)
	assert.Nil(t, p.HeroImage)
}

func TestProjectUnknownSlugIsNotFound(t *testing.T) {
	store := testStore(content.Project{Slug: "case-a"})
	idx := content.NewIndex(store.Projects, nil)

	_, err := Project(store, idx, "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestProjectPopulatedFieldsPassThrough(t *testing.T) {
	proj := content.Project{
		Slug:    "case-b",
		Title:   "Case B",
		Summary: "A real summary.",
		Meta: content.ProjectMeta{
			Role:     "Lead developer",
			Duration: "6 months",
			Stack:    []string{"Go", "Gin", "SQLite", "Tailwind", "HTMX", "Alpine"},
		},
		Links: content.ProjectLinks{
			Live: "https://example.com",
			Repo: "https://github.com/example/case-b",
		},
		Problem:      "Slow publishing.",
		Constraints:  []string{"Two-week deadline", "Legacy CMS"},
		Architecture: content.ProjectArchitecture{Frontend: "Go templates"},
		Outcomes:     []string{"Faster publishing"},
		HeroImage:    &content.Image{Src: "/images/b.jpg", Alt: "Case B"},
		Video:        "https://example.com/demo",
	}
	store := testStore(proj)
	idx := content.NewIndex(store.Projects, nil)

	p, err := Project(store, idx, "case-b")
	require.NoError(t, err)

	assert.Equal(t, "A real summary.", p.Summary)
	assert.Equal(t, "Lead developer", p.Meta.Role)
	assert.Equal(t, "Production", p.Meta.Environment) // still defaulted
	assert.Equal(t, "6 months", p.Meta.Duration)
	assert.Equal(t, "Go • Gin • SQLite • Tailwind • HTMX", p.Meta.Stack)

	require.NotNil(t, p.LiveButton)
	assert.Equal(t, "https://example.com", p.LiveButton.Href)
	assert.True(t, p.LiveButton.NewTab)
	require.NotNil(t, p.RepoButton)
	assert.Equal(t, links.External, p.RepoButton.Kind)

	assert.Equal(t, []string{"Two-week deadline", "Legacy CMS"}, p.Constraints.Items)
	assert.False(t, p.Constraints.IsPlaceholder())
	assert.True(t, p.Execution.IsPlaceholder())

	assert.Equal(t, "Go templates", p.Architecture.Frontend)
	assert.Equal(t, "—", p.Architecture.CMS)
	assert.False(t, p.Architecture.ShowHint)

	require.NotNil(t, p.HeroImage)
	assert.Equal(t, "/images/b.jpg", p.HeroImage.Src)
	assert.Equal(t, "https://example.com/demo", p.Video)
}

func TestProjectWhitespaceFieldsAreAbsent(t *testing.T) {
	store := testStore(content.Project{
		Slug:  "case-c",
		Title: "   ",
		Links: content.ProjectLinks{Live: "  "},
	})
	idx := content.NewIndex(store.Projects, nil)

	p, err := Project(store, idx, "case-c")
	require.NoError(t, err)

	assert.Equal(t, PlaceholderTitle, p.Title)
	assert.Nil(t, p.LiveButton)
}

func TestProjectChrome(t *testing.T) {
	store := testStore(content.Project{Slug: "case-a"})
	idx := content.NewIndex(store.Projects, nil)

	p, err := Project(store, idx, "case-a")
	require.NoError(t, err)

	assert.Equal(t, "Test Person", p.Chrome.Name)
	require.Len(t, p.Chrome.Nav, 2)
	assert.Equal(t, "Work", p.Chrome.Nav[0].Label)
	assert.Equal(t, "ghost", p.Chrome.Nav[0].Variant)
	assert.Equal(t, links.Anchor, p.Chrome.ContactCta.Kind)
}
