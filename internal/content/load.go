package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadError means a content document is structurally invalid. It is fatal:
// no page can render without a complete store.
type LoadError struct {
	File    string
	Section string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("content: %s: missing required section %q", e.File, e.Section)
	}
	return fmt.Sprintf("content: %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and validates the site and process documents. Either the whole
// store loads or an error is returned; there is no partial load. Unknown
// JSON fields are ignored.
func Load(siteFile, processFile string) (*Store, error) {
	var store Store
	if err := readJSON(siteFile, &store); err != nil {
		return nil, err
	}
	if err := validateSite(siteFile, &store); err != nil {
		return nil, err
	}
	if err := readJSON(processFile, &store.Process); err != nil {
		return nil, err
	}
	return &store, nil
}

func readJSON(file string, v any) error {
	raw, err := os.ReadFile(file)
	if err != nil {
		return &LoadError{File: file, Err: err}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &LoadError{File: file, Err: err}
	}
	return nil
}

// validateSite checks that every required top-level section is present.
// Sections are required as a whole; fields inside them stay optional and
// fall back to placeholders at assembly time.
func validateSite(file string, s *Store) error {
	missing := func(section string) error {
		return &LoadError{File: file, Section: section}
	}
	switch {
	case s.Meta.Name == "" && s.Meta.Email == "" && len(s.Meta.Links) == 0:
		return missing("meta")
	case s.Hero == (Hero{}):
		return missing("hero")
	case s.Credibility.Title == "" && s.Credibility.Body == "":
		return missing("credibility")
	case s.Experience.Title == "" && len(s.Experience.Roles) == 0:
		return missing("experience")
	case s.Work.Title == "" && len(s.Work.Items) == 0:
		return missing("work")
	case s.How.Title == "" && len(s.How.Principles) == 0:
		return missing("how")
	case s.Systems == (Systems{}):
		return missing("systems")
	case s.About == (About{}):
		return missing("about")
	case s.Cta.Title == "" && len(s.Cta.Buttons) == 0:
		return missing("cta")
	case s.Contact == (Contact{}):
		return missing("contact")
	case s.Projects == nil:
		return missing("projects")
	}
	return nil
}
