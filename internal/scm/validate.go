package scm

import (
	"fmt"

	"scmforge/internal/diagnostic"
)

// Validate checks the git descriptor. Remotes are optional, but a remote
// without a URL is useless to the consuming system.
func (g Git) Validate() error {
	for i, r := range g.Remotes {
		if r.URL == "" {
			return diagnostic.MissingField(fmt.Sprintf("remotes[%d].url", i))
		}
	}

	if g.CloneTimeout < 0 {
		return diagnostic.Invariant("clone timeout must not be negative, got %d", g.CloneTimeout)
	}

	return nil
}

// Validate checks the mercurial descriptor.
func (m Mercurial) Validate() error {
	if m.URL == "" {
		return diagnostic.MissingField("url")
	}

	if m.Tag != "" && m.Branch != "" {
		return diagnostic.Conflicting("tag", "branch")
	}

	return nil
}

// Validate checks the subversion descriptor.
func (s Subversion) Validate() error {
	if len(s.Locations) == 0 {
		return diagnostic.MissingField("locations")
	}

	for i, loc := range s.Locations {
		if loc.URL == "" {
			return diagnostic.MissingField(fmt.Sprintf("locations[%d].url", i))
		}
	}

	if !s.CheckoutStrategy.IsValid() {
		return diagnostic.Invariant("unknown checkout strategy %d", int(s.CheckoutStrategy))
	}

	return nil
}

// Validate checks the perforce descriptor.
func (p Perforce) Validate() error {
	if len(p.ViewSpec) == 0 {
		return diagnostic.MissingField("viewspec")
	}

	return nil
}

// Validate checks the ClearCase descriptor. Every field has a schema
// default, so there is nothing to reject.
func (ClearCase) Validate() error {
	return nil
}

// Validate checks the RTC descriptor.
func (r RTC) Validate() error {
	if r.Timeout < 0 {
		return diagnostic.Invariant("timeout must not be negative, got %d", r.Timeout)
	}

	if r.OverrideGlobal {
		switch {
		case r.BuildTool == "":
			return diagnostic.MissingField("buildTool")
		case r.ServerURI == "":
			return diagnostic.MissingField("serverURI")
		case r.Credentials == "":
			return diagnostic.MissingField("credentials")
		}
	}

	if r.BuildDefinition != "" && r.BuildWorkspace != "" {
		return diagnostic.Conflicting("buildDefinition", "buildWorkspace")
	}

	if r.BuildDefinition == "" && r.BuildWorkspace == "" {
		return diagnostic.Unsupported("either buildDefinition or buildWorkspace must be set")
	}

	return nil
}

// Validate checks the clone-workspace descriptor. An empty criteria is
// permitted and defaults at synthesis.
func (c CloneWorkspace) Validate() error {
	if c.ParentProject == "" {
		return diagnostic.MissingField("parentProject")
	}

	if c.Criteria != "" && !ValidCriteria(c.Criteria) {
		return diagnostic.Invariant("criteria %q is not one of: %s", c.Criteria, criteriaList())
	}

	return nil
}
