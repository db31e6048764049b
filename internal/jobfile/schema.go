package jobfile

import (
	"fmt"

	"scmforge/internal/common"
	"scmforge/internal/scm"
)

// File represents the root of a YAML job checkout description.
type File struct {
	// Multi permits more than one checkout per job.
	Multi bool `yaml:"multi,omitempty"`

	// SCM lists the checkouts in invocation order.
	SCM []Entry `yaml:"scm"`
}

// Entry is one checkout. Exactly one backend key must be set.
type Entry struct {
	Git            *GitSpec            `yaml:"git,omitempty"`
	Hg             *HgSpec             `yaml:"hg,omitempty"`
	Svn            *SvnSpec            `yaml:"svn,omitempty"`
	P4             *P4Spec             `yaml:"p4,omitempty"`
	ClearCase      *ClearCaseSpec      `yaml:"clearcase,omitempty"`
	RTC            *RTCSpec            `yaml:"rtc,omitempty"`
	CloneWorkspace *CloneWorkspaceSpec `yaml:"clone-workspace,omitempty"`
}

// GitSpec mirrors scm.Git in YAML form.
type GitSpec struct {
	Remotes  []RemoteSpec `yaml:"remotes,omitempty"`
	Branches StringOrList `yaml:"branches,omitempty"`

	Clean              bool `yaml:"clean,omitempty"`
	WipeWorkspace      bool `yaml:"wipe-workspace,omitempty"`
	PruneBranches      bool `yaml:"prune-branches,omitempty"`
	RemotePoll         bool `yaml:"remote-poll,omitempty"`
	IgnoreNotifyCommit bool `yaml:"ignore-notify-commit,omitempty"`
	CreateTag          bool `yaml:"create-tag,omitempty"`

	RelativeTargetDir string `yaml:"relative-target-dir,omitempty"`
	LocalBranch       string `yaml:"local-branch,omitempty"`

	Shallow      bool   `yaml:"shallow,omitempty"`
	Reference    string `yaml:"reference,omitempty"`
	CloneTimeout int    `yaml:"clone-timeout,omitempty"`
}

// RemoteSpec mirrors scm.Remote in YAML form.
type RemoteSpec struct {
	Name          string `yaml:"name,omitempty"`
	Refspec       string `yaml:"refspec,omitempty"`
	URL           string `yaml:"url"`
	CredentialsID string `yaml:"credentials,omitempty"`
}

func (g *GitSpec) config() scm.Config {
	return scm.Git{
		Remotes:            remotes(g.Remotes),
		Branches:           g.Branches,
		Clean:              g.Clean,
		WipeWorkspace:      g.WipeWorkspace,
		PruneBranches:      g.PruneBranches,
		RemotePoll:         g.RemotePoll,
		IgnoreNotifyCommit: g.IgnoreNotifyCommit,
		CreateTag:          g.CreateTag,
		RelativeTargetDir:  g.RelativeTargetDir,
		LocalBranch:        g.LocalBranch,
		ShallowClone:       g.Shallow,
		Reference:          g.Reference,
		CloneTimeout:       g.CloneTimeout,
	}
}

func remotes(specs []RemoteSpec) []scm.Remote {
	out := make([]scm.Remote, 0, len(specs))
	for _, r := range specs {
		out = append(out, scm.Remote{
			Name:          r.Name,
			Refspec:       r.Refspec,
			URL:           r.URL,
			CredentialsID: r.CredentialsID,
		})
	}

	return out
}

// HgSpec mirrors scm.Mercurial in YAML form.
type HgSpec struct {
	URL     string       `yaml:"url"`
	Modules StringOrList `yaml:"modules,omitempty"`

	Tag    string `yaml:"tag,omitempty"`
	Branch string `yaml:"branch,omitempty"`

	Clean            bool   `yaml:"clean,omitempty"`
	CredentialsID    string `yaml:"credentials,omitempty"`
	DisableChangeLog bool   `yaml:"disable-changelog,omitempty"`
	Installation     string `yaml:"installation,omitempty"`
	Subdirectory     string `yaml:"subdirectory,omitempty"`
}

func (h *HgSpec) config() scm.Config {
	return scm.Mercurial{
		URL:              h.URL,
		Modules:          h.Modules,
		Tag:              h.Tag,
		Branch:           h.Branch,
		Clean:            h.Clean,
		CredentialsID:    h.CredentialsID,
		DisableChangeLog: h.DisableChangeLog,
		Installation:     h.Installation,
		Subdirectory:     h.Subdirectory,
	}
}

// SvnSpec mirrors scm.Subversion in YAML form.
type SvnSpec struct {
	Locations []LocationSpec `yaml:"locations"`
	Strategy  string         `yaml:"strategy,omitempty"`

	ExcludedRegions            StringOrList `yaml:"excluded-regions,omitempty"`
	IncludedRegions            StringOrList `yaml:"included-regions,omitempty"`
	ExcludedUsers              StringOrList `yaml:"excluded-users,omitempty"`
	ExcludedCommitMessages     StringOrList `yaml:"excluded-commit-messages,omitempty"`
	ExcludedRevisionProperties StringOrList `yaml:"excluded-revision-properties,omitempty"`
}

// LocationSpec mirrors scm.Location in YAML form.
type LocationSpec struct {
	URL string `yaml:"url"`
	Dir string `yaml:"dir,omitempty"`
}

func (s *SvnSpec) config() (scm.Config, error) {
	strategy := scm.StrategyUpdate
	if s.Strategy != "" {
		var err error

		strategy, err = scm.ParseStrategy(s.Strategy)
		if err != nil {
			return nil, err
		}
	}

	locations := make([]scm.Location, 0, len(s.Locations))
	for _, loc := range s.Locations {
		locations = append(locations, scm.Location{URL: loc.URL, Dir: loc.Dir})
	}

	return scm.Subversion{
		Locations:                  locations,
		CheckoutStrategy:           strategy,
		ExcludedRegions:            s.ExcludedRegions,
		IncludedRegions:            s.IncludedRegions,
		ExcludedUsers:              s.ExcludedUsers,
		ExcludedCommitMessages:     s.ExcludedCommitMessages,
		ExcludedRevisionProperties: s.ExcludedRevisionProperties,
	}, nil
}

// P4Spec mirrors scm.Perforce in YAML form.
type P4Spec struct {
	View     StringOrList `yaml:"view"`
	User     string       `yaml:"user,omitempty"`
	Password string       `yaml:"password,omitempty"`
}

func (p *P4Spec) config() scm.Config {
	return scm.Perforce{ViewSpec: p.View, User: p.User, Password: p.Password}
}

// ClearCaseSpec mirrors scm.ClearCase in YAML form.
type ClearCaseSpec struct {
	LoadRules    StringOrList `yaml:"load-rules,omitempty"`
	MkviewParams StringOrList `yaml:"mkview-params,omitempty"`
	ConfigSpec   StringOrList `yaml:"config-spec,omitempty"`
	ViewName     string       `yaml:"view-name,omitempty"`
	ViewPath     string       `yaml:"view-path,omitempty"`
}

func (c *ClearCaseSpec) config() scm.Config {
	return scm.ClearCase{
		LoadRules:            c.LoadRules,
		MkviewOptionalParams: c.MkviewParams,
		ConfigSpec:           c.ConfigSpec,
		ViewName:             c.ViewName,
		ViewPath:             c.ViewPath,
	}
}

// RTCSpec mirrors scm.RTC in YAML form.
type RTCSpec struct {
	OverrideGlobal bool `yaml:"override-global,omitempty"`
	Timeout        int  `yaml:"timeout,omitempty"`

	BuildTool   string `yaml:"build-tool,omitempty"`
	ServerURI   string `yaml:"server-uri,omitempty"`
	Credentials string `yaml:"credentials,omitempty"`

	BuildDefinition string `yaml:"build-definition,omitempty"`
	BuildWorkspace  string `yaml:"build-workspace,omitempty"`
}

func (r *RTCSpec) config() scm.Config {
	return scm.RTC{
		OverrideGlobal:  r.OverrideGlobal,
		Timeout:         r.Timeout,
		BuildTool:       r.BuildTool,
		ServerURI:       r.ServerURI,
		Credentials:     r.Credentials,
		BuildDefinition: r.BuildDefinition,
		BuildWorkspace:  r.BuildWorkspace,
	}
}

// CloneWorkspaceSpec mirrors scm.CloneWorkspace in YAML form.
type CloneWorkspaceSpec struct {
	Parent   string `yaml:"parent"`
	Criteria string `yaml:"criteria,omitempty"`
}

func (c *CloneWorkspaceSpec) config() scm.Config {
	return scm.CloneWorkspace{ParentProject: c.Parent, Criteria: c.Criteria}
}

// config returns the descriptor of the single backend key set on the entry.
func (e Entry) config() (scm.Config, error) {
	var configs []scm.Config

	if e.Git != nil {
		configs = append(configs, e.Git.config())
	}

	if e.Hg != nil {
		configs = append(configs, e.Hg.config())
	}

	if e.Svn != nil {
		cfg, err := e.Svn.config()
		if err != nil {
			return nil, err
		}

		configs = append(configs, cfg)
	}

	if e.P4 != nil {
		configs = append(configs, e.P4.config())
	}

	if e.ClearCase != nil {
		configs = append(configs, e.ClearCase.config())
	}

	if e.RTC != nil {
		configs = append(configs, e.RTC.config())
	}

	if e.CloneWorkspace != nil {
		configs = append(configs, e.CloneWorkspace.config())
	}

	if !common.IsSingle(configs) {
		return nil, fmt.Errorf("entry has %d backend keys, want exactly one", len(configs))
	}

	cfg, _ := common.First(configs)

	return cfg, nil
}
