package scm

import "scmforge/node"

//go:generate go tool stringer -type=BackendEnum -trimprefix=Backend -output=backend_string.go

// BackendEnum identifies one supported source-control integration.
type BackendEnum int

const (
	_ BackendEnum = iota // skip zero value, use it as a default (invalid) value for BackendEnum

	BackendGit
	BackendMercurial
	BackendSubversion
	BackendPerforce
	BackendClearCase
	BackendRTC
	BackendCloneWorkspace

	// BackendTotal is a constant that represents the total number of backends defined
	BackendTotal = int(iota)
)

// Config is the tagged union over the backend descriptors. Exactly one
// concrete descriptor type exists per backend; synthesis selects the
// matching emitter by type switch.
type Config interface {
	// Kind identifies the backend this descriptor configures.
	Kind() BackendEnum
	// Validate reports the first problem with the descriptor, if any.
	Validate() error
}

// Remote is one git remote repository reference.
type Remote struct {
	Name          string
	Refspec       string
	URL           string
	CredentialsID string
}

// Browser configures the repository browser sub-tree.
type Browser struct {
	// Class is the fully qualified browser implementation name.
	Class string
	URL   string
}

// MergeOptions configures the pre-build merge sub-tree.
type MergeOptions struct {
	// Remote names the remote whose branch is merged before the build.
	Remote string
	// Branch is the merge target branch.
	Branch string
}

// BuildChooser selects the strategy that picks the revision to build.
type BuildChooser struct {
	// Class is the fully qualified chooser implementation name.
	Class string
}

// Git describes a git checkout.
type Git struct {
	// Remotes lists the remote repositories. Every remote needs a URL.
	Remotes []Remote
	// Branches lists the branch specs to build. Empty means all ("**").
	Branches []string

	Clean              bool
	WipeWorkspace      bool
	PruneBranches      bool
	RemotePoll         bool
	IgnoreNotifyCommit bool
	// CreateTag controls per-build tagging; it is serialized inverted as the
	// skipTag field.
	CreateTag bool

	RelativeTargetDir string
	LocalBranch       string

	// ShallowClone, Reference and CloneTimeout serialize as flat fields on the
	// legacy schema and as a CloneOption extension on the current one.
	ShallowClone bool
	Reference    string
	// CloneTimeout is in minutes; zero means unset.
	CloneTimeout int

	Browser      *Browser
	MergeOptions *MergeOptions
	BuildChooser *BuildChooser

	// Extensions holds pre-built extension sub-trees, emitted only on the
	// current schema.
	Extensions []*node.Node
}

func (Git) Kind() BackendEnum { return BackendGit }

// Mercurial describes a mercurial checkout. Tag and Branch are mutually
// exclusive; with neither set the "default" branch is checked out.
type Mercurial struct {
	URL     string
	Modules []string

	Tag    string
	Branch string

	Clean            bool
	CredentialsID    string
	DisableChangeLog bool
	Installation     string
	Subdirectory     string
}

func (Mercurial) Kind() BackendEnum { return BackendMercurial }

// Location is one subversion checkout location.
type Location struct {
	URL string
	// Dir is the local checkout directory, "." when empty.
	Dir string
}

// Subversion describes a subversion checkout of one or more locations.
type Subversion struct {
	Locations        []Location
	CheckoutStrategy StrategyEnum

	ExcludedRegions            []string
	IncludedRegions            []string
	ExcludedUsers              []string
	ExcludedCommitMessages     []string
	ExcludedRevisionProperties []string
}

func (Subversion) Kind() BackendEnum { return BackendSubversion }

// Perforce describes a perforce checkout.
type Perforce struct {
	// ViewSpec lines are joined with newlines into the project path.
	ViewSpec []string
	// User defaults to "rolem".
	User string
	// Password may be plaintext or already scrambled; scrambling is applied
	// idempotently at synthesis.
	Password string
}

func (Perforce) Kind() BackendEnum { return BackendPerforce }

// ClearCase describes a base ClearCase checkout.
type ClearCase struct {
	LoadRules            []string
	MkviewOptionalParams []string
	ConfigSpec           []string
	// ViewName defaults to the job/node derived view name.
	ViewName string
	// ViewPath defaults to "view".
	ViewPath string
}

func (ClearCase) Kind() BackendEnum { return BackendClearCase }

// RTC describes an enterprise Team Concert checkout. Exactly one of
// BuildDefinition or BuildWorkspace must be set.
type RTC struct {
	// OverrideGlobal replaces the globally configured connection; when set,
	// BuildTool, ServerURI and Credentials are required.
	OverrideGlobal bool
	// Timeout is in seconds.
	Timeout int

	BuildTool   string
	ServerURI   string
	Credentials string

	BuildDefinition string
	BuildWorkspace  string
}

func (RTC) Kind() BackendEnum { return BackendRTC }

// CloneWorkspace reuses the archived workspace of another job.
type CloneWorkspace struct {
	ParentProject string
	// Criteria selects which parent builds qualify; defaults to "Any".
	Criteria string
}

func (CloneWorkspace) Kind() BackendEnum { return BackendCloneWorkspace }
