package scm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scmforge/internal/diagnostic"
)

func TestGit_Validate(t *testing.T) {
	assert.NoError(t, Git{}.Validate())
	assert.NoError(t, Git{Remotes: []Remote{{URL: "https://example.org/repo.git"}}}.Validate())

	err := Git{Remotes: []Remote{{Name: "origin"}}}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrMissingField))

	err = Git{CloneTimeout: -5}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrInvariantViolation))
}

func TestMercurial_Validate(t *testing.T) {
	assert.NoError(t, Mercurial{URL: "https://example.org/hg"}.Validate())

	err := Mercurial{}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrMissingField))

	err = Mercurial{URL: "https://example.org/hg", Tag: "v1", Branch: "main"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrConflictingFields))
}

func TestMercurial_TagBranchConflictRegardlessOfOtherFields(t *testing.T) {
	cfg := Mercurial{
		URL:           "https://example.org/hg",
		Tag:           "v1",
		Branch:        "main",
		Clean:         true,
		CredentialsID: "creds",
		Installation:  "hg-3",
		Subdirectory:  "src",
	}

	assert.True(t, errors.Is(cfg.Validate(), diagnostic.ErrConflictingFields))
}

func TestSubversion_Validate(t *testing.T) {
	assert.NoError(t, Subversion{Locations: []Location{{URL: "https://x/svn/trunk"}}}.Validate())

	err := Subversion{}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrMissingField))

	err = Subversion{Locations: []Location{{Dir: "."}}}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrMissingField))

	err = Subversion{
		Locations:        []Location{{URL: "https://x/svn/trunk"}},
		CheckoutStrategy: StrategyEnum(99),
	}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrInvariantViolation))
}

func TestPerforce_Validate(t *testing.T) {
	assert.NoError(t, Perforce{ViewSpec: []string{"//depot/... //builds/..."}}.Validate())
	assert.True(t, errors.Is(Perforce{}.Validate(), diagnostic.ErrMissingField))
}

func TestClearCase_Validate(t *testing.T) {
	assert.NoError(t, ClearCase{}.Validate())
}

func TestRTC_Validate(t *testing.T) {
	assert.NoError(t, RTC{BuildDefinition: "nightly"}.Validate())
	assert.NoError(t, RTC{BuildWorkspace: "dev-stream"}.Validate())

	err := RTC{BuildDefinition: "nightly", BuildWorkspace: "dev-stream"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrConflictingFields))

	err = RTC{}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrUnsupportedCombination))

	err = RTC{OverrideGlobal: true, BuildDefinition: "nightly"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrMissingField))

	full := RTC{
		OverrideGlobal:  true,
		BuildTool:       "rtc-4",
		ServerURI:       "https://rtc.example.org/ccm",
		Credentials:     "rtc-creds",
		BuildDefinition: "nightly",
	}
	assert.NoError(t, full.Validate())
}

func TestCloneWorkspace_Validate(t *testing.T) {
	assert.NoError(t, CloneWorkspace{ParentProject: "upstream"}.Validate())
	assert.NoError(t, CloneWorkspace{ParentProject: "upstream", Criteria: "Any"}.Validate())
	assert.NoError(t, CloneWorkspace{ParentProject: "upstream", Criteria: "Not Failed"}.Validate())

	err := CloneWorkspace{}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrMissingField))

	err = CloneWorkspace{ParentProject: "upstream", Criteria: "Bogus"}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostic.ErrInvariantViolation))
	assert.Contains(t, err.Error(), "Any, Not Failed, Successful")
}

func TestParseStrategy(t *testing.T) {
	for s := StrategyUpdate; s.IsValid(); s++ {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStrategy("bogus")
	assert.Error(t, err)
}

func TestStrategyEnum_UpdaterClass(t *testing.T) {
	assert.Equal(t, "hudson.scm.subversion.UpdateUpdater", StrategyUpdate.UpdaterClass())
	assert.Equal(t, "hudson.scm.subversion.CheckoutUpdater", StrategyCheckout.UpdaterClass())
	assert.Equal(t, "hudson.scm.subversion.UpdateWithCleanUpdater", StrategyUpdateWithClean.UpdaterClass())
	assert.Equal(t, "hudson.scm.subversion.UpdateWithRevertUpdater", StrategyUpdateWithRevert.UpdaterClass())
}

func TestBackendEnum_String(t *testing.T) {
	assert.Equal(t, "Git", BackendGit.String())
	assert.Equal(t, "CloneWorkspace", BackendCloneWorkspace.String())
}
