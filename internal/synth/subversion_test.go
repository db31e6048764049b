package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scmforge/internal/scm"
)

func TestSubversion_SingleLocationDefaults(t *testing.T) {
	c := New()

	err := c.Subversion(scm.Subversion{
		Locations: []scm.Location{{URL: "https://x/svn/trunk", Dir: "."}},
	}, nil)
	require.NoError(t, err)
	require.Len(t, c.Trees(), 1)

	tree := c.Trees()[0]
	assert.Equal(t, "hudson.scm.SubversionSCM", tree.Attrs["class"])

	locations := tree.Child("locations")
	require.NotNil(t, locations)
	require.Len(t, locations.Children, 1)

	loc := locations.Children[0]
	assert.Equal(t, "hudson.scm.SubversionSCM_-ModuleLocation", loc.Label)
	assert.Equal(t, "https://x/svn/trunk", loc.Text("remote"))
	assert.Equal(t, ".", loc.Text("local"))

	for _, label := range []string{
		"excludedRegions",
		"includedRegions",
		"excludedUsers",
		"excludedCommitMessages",
		"excludedRevprop",
	} {
		child := tree.Child(label)
		require.NotNil(t, child, label)
		assert.True(t, child.HasValue, label)
		assert.Equal(t, "", child.Value, label)
	}

	updater := tree.Child("workspaceUpdater")
	require.NotNil(t, updater)
	assert.Equal(t, "hudson.scm.subversion.UpdateUpdater", updater.Attrs["class"])
}

func TestSubversion_LocalDirDefaultsToDot(t *testing.T) {
	c := New()

	require.NoError(t, c.Subversion(scm.Subversion{
		Locations: []scm.Location{{URL: "https://x/svn/trunk"}},
	}, nil))

	loc := c.Trees()[0].Child("locations").Children[0]
	assert.Equal(t, ".", loc.Text("local"))
}

func TestSubversion_MultipleLocationsKeepOrder(t *testing.T) {
	c := New()

	require.NoError(t, c.Subversion(scm.Subversion{
		Locations: []scm.Location{
			{URL: "https://x/svn/trunk", Dir: "trunk"},
			{URL: "https://x/svn/tools", Dir: "tools"},
		},
	}, nil))

	locations := c.Trees()[0].Child("locations")
	require.Len(t, locations.Children, 2)
	assert.Equal(t, "trunk", locations.Children[0].Text("local"))
	assert.Equal(t, "tools", locations.Children[1].Text("local"))
}

func TestSubversion_ExclusionListsAreNewlineJoined(t *testing.T) {
	c := New()

	require.NoError(t, c.Subversion(scm.Subversion{
		Locations:       []scm.Location{{URL: "https://x/svn/trunk"}},
		ExcludedRegions: []string{"/docs/.*", "/ci/.*"},
		ExcludedUsers:   []string{"build-bot"},
	}, nil))

	tree := c.Trees()[0]
	assert.Equal(t, "/docs/.*\n/ci/.*", tree.Text("excludedRegions"))
	assert.Equal(t, "build-bot", tree.Text("excludedUsers"))
}

func TestSubversion_StrategySelectsUpdaterClass(t *testing.T) {
	c := New()

	require.NoError(t, c.Subversion(scm.Subversion{
		Locations:        []scm.Location{{URL: "https://x/svn/trunk"}},
		CheckoutStrategy: scm.StrategyUpdateWithClean,
	}, nil))

	updater := c.Trees()[0].Child("workspaceUpdater")
	assert.Equal(t, "hudson.scm.subversion.UpdateWithCleanUpdater", updater.Attrs["class"])
}
