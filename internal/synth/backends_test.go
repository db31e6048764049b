package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scmforge/internal/scm"
)

func TestClearCase_DescriptorFieldsAndDefaults(t *testing.T) {
	c := New()

	err := c.ClearCase(scm.ClearCase{
		LoadRules:  []string{"/vobs/app", "/vobs/lib"},
		ConfigSpec: []string{"element * CHECKEDOUT", "element * /main/LATEST"},
	}, nil)
	require.NoError(t, err)

	tree := c.Trees()[0]
	assert.Equal(t, "hudson.plugins.clearcase.ClearCaseSCM", tree.Attrs["class"])
	assert.Equal(t, "/vobs/app\n/vobs/lib", tree.Text("loadRules"))
	assert.Equal(t, "element * CHECKEDOUT\nelement * /main/LATEST", tree.Text("configSpec"))
	assert.Equal(t, defaultViewName, tree.Text("viewName"))
	assert.Equal(t, "view", tree.Text("viewPath"))
	assert.Equal(t, "BRANCH", tree.Text("changeset"))
	assert.Equal(t, "/view", tree.Text("viewDrive"))
	assert.Equal(t, "0", tree.Text("multiSitePollBuffer"))
	assert.Equal(t, "true", tree.Text("useUpdate"))
	assert.Equal(t, "true", tree.Text("useManualLoadRules"))
	assert.Equal(t, "false", tree.Text("useDynView"))
}

func TestClearCase_ExplicitViewOverridesDefaults(t *testing.T) {
	c := New()

	require.NoError(t, c.ClearCase(scm.ClearCase{ViewName: "ci_view", ViewPath: "workspace"}, nil))

	tree := c.Trees()[0]
	assert.Equal(t, "ci_view", tree.Text("viewName"))
	assert.Equal(t, "workspace", tree.Text("viewPath"))
}

func TestRTC_BuildDefinition(t *testing.T) {
	c := New()

	require.NoError(t, c.RTC(scm.RTC{Timeout: 480, BuildDefinition: "nightly"}, nil))

	tree := c.Trees()[0]
	assert.Equal(t, "com.ibm.team.build.internal.hjplugin.RTCScm", tree.Attrs["class"])
	assert.Equal(t, "false", tree.Text("overrideGlobal"))
	assert.Equal(t, "480", tree.Text("timeout"))
	assert.Equal(t, "buildDefinition", tree.Text("buildType"))
	assert.Equal(t, "nightly", tree.Text("buildDefinition"))
	assert.Nil(t, tree.Child("buildWorkspace"))
	assert.Equal(t, "false", tree.Text("avoidUsingToolkit"))

	// Global connection fields stay out unless overridden.
	assert.Nil(t, tree.Child("buildTool"))
	assert.Nil(t, tree.Child("serverURI"))
	assert.Nil(t, tree.Child("credentialsId"))
}

func TestRTC_BuildWorkspaceWithOverriddenConnection(t *testing.T) {
	c := New()

	require.NoError(t, c.RTC(scm.RTC{
		OverrideGlobal: true,
		BuildTool:      "rtc-4",
		ServerURI:      "https://rtc.example.org/ccm",
		Credentials:    "rtc-creds",
		BuildWorkspace: "dev-stream",
	}, nil))

	tree := c.Trees()[0]
	assert.Equal(t, "true", tree.Text("overrideGlobal"))
	assert.Equal(t, "rtc-4", tree.Text("buildTool"))
	assert.Equal(t, "https://rtc.example.org/ccm", tree.Text("serverURI"))
	assert.Equal(t, "rtc-creds", tree.Text("credentialsId"))
	assert.Equal(t, "buildWorkspace", tree.Text("buildType"))
	assert.Equal(t, "dev-stream", tree.Text("buildWorkspace"))
	assert.Nil(t, tree.Child("buildDefinition"))
}

func TestCloneWorkspace_Defaults(t *testing.T) {
	c := New()

	require.NoError(t, c.CloneWorkspace(scm.CloneWorkspace{ParentProject: "upstream"}, nil))

	tree := c.Trees()[0]
	assert.Equal(t, "hudson.plugins.cloneworkspace.CloneWorkspaceSCM", tree.Attrs["class"])
	assert.Equal(t, "upstream", tree.Text("parentJobName"))
	assert.Equal(t, "Any", tree.Text("criteria"))
}

func TestCloneWorkspace_ExplicitCriteria(t *testing.T) {
	c := New()

	require.NoError(t, c.CloneWorkspace(scm.CloneWorkspace{
		ParentProject: "upstream",
		Criteria:      "Successful",
	}, nil))

	assert.Equal(t, "Successful", c.Trees()[0].Text("criteria"))
}

func TestCloneWorkspace_BogusCriteriaRejected(t *testing.T) {
	c := New()

	err := c.CloneWorkspace(scm.CloneWorkspace{ParentProject: "upstream", Criteria: "Bogus"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Any, Not Failed, Successful")
	assert.Empty(t, c.Trees())
}
