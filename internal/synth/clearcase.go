package synth

import (
	"strings"

	"scmforge/internal/scm"
)

// defaultViewName mirrors the view name template the consuming integration
// generates when none is configured.
const defaultViewName = "Jenkins_${USER_NAME}_${NODE_NAME}_${JOB_NAME}${DASH_WORKSPACE_NUMBER}"

// ClearCase synthesizes a base ClearCase checkout tree. Nearly every field
// is a schema constant; only the load rules, mkview parameters, config spec
// and view name/path come from the descriptor.
func (c *Context) ClearCase(cfg scm.ClearCase, override Override) error {
	if err := c.checkCardinality(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	viewName := cfg.ViewName
	if viewName == "" {
		viewName = defaultViewName
	}

	viewPath := cfg.ViewPath
	if viewPath == "" {
		viewPath = "view"
	}

	root := newSCM("hudson.plugins.clearcase.ClearCaseSCM").
		AppendText("changeset", "BRANCH").
		AppendBool("createDynView", false).
		AppendText("excludedRegions", "").
		AppendBool("extractLoadRules", false).
		AppendBool("filteringOutDestroySubBranchEvent", false).
		AppendBool("freezeCode", false).
		AppendText("loadRules", strings.Join(cfg.LoadRules, "\n")).
		AppendText("loadRulesForPolling", "").
		AppendText("mkviewOptionalParam", strings.Join(cfg.MkviewOptionalParams, "\n")).
		AppendInt("multiSitePollBuffer", 0).
		AppendBool("recreateView", false).
		AppendBool("removeViewOnRename", false).
		AppendBool("useDynView", false).
		AppendBool("useOtherLoadRulesForPolling", false).
		AppendBool("useUpdate", true).
		AppendText("viewDrive", "/view").
		AppendText("viewName", viewName).
		AppendText("viewPath", viewPath).
		AppendText("branch", "").
		AppendText("configSpec", strings.Join(cfg.ConfigSpec, "\n")).
		AppendText("configSpecFileName", "").
		AppendBool("doNotUpdateConfigSpec", false).
		AppendBool("extractConfigSpec", false).
		AppendText("label", "").
		AppendBool("refreshConfigSpec", false).
		AppendText("refreshConfigSpecCommand", "").
		AppendBool("useManualLoadRules", true)

	c.push(root, override)

	return nil
}
