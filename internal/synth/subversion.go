package synth

import (
	"strings"

	"scmforge/internal/scm"
	"scmforge/node"
)

// Subversion synthesizes a subversion checkout tree. The exclusion and
// inclusion fields are always emitted, as empty strings when unset; the
// consuming system requires their presence.
func (c *Context) Subversion(cfg scm.Subversion, override Override) error {
	if err := c.checkCardinality(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	root := newSCM("hudson.scm.SubversionSCM")

	locations := node.New("locations")
	for _, loc := range cfg.Locations {
		dir := loc.Dir
		if dir == "" {
			dir = "."
		}

		locations.Append(node.New("hudson.scm.SubversionSCM_-ModuleLocation").
			AppendText("remote", loc.URL).
			AppendText("local", dir))
	}

	root.Append(locations)

	root.AppendText("excludedRegions", strings.Join(cfg.ExcludedRegions, "\n")).
		AppendText("includedRegions", strings.Join(cfg.IncludedRegions, "\n")).
		AppendText("excludedUsers", strings.Join(cfg.ExcludedUsers, "\n")).
		AppendText("excludedCommitMessages", strings.Join(cfg.ExcludedCommitMessages, "\n")).
		AppendText("excludedRevprop", strings.Join(cfg.ExcludedRevisionProperties, "\n"))

	root.Append(node.New("workspaceUpdater",
		node.WithAttr("class", cfg.CheckoutStrategy.UpdaterClass())))

	c.push(root, override)

	return nil
}
