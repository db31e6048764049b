package synth

import (
	"strings"

	"scmforge/internal/scm"
	"scmforge/internal/version"
)

// Hg synthesizes a mercurial checkout tree.
//
// Integrations older than 1.50.1 take a flat branch field; newer ones take
// the revisionType/revision pair. The revision falls back to the "default"
// branch when neither tag nor branch is set.
func (c *Context) Hg(cfg scm.Mercurial, override Override) error {
	if err := c.checkCardinality(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	variant := version.Resolve(c.lookup, c.notifier, version.MercurialPlugin, version.MercurialThreshold)

	revision := cfg.Tag
	if revision == "" {
		revision = cfg.Branch
	}

	if revision == "" {
		revision = "default"
	}

	root := newSCM("hudson.plugins.mercurial.MercurialSCM")

	if cfg.Installation != "" {
		root.AppendText("installation", cfg.Installation)
	}

	root.AppendText("source", cfg.URL)
	root.AppendText("modules", strings.Join(cfg.Modules, " "))

	if variant == version.VariantLegacy {
		root.AppendText("branch", revision)
	} else {
		revisionType := "BRANCH"
		if cfg.Tag != "" {
			revisionType = "TAG"
		}

		root.AppendText("revisionType", revisionType)
		root.AppendText("revision", revision)
	}

	root.AppendBool("clean", cfg.Clean).
		AppendText("credentialsId", cfg.CredentialsID).
		AppendBool("disableChangeLog", cfg.DisableChangeLog)

	if cfg.Subdirectory != "" {
		root.AppendText("subdir", cfg.Subdirectory)
	}

	c.push(root, override)

	return nil
}

// HgSimple is the historical simple mercurial entry point. It emits a
// deprecation notice and delegates to Hg with the branch injected; the
// delegate performs the cardinality check and honors the resolved variant.
//
// Deprecated: use Hg with a full descriptor.
func (c *Context) HgSimple(url, branch string, override Override) error {
	c.notifier.Deprecated("the simple mercurial checkout is deprecated; use the full descriptor form")

	return c.Hg(scm.Mercurial{URL: url, Branch: branch}, override)
}
