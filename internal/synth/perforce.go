package synth

import (
	"strings"

	"scmforge/internal/scm"
)

// Perforce synthesizes a perforce checkout tree. The password is routed
// through the cipher collaborator; IsEncrypted short-circuits re-encryption
// so an already scrambled value passes through unchanged.
func (c *Context) Perforce(cfg scm.Perforce, override Override) error {
	if err := c.checkCardinality(); err != nil {
		return err
	}

	return c.perforce(cfg, override)
}

// PerforceSimple is the historical simple perforce entry point. It predates
// the single-checkout rule upstream and therefore skips the cardinality
// check; it emits a deprecation notice instead.
//
// Deprecated: use Perforce with a full descriptor.
func (c *Context) PerforceSimple(viewspec, user, password string, override Override) error {
	c.notifier.Deprecated("the simple perforce checkout is deprecated; use the full descriptor form")

	return c.perforce(scm.Perforce{
		ViewSpec: []string{viewspec},
		User:     user,
		Password: password,
	}, override)
}

func (c *Context) perforce(cfg scm.Perforce, override Override) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	user := cfg.User
	if user == "" {
		user = "rolem"
	}

	password := cfg.Password
	if !c.cipher.IsEncrypted(password) {
		password = c.cipher.Encrypt(password)
	}

	// Everything below projectPath is a schema constant the consuming
	// system expects verbatim, even when semantically inert.
	root := newSCM("hudson.plugins.perforce.PerforceSCM").
		AppendText("p4User", user).
		AppendText("p4Passwd", password).
		AppendText("p4Port", "perforce:1666").
		AppendText("p4Client", `builds-${JOB_NAME.replaceAll("/", "-")}`).
		AppendText("projectPath", strings.Join(cfg.ViewSpec, "\n")).
		AppendText("projectOptions", "noallwrite clobber nocompress unlocked nomodtime rmdir").
		AppendText("p4Tool", "p4").
		AppendText("p4SysDrive", "C:").
		AppendText("p4SysRoot", `C:\WINDOWS`).
		AppendBool("useClientSpec", false).
		AppendBool("forceSync", false).
		AppendBool("alwaysForceSync", false).
		AppendBool("dontUpdateServer", false).
		AppendBool("disableAutoSync", false).
		AppendBool("disableSyncOnly", false).
		AppendBool("useOldClientName", false).
		AppendBool("updateView", true).
		AppendBool("dontRenameClient", false).
		AppendBool("updateCounterValue", false).
		AppendBool("dontUpdateClient", false).
		AppendBool("exposeP4Passwd", false).
		AppendBool("wipeBeforeBuild", true).
		AppendBool("wipeRepoBeforeBuild", false).
		AppendInt("firstChange", -1).
		AppendText("slaveClientNameFormat", "${basename}-${nodename}").
		AppendText("lineEndValue", "").
		AppendBool("useViewMask", false).
		AppendBool("useViewMaskForPolling", false).
		AppendBool("useViewMaskForSyncing", false).
		AppendBool("pollOnlyOnMaster", true)

	c.push(root, override)

	return nil
}
