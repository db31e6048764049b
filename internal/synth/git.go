package synth

import (
	"slices"

	"scmforge/internal/common"
	"scmforge/internal/scm"
	"scmforge/internal/version"
	"scmforge/node"
)

// Git synthesizes a git checkout tree.
//
// The shallow-clone trio (shallow, reference, clone timeout) is
// version-gated: integrations older than 2.0.0 take flat reference and
// useShallowClone fields, newer ones take a CloneOption entry inside the
// extensions block. Never both.
func (c *Context) Git(cfg scm.Git, override Override) error {
	if err := c.checkCardinality(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	branches := cfg.Branches
	if common.IsEmpty(branches) {
		branches = []string{"**"}
	}

	variant := version.Resolve(c.lookup, c.notifier, version.GitPlugin, version.GitExtensionThreshold)

	extensions := slices.Clone(cfg.Extensions)
	if variant == version.VariantCurrent {
		if opt := cloneOption(cfg); opt != nil {
			extensions = append(extensions, opt)
		}
	}

	root := newSCM("hudson.plugins.git.GitSCM")

	remotes := node.New("userRemoteConfigs")
	for _, r := range cfg.Remotes {
		rc := node.New("hudson.plugins.git.UserRemoteConfig")
		if r.Name != "" {
			rc.AppendText("name", r.Name)
		}

		if r.Refspec != "" {
			rc.AppendText("refspec", r.Refspec)
		}

		rc.AppendText("url", r.URL)

		if r.CredentialsID != "" {
			rc.AppendText("credentialsId", r.CredentialsID)
		}

		remotes.Append(rc)
	}

	root.Append(remotes)

	specs := node.New("branches")
	for _, b := range branches {
		specs.Append(node.New("hudson.plugins.git.BranchSpec",
			node.WithChildren(node.New("name", node.WithValue(b)))))
	}

	root.Append(specs)

	root.AppendText("configVersion", "2").
		AppendBool("disableSubmodules", false).
		AppendBool("recursiveSubmodules", false).
		AppendBool("doGenerateSubmoduleConfigurations", false).
		AppendBool("authorOrCommitter", false).
		AppendBool("clean", cfg.Clean).
		AppendBool("wipeOutWorkspace", cfg.WipeWorkspace).
		AppendBool("remotePoll", cfg.RemotePoll).
		AppendBool("pruneBranches", cfg.PruneBranches).
		AppendBool("ignoreNotifyCommit", cfg.IgnoreNotifyCommit).
		AppendBool("skipTag", !cfg.CreateTag).
		AppendText("gitTool", "Default")

	if cfg.RelativeTargetDir != "" {
		root.AppendText("relativeTargetDir", cfg.RelativeTargetDir)
	}

	if cfg.LocalBranch != "" {
		root.AppendText("localBranch", cfg.LocalBranch)
	}

	if variant == version.VariantLegacy {
		root.AppendText("reference", cfg.Reference)
		root.AppendBool("useShallowClone", cfg.ShallowClone)
	} else {
		root.Append(node.New("extensions", node.WithChildren(extensions...)))
	}

	if cfg.Browser != nil {
		root.Append(node.New("browser",
			node.WithAttr("class", cfg.Browser.Class),
			node.WithChildren(node.New("url", node.WithValue(cfg.Browser.URL)))))
	}

	if cfg.MergeOptions != nil {
		merge := node.New("userMergeOptions").
			AppendText("mergeRemote", cfg.MergeOptions.Remote).
			AppendText("mergeTarget", cfg.MergeOptions.Branch)
		root.Append(merge)
	}

	if cfg.BuildChooser != nil {
		root.Append(node.New("buildChooser", node.WithAttr("class", cfg.BuildChooser.Class)))
	}

	c.push(root, override)

	return nil
}

// cloneOption builds the CloneOption extension entry, or nil when none of
// the gated fields is set.
func cloneOption(cfg scm.Git) *node.Node {
	if !cfg.ShallowClone && cfg.Reference == "" && cfg.CloneTimeout == 0 {
		return nil
	}

	opt := node.New("hudson.plugins.git.extensions.impl.CloneOption").
		AppendBool("shallow", cfg.ShallowClone).
		AppendText("reference", cfg.Reference)

	if cfg.CloneTimeout > 0 {
		opt.AppendInt("timeout", cfg.CloneTimeout)
	}

	return opt
}
