package synth

import "scmforge/internal/scm"

// CloneWorkspace synthesizes a clone-workspace pseudo-checkout tree reusing
// the archived workspace of another job.
func (c *Context) CloneWorkspace(cfg scm.CloneWorkspace, override Override) error {
	if err := c.checkCardinality(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	criteria := cfg.Criteria
	if criteria == "" {
		criteria = scm.DefaultCriteria
	}

	root := newSCM("hudson.plugins.cloneworkspace.CloneWorkspaceSCM").
		AppendText("parentJobName", cfg.ParentProject).
		AppendText("criteria", criteria)

	c.push(root, override)

	return nil
}
