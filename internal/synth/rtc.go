package synth

import "scmforge/internal/scm"

// RTC synthesizes an enterprise Team Concert checkout tree. Connection
// fields are emitted only when the descriptor overrides the global
// configuration; the build type child is selected by the tagged alternative.
func (c *Context) RTC(cfg scm.RTC, override Override) error {
	if err := c.checkCardinality(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	root := newSCM("com.ibm.team.build.internal.hjplugin.RTCScm").
		AppendBool("overrideGlobal", cfg.OverrideGlobal).
		AppendInt("timeout", cfg.Timeout)

	if cfg.OverrideGlobal {
		root.AppendText("buildTool", cfg.BuildTool).
			AppendText("serverURI", cfg.ServerURI).
			AppendText("credentialsId", cfg.Credentials)
	}

	if cfg.BuildDefinition != "" {
		root.AppendText("buildType", "buildDefinition").
			AppendText("buildDefinition", cfg.BuildDefinition)
	} else {
		root.AppendText("buildType", "buildWorkspace").
			AppendText("buildWorkspace", cfg.BuildWorkspace)
	}

	root.AppendBool("avoidUsingToolkit", false)

	c.push(root, override)

	return nil
}
