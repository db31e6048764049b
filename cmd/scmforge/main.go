// Package main provides the CLI entrypoint for scmforge.
//
// scmforge is a source-control configuration synthesizer that:
//   - Loads a YAML job checkout description
//   - Validates each backend descriptor eagerly
//   - Resolves version-dependent schema variants per integration
//   - Emits one configuration tree per checkout as CI-ready markup
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
