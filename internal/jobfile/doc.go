// Package jobfile provides YAML schema definitions and parsing for job
// checkout descriptions.
//
// A job file lists one or more checkouts, each under exactly one backend key:
//
//	multi: true
//	scm:
//	  - git:
//	      remotes:
//	        - url: https://example.org/repo.git
//	      branches: main          # scalar or sequence
//	      shallow: true
//	  - svn:
//	      locations:
//	        - url: https://x/svn/trunk
//	          dir: .
//	      strategy: update-with-clean
//
// Parsing is purely structural; descriptor validation happens when the file
// is applied to a synthesis context.
package jobfile
