// Package scm provides the backend descriptor types, their enums, and the
// eager per-descriptor validation for the supported source-control
// integrations.
//
// A descriptor is transient: it is created for one synthesis invocation,
// validated, consumed, and discarded. Validation reports the first problem
// as a diagnostic.Error before any tree is built.
//
// Key capabilities:
//   - One structured descriptor per backend (Git, Mercurial, Subversion,
//     Perforce, ClearCase, RTC, CloneWorkspace)
//   - Tagged union over the backends via the Config interface
//   - Enum parsing for externally supplied strategy/criteria strings
package scm
