// Package diagnostic provides the error taxonomy shared by descriptor
// validation and tree synthesis, plus the advisory notice channel used for
// deprecation warnings.
//
// Key capabilities:
//   - Typed validation errors (missing field, conflicting fields,
//     invariant violation, unsupported combination)
//   - errors.Is matching on error kind via exported sentinels
//   - Fire-and-forget deprecation notices through a pluggable Notifier
package diagnostic
