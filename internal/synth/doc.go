// Package synth turns validated backend descriptors into the configuration
// trees the consuming CI server expects.
//
// Synthesis pipeline, per backend invocation:
//  1. Cardinality check (single checkout unless multi-scm mode)
//  2. Descriptor validation → diagnostic.Error on the first problem
//  3. Schema variant resolution through the injected version lookup
//  4. Tree emission (field names and defaults are schema constants; the
//     consuming systems require them verbatim)
//  5. Optional caller override of the fully formed tree
//  6. Append to the context output list
//
// Nothing here blocks: version lookup and notice delivery are injected
// synchronous collaborators, and one Context belongs to exactly one job
// evaluation session.
package synth
