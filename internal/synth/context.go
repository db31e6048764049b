package synth

import (
	"scmforge/internal/common"
	"scmforge/internal/diagnostic"
	"scmforge/internal/scm"
	"scmforge/internal/secret"
	"scmforge/internal/version"
	"scmforge/node"
)

// Override is an optional caller-supplied transformation of a fully formed
// configuration tree. It runs exactly once per invocation, after every
// backend-specific field is populated, and mutates the tree in place.
// Failures inside it are not caught.
type Override func(*node.Node)

// Context collects the trees produced by a sequence of backend invocations.
// One Context belongs to exactly one job evaluation; it performs no locking.
type Context struct {
	lookup   version.Lookup
	notifier diagnostic.Notifier
	cipher   secret.Cipher
	multi    bool

	trees []*node.Node
}

// Option configures a Context during construction.
type Option func(*Context)

// WithLookup installs the integration version lookup collaborator.
func WithLookup(l version.Lookup) Option {
	return func(c *Context) { c.lookup = l }
}

// WithNotifier installs the deprecation notice collaborator.
func WithNotifier(n diagnostic.Notifier) Option {
	return func(c *Context) { c.notifier = n }
}

// WithCipher installs the password cipher collaborator.
func WithCipher(ci secret.Cipher) Option {
	return func(c *Context) { c.cipher = ci }
}

// WithMulti enables multi-scm mode, permitting more than one checkout per
// session.
func WithMulti(multi bool) Option {
	return func(c *Context) { c.multi = multi }
}

// New creates a synthesis context. Without options it discards notices,
// scrambles passwords with the default cipher, assumes current schemas
// (no version lookup) and permits a single checkout.
func New(opts ...Option) *Context {
	c := &Context{
		notifier: diagnostic.Discard,
		cipher:   secret.Scrambler{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Trees returns the synthesized configuration trees in invocation order.
func (c *Context) Trees() []*node.Node {
	return c.trees
}

// Add dispatches the descriptor to the matching backend synthesizer.
func (c *Context) Add(cfg scm.Config, override Override) error {
	switch v := cfg.(type) {
	case scm.Git:
		return c.Git(v, override)
	case scm.Mercurial:
		return c.Hg(v, override)
	case scm.Subversion:
		return c.Subversion(v, override)
	case scm.Perforce:
		return c.Perforce(v, override)
	case scm.ClearCase:
		return c.ClearCase(v, override)
	case scm.RTC:
		return c.RTC(v, override)
	case scm.CloneWorkspace:
		return c.CloneWorkspace(v, override)
	default:
		return diagnostic.Unsupported("unknown backend descriptor %T", cfg)
	}
}

// checkCardinality enforces the single-checkout rule. It runs before any
// other work so a violating invocation leaves no partial state behind.
func (c *Context) checkCardinality() error {
	if !c.multi && !common.IsEmpty(c.trees) {
		return diagnostic.Invariant("a job supports a single checkout unless multi-scm mode is enabled")
	}

	return nil
}

// newSCM starts a backend root node.
func newSCM(class string) *node.Node {
	return node.New("scm", node.WithAttr("class", class))
}

// push applies the override and appends the finished tree.
func (c *Context) push(n *node.Node, override Override) {
	if override != nil {
		override(n)
	}

	c.trees = append(c.trees, n)
}
