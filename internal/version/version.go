// Package version resolves which schema variant a backend synthesizer must
// emit, based on the installed integration version reported by the host.
//
// Version lookup is a collaborator interface so tests can run against fixed
// or absent versions deterministically.
package version

import (
	"fmt"

	mm "github.com/Masterminds/semver/v3"

	"scmforge/internal/diagnostic"
)

// Lookup reports the installed version of a named integration.
type Lookup interface {
	// PluginVersion returns the installed version of the named integration,
	// or false when its presence cannot be confirmed.
	PluginVersion(name string) (*mm.Version, bool)
}

// LookupFunc adapts a plain function to the Lookup interface.
type LookupFunc func(name string) (*mm.Version, bool)

func (f LookupFunc) PluginVersion(name string) (*mm.Version, bool) {
	return f(name)
}

// StaticLookup maps integration names to version literals. Intended for
// tests and CLI flags; literals must parse, bad ones panic via MustParse.
type StaticLookup map[string]string

func (s StaticLookup) PluginVersion(name string) (*mm.Version, bool) {
	raw, ok := s[name]
	if !ok {
		return nil, false
	}

	return mm.MustParse(raw), true
}

// VariantEnum selects one of the version-dependent field layouts a backend
// may emit.
type VariantEnum int

const (
	_ VariantEnum = iota // skip zero value, use it as a default (invalid) value for VariantEnum

	VariantLegacy
	VariantCurrent
)

// String returns a human-readable variant name.
func (v VariantEnum) String() string {
	switch v {
	case VariantLegacy:
		return "legacy"
	case VariantCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// Known schema gates. Integrations older than the threshold take the legacy
// emission path.
var (
	// MercurialThreshold is the version that replaced the flat branch field
	// with the revisionType/revision pair.
	MercurialThreshold = mm.MustParse("1.50.1")

	// GitExtensionThreshold is the version that replaced flat
	// reference/useShallowClone fields with the extensions block.
	GitExtensionThreshold = mm.MustParse("2.0.0")
)

// Integration names used with Lookup.
const (
	MercurialPlugin = "mercurial"
	GitPlugin       = "git"
)

// Resolve picks the schema variant for one backend invocation and emits a
// deprecation notice when the legacy path is taken.
//
// An absent version resolves to Current: an integration whose presence
// cannot be confirmed is assumed to be up to date. An uninstalled
// integration could equally mean the feature is unavailable, but the
// consuming systems have always treated absence optimistically.
func Resolve(lookup Lookup, notifier diagnostic.Notifier, plugin string, threshold *mm.Version) VariantEnum {
	if lookup == nil {
		return VariantCurrent
	}

	installed, ok := lookup.PluginVersion(plugin)
	if !ok || installed == nil {
		return VariantCurrent
	}

	if installed.LessThan(threshold) {
		if notifier != nil {
			notifier.Deprecated(fmt.Sprintf(
				"%s integration %s predates %s; emitting the legacy checkout schema",
				plugin, installed, threshold))
		}

		return VariantLegacy
	}

	return VariantCurrent
}
