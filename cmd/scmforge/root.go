package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	mm "github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"scmforge/internal/diagnostic"
	"scmforge/internal/jobfile"
	"scmforge/internal/synth"
	"scmforge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "scmforge",
	Short:        "Synthesize source-control configuration trees from a job description",
	SilenceUsage: true,
}

var pluginFlags []string

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&pluginFlags, "plugin", nil,
		"installed integration version as name=version (repeatable)")
}

// newContext builds a synthesis context from a parsed job file plus the
// --plugin flags, with deprecation notices logged to stderr.
func newContext(f *jobfile.File) (*synth.Context, error) {
	lookup, err := pluginLookup(pluginFlags)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	return synth.New(
		synth.WithMulti(f.Multi),
		synth.WithLookup(lookup),
		synth.WithNotifier(diagnostic.Slog(logger)),
	), nil
}

func pluginLookup(pairs []string) (version.Lookup, error) {
	lookup := version.StaticLookup{}

	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --plugin %q, expected name=version", pair)
		}

		if _, err := mm.NewVersion(raw); err != nil {
			return nil, fmt.Errorf("invalid --plugin %q: %w", pair, err)
		}

		lookup[name] = raw
	}

	return lookup, nil
}
