package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scmforge/internal/diagnostic"
	"scmforge/internal/jobfile"
	"scmforge/internal/synth"
)

var checkCmd = &cobra.Command{
	Use:   "check [jobfile]",
	Short: "Validate a job description without writing output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := jobfile.Load(args[0])
		if err != nil {
			return err
		}

		lookup, err := pluginLookup(pluginFlags)
		if err != nil {
			return err
		}

		notices := &diagnostic.Collector{}
		ctx := synth.New(
			synth.WithMulti(f.Multi),
			synth.WithLookup(lookup),
			synth.WithNotifier(notices),
		)

		if err := f.Apply(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "ok: %d checkout(s)\n", len(ctx.Trees()))

		for _, msg := range notices.Messages {
			fmt.Fprintf(out, "notice: %s\n", msg)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
