package main

import (
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"scmforge/internal/jobfile"
	"scmforge/internal/xmlout"
)

var (
	genOut  string
	genDump bool
)

var genCmd = &cobra.Command{
	Use:   "gen [jobfile]",
	Short: "Generate configuration markup from a job description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := jobfile.Load(args[0])
		if err != nil {
			return err
		}

		ctx, err := newContext(f)
		if err != nil {
			return err
		}

		if err := f.Apply(ctx); err != nil {
			return err
		}

		if genDump {
			spew.Fdump(os.Stderr, ctx.Trees())
		}

		if genOut == "" {
			for _, tree := range ctx.Trees() {
				if _, err := cmd.OutOrStdout().Write(xmlout.Marshal(tree)); err != nil {
					return err
				}
			}

			return nil
		}

		return xmlout.WriteFiles(ctx.Trees(), genOut)
	},
}

func init() {
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "output directory (default: stdout)")
	genCmd.Flags().BoolVar(&genDump, "dump", false, "dump synthesized trees to stderr")
	rootCmd.AddCommand(genCmd)
}
