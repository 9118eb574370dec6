// generate_assets paints every Gospel RPG pixel-art asset (character
// sprites, tiles, battle backgrounds, UI chrome) and writes them into the
// game's asset catalog.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/1siamBot/gospel-assets/engine/generator"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

// newRootCmd builds the command tree with its flags bound to a fresh config.
func newRootCmd(log *logrus.Logger) *cobra.Command {
	cfg := generator.DefaultConfig()
	var logLevel string

	root := &cobra.Command{
		Use:           "generate_assets",
		Short:         "Generate all pixel-art assets into the asset catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := generator.New(cfg, logrus.NewEntry(log)).Run()
			return err
		},
	}

	root.Flags().StringVarP(&cfg.OutDir, "out", "o", cfg.OutDir, "Asset catalog directory")
	root.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for randomized tile textures")
	root.Flags().BoolVar(&cfg.Upscale, "upscale", false, "Also write nearest-neighbour @2x and @3x images")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.AddCommand(newListCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every asset name by stage without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stages := generator.Stages()
			if err := generator.CheckUnique(stages); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, st := range stages {
				fmt.Fprintf(out, "%s:\n", st.Name)
				for _, n := range st.Names() {
					fmt.Fprintf(out, "  %s\n", n)
				}
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd(log).Execute(); err != nil {
		log.Fatal(err)
	}
}
