// relprep is the post-build release step: it prunes stale entries
// from the build output directory and advances the manifest version.
// It refuses to touch anything unless RELPREP_ENV=production (or
// --force), so accidental runs from development shells are no-ops.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/recview/recview/internal/manifest"
)

const envKey = "RELPREP_ENV"

var (
	manifestPath string
	distDir      string
	force        bool
	bumpLevel    string
	extraKeep    []string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "relprep",
		Short:         "bump the manifest version and prune stale build output",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "manifest.json", "manifest file")
	root.PersistentFlags().StringVarP(&distDir, "dist", "d", "dist", "build output directory")
	root.PersistentFlags().BoolVar(&force, "force", false, "run even when "+envKey+" is not \"production\"")

	bumpCmd := &cobra.Command{
		Use:   "bump",
		Short: "increment the manifest version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGated(cmd, runBump)
		},
	}
	bumpCmd.Flags().StringVar(&bumpLevel, "level", "patch", "version component to bump (patch, minor, major)")

	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "delete output entries not belonging to the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGated(cmd, runPrune)
		},
	}
	pruneCmd.Flags().StringArrayVar(&extraKeep, "keep", nil, "extra output entry to keep (repeatable)")

	finishCmd := &cobra.Command{
		Use:   "finish",
		Short: "prune stale output, then bump the version (the after-build hook)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGated(cmd, func(cmd *cobra.Command) error {
				if err := runPrune(cmd); err != nil {
					return err
				}
				return runBump(cmd)
			})
		},
	}
	finishCmd.Flags().StringVar(&bumpLevel, "level", "patch", "version component to bump (patch, minor, major)")
	finishCmd.Flags().StringArrayVar(&extraKeep, "keep", nil, "extra output entry to keep (repeatable)")

	root.AddCommand(bumpCmd, pruneCmd, finishCmd)
	return root
}

// runGated skips the action outside production builds. Skipping is a
// success: build pipelines invoke relprep unconditionally.
func runGated(cmd *cobra.Command, fn func(*cobra.Command) error) error {
	if env := os.Getenv(envKey); env != "production" && !force {
		fmt.Fprintf(cmd.OutOrStdout(), "relprep: skipped (%s=%q, use --force to override)\n", envKey, env)
		return nil
	}
	return fn(cmd)
}

func runBump(cmd *cobra.Command) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	old := m.Version
	next, err := m.Bump(manifest.Level(bumpLevel))
	if err != nil {
		return err
	}
	if err := m.Save(manifestPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "relprep: %s %s -> %s\n", manifestPath, old, next)
	return nil
}

func runPrune(cmd *cobra.Command) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	keep := map[string]bool{m.Version: true}
	for _, k := range extraKeep {
		keep[k] = true
	}

	removed, err := manifest.PruneStale(distDir, keep)
	if err != nil {
		return err
	}
	if len(removed) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "relprep: %s already clean\n", distDir)
		return nil
	}
	for _, name := range removed {
		fmt.Fprintf(cmd.OutOrStdout(), "relprep: removed %s/%s\n", distDir, name)
	}
	return nil
}
