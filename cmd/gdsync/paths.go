package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gdsync/internal/paths"

	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show local save directory candidates and the device save directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, err := paths.CurrentPlatform()
		if err != nil {
			return err
		}
		return printPaths(cmd.OutOrStdout(), platform, cfg.GetPaths().Profile, cfg.GetPaths().RemoteRoot)
	},
}

func printPaths(out io.Writer, platform paths.Platform, configured, remoteRoot string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROFILE\tEXISTS\tPATH")
	for _, c := range paths.Candidates(platform) {
		fmt.Fprintf(tw, "%s\t%t\t%s\n", c.Profile, c.Exists, c.Path)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	profile, root, err := paths.Detect(platform)
	switch {
	case err == nil:
		fmt.Fprintf(out, "\nDetected: %s (%s)\n", profile, root)
	case errors.Is(err, paths.ErrNoProfileDetected):
		fmt.Fprintf(out, "\nDetected: none (default profile %s)\n", platform.DefaultProfile())
	default:
		return fmt.Errorf("failed to detect save directory: %w", err)
	}

	if configured != "" {
		fmt.Fprintf(out, "Configured: %s\n", configured)
	}
	fmt.Fprintf(out, "Device: %s\n", remoteRoot)
	return nil
}
