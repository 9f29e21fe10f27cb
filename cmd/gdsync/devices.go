package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"gdsync/internal/adb"
	"gdsync/internal/metrics"
	"gdsync/internal/models"

	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List devices visible to adb",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := createContext()
		defer cancel()

		bridge := adb.NewClient(cfg.GetBridge(), adb.WithObserver(metrics.ObserveBridgeCall))
		return listDevices(ctx, cmd, bridge)
	},
}

type deviceLister interface {
	Devices(ctx context.Context) ([]models.Device, error)
}

func listDevices(ctx context.Context, cmd *cobra.Command, bridge deviceLister) error {
	devices, err := bridge.Devices(ctx)
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(devices) == 0 {
		fmt.Fprintln(out, "No devices attached.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SERIAL\tSTATE\tMODEL")
	for _, d := range devices {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Serial, d.State, d.Model)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(adb.ReadyDevices(devices)) == 0 {
		fmt.Fprintln(out, "No device is ready. Check the USB debugging authorization prompt on the phone.")
	}
	return nil
}
