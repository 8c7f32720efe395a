package main

import (
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"quatrot/internal/sweep"
)

func run(cmd *cobra.Command, cfg sweep.Config) error {
	klog.InfoS("Starting sweep", "axis", cfg.Axis, "vector", cfg.Vector, "from", cfg.From, "to", cfg.To, "step", cfg.Step)

	rows, err := sweep.Run(cfg)
	if werr := sweep.Write(cmd.OutOrStdout(), rows); werr != nil {
		return werr
	}
	if err != nil {
		klog.ErrorS(err, "Sweep failed", "rows", len(rows))
		return err
	}

	klog.InfoS("Sweep finished", "rows", len(rows))
	return nil
}

func main() {
	cmd := NewCommand()

	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
