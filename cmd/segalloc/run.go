package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/segalloc/segalloc/trace"
)

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <trace>",
		Short: "Replay a trace end to end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args[0])
		},
	}
}

func runRun(path string) error {
	cfg, err := loadConfigOrDefault()
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening trace: %w", err)
	}
	defer f.Close()

	t, err := trace.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing trace: %w", err)
	}

	r := trace.NewRunner(cfg, nil)
	res, err := r.Run(t)
	if err != nil {
		return fmt.Errorf("replaying trace: %w", err)
	}

	if res.Violation != nil {
		return fmt.Errorf("invariant violated at step %d: %w", res.ViolationAt, res.Violation)
	}

	printVerbose("replayed %d steps, peak %d bytes\n", res.Steps, res.PeakBytes)
	fmt.Printf("ok: %d steps, peak %d bytes, %d live allocations\n", res.Steps, res.PeakBytes, res.FinalStats.AllocationCount)
	return nil
}

func loadConfigOrDefault() (trace.Config, error) {
	if configPath == "" {
		return trace.DefaultConfig(), nil
	}
	return trace.LoadConfig(configPath)
}
