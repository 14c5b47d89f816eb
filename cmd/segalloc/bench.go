package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/segalloc/segalloc/trace"
)

func init() {
	rootCmd.AddCommand(newBenchCmd())
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench <trace>",
		Short: "Replay a trace and report memory utilization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(args[0])
		},
	}
}

func runBench(path string) error {
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

	utilization := 0.0
	if res.PeakBytes > 0 {
		utilization = float64(res.FinalStats.AllocationBytes) / float64(res.PeakBytes)
	}

	if jsonOut {
		fmt.Printf("{\"weight\":%d,\"steps\":%d,\"peak_bytes\":%d,\"utilization\":%.4f}\n",
			t.Weight, res.Steps, res.PeakBytes, utilization)
		return nil
	}

	fmt.Printf("weight=%d steps=%d peak_bytes=%d utilization=%.2f%%\n",
		t.Weight, res.Steps, res.PeakBytes, utilization*100)
	return nil
}
