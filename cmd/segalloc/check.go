package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/segalloc/segalloc/trace"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <trace>",
		Short: "Replay a trace, running the invariant checker after every step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}
}

func runCheck(path string) error {
	cfg, err := loadConfigOrDefault()
	if err != nil {
		return err
	}
	cfg.CheckEveryStep = true

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

	fmt.Printf("clean: %d steps checked, no invariant violations\n", res.Steps)
	return nil
}
