package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/on-the-ground/gecko/call"
	"github.com/on-the-ground/gecko/retry"
	"github.com/on-the-ground/gecko/shared/logging"
	"github.com/spf13/cobra"
)

var errTransient = errors.New("transient failure")

var flakyCmd = &cobra.Command{
	Use:   "flaky FAILURES",
	Short: "Retry a function that fails FAILURES times before succeeding",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlaky,
}

func runFlaky(cmd *cobra.Command, args []string) error {
	failures, err := strconv.Atoi(args[0])
	if err != nil || failures < 0 {
		return fmt.Errorf("FAILURES must be a non-negative integer, got %q", args[0])
	}

	cfg, logger, err := loadEnv()
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	attempts := 0
	fn, err := retry.Wrap(
		call.Named("flaky", func(context.Context, call.Args) (any, error) {
			attempts++
			if attempts <= failures {
				return nil, fmt.Errorf("attempt %d: %w", attempts, errTransient)
			}
			return "succeeded", nil
		}),
		[]retry.Kind{retry.Is(errTransient)},
		cfg.RetryOptions(logger)...,
	)
	if err != nil {
		return err
	}

	res, err := fn.Invoke(cmd.Context())
	fmt.Fprintf(cmd.OutOrStdout(), "attempts: %d\n", attempts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res)
	return nil
}
