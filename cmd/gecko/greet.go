package main

import (
	"context"
	"fmt"

	"github.com/on-the-ground/gecko/call"
	"github.com/on-the-ground/gecko/callcount"
	"github.com/on-the-ground/gecko/callhistory"
	"github.com/on-the-ground/gecko/disable"
	"github.com/on-the-ground/gecko/shared/logging"
	"github.com/on-the-ground/gecko/validate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func getGreetingString(_ context.Context, args call.Args) (any, error) {
	return fmt.Sprintf("Hello, %v", args.Pos[0]), nil
}

var greetingSchema = validate.Schema{
	Params: []validate.Param{{Name: "name", Type: validate.String}},
	Return: validate.String,
}

var greetCmd = &cobra.Command{
	Use:   "greet NAME...",
	Short: "Greet every name, then print the call history and count",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGreet,
}

func runGreet(cmd *cobra.Command, names []string) error {
	cfg, logger, err := loadEnv()
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	v, err := validate.New(greetingSchema, cfg.ValidateOptions()...)
	if err != nil {
		return err
	}

	greet := v.Wrap(call.Named("get_greeting_string", getGreetingString))
	greet, history := callhistory.Wrap(greet, cfg.HistoryOptions()...)
	greet, counter := callcount.Wrap(greet)

	out := cmd.OutOrStdout()
	for _, name := range names {
		res, err := greet.Invoke(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, res)
	}

	logger.Debug("greeted", zap.Int("calls", counter.Count()), zap.Int("recorded", history.Len()))
	fmt.Fprintf(out, "calls: %d\n", counter.Count())
	for _, rec := range history.Records() {
		fmt.Fprintln(out, rec)
	}
	return nil
}

var disabledCmd = &cobra.Command{
	Use:   "disabled NAME",
	Short: "Call a disabled greeting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadEnv()
		if err != nil {
			return err
		}
		defer logging.Sync(logger)

		greet := disable.Wrap(
			call.Named("get_greeting_string", getGreetingString),
			cfg.DisableOptions(logger)...,
		)
		res, err := greet.Invoke(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
}
