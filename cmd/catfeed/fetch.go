package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"catfeed/internal/feed"
	"catfeed/internal/output"
)

func newFetchCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [count]",
		Short: "Fetch cats once and print them",
		Long: `Fetch runs a single request and prints the images as a table.

The count follows the same rules as the interactive screen: a whole number
from 1 to the configured maximum (10 by default).

Examples:
  catfeed fetch           # Default count
  catfeed fetch 7         # Seven cats
  catfeed fetch 3 --json  # Output as JSON`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts, args)
		},
	}
	cmd.Flags().Bool("json", false, "output as JSON")
	return cmd
}

func runFetch(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg := opts.cfg
	logger := stderrLogger(cmd, opts.level)

	exporter, shutdown := startTracing(cmd.Context(), logger)
	defer shutdown()

	client, err := newClient(cfg, logger, exporter)
	if err != nil {
		return err
	}
	ctrl := feed.NewController(client,
		feed.WithLimits(cfg.Limits()),
		feed.WithLogger(logger),
	)

	text := strconv.Itoa(cfg.Feed.DefaultCount)
	if len(args) == 1 {
		text = args[0]
	}
	req, err := ctrl.Submit(text)
	if err != nil {
		return err
	}
	res := ctrl.Run(cmd.Context(), *req)
	ctrl.Resolve(res)
	if res.Err != nil {
		return res.Err
	}

	state := ctrl.State()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return output.WriteJSON(cmd.OutOrStdout(), state.Items)
	}
	output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ColorsEnabled()).Title(state.Title())
	return output.WriteTable(cmd.OutOrStdout(), state.Items)
}
