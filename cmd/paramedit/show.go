package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paramedit/internal/dump"
)

type showOptions struct {
	format string
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the initial snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Output format (yaml or json)")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions) error {
	format, err := dump.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("show", "selecting output format", err, "Use --format yaml or --format json.")
	}

	app, err := newAppContext(cmd, flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out, err := dump.Encode(app.Initial, format)
	if err != nil {
		app.Logger.Error(err, "snapshot encoding failed", "format", string(format))
		return newCommandError("show", "encoding snapshot", err, "Report this as a bug; every snapshot should encode.")
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
