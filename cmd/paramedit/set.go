package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paramedit/internal/dump"
	"github.com/alexisbeaulieu97/paramedit/internal/param"
)

type setOptions struct {
	colors []string
	format string
	diff   bool
}

// fieldEdit is one ID=VALUE argument.
type fieldEdit struct {
	id  param.ID
	raw string
}

func newSetCmd(flags *rootFlags) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set [ID=VALUE]...",
		Short: "Apply edits to the initial snapshot and print the result",
		Long: `Apply field edits in argument order, then append each --color in order,
exactly as the interactive editor would. Number parameters take the coerced
value of the text, so unparsable input becomes 0.`,
		Example: `  paramedit set 3=42 1=вечернее --color green
  paramedit set 4=abc --diff`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, flags, opts, args)
		},
	}

	cmd.Flags().StringArrayVar(&opts.colors, "color", nil, "Color to append (repeatable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Output format (yaml or json)")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Print a diff against the initial snapshot instead of the result")

	return cmd
}

func runSet(cmd *cobra.Command, flags *rootFlags, opts *setOptions, args []string) error {
	edits, err := parseFieldEdits(args)
	if err != nil {
		return newCommandError("set", "parsing edits", err, "Pass edits as ID=VALUE, for example 3=42.")
	}

	format, err := dump.ParseFormat(opts.format)
	if err != nil {
		return newCommandError("set", "selecting output format", err, "Use --format yaml or --format json.")
	}

	app, err := newAppContext(cmd, flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	session := app.NewSession()

	for _, edit := range edits {
		if _, err := session.OnFieldEdit(edit.id, edit.raw); err != nil {
			return newCommandError("set", fmt.Sprintf("editing parameter %d", edit.id), err, "Run 'paramedit catalog' to list the declared parameter IDs.")
		}
	}
	for _, color := range opts.colors {
		session.OnAddColor(color)
	}

	current := session.Model()
	app.Logger.Info("edits applied", "session_id", session.ID(), "edits", len(edits), "colors", len(opts.colors))

	if opts.diff {
		changes, err := dump.Diff(session.InitialModel(), current)
		if err != nil {
			return newCommandError("set", "diffing snapshots", err, "Report this as a bug; every snapshot should encode.")
		}
		if changes == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
			return nil
		}
		added, removed, err := dump.DiffStat(session.InitialModel(), current)
		if err != nil {
			return newCommandError("set", "counting changes", err, "Report this as a bug; every snapshot should encode.")
		}
		fmt.Fprint(cmd.OutOrStdout(), changes)
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d line(s) added, %d removed\n", added, removed)
		return err
	}

	out, err := dump.Encode(current, format)
	if err != nil {
		return newCommandError("set", "encoding snapshot", err, "Report this as a bug; every snapshot should encode.")
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func parseFieldEdits(args []string) ([]fieldEdit, error) {
	edits := make([]fieldEdit, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("edit %q: missing '='", arg)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("edit %q: missing parameter ID", arg)
		}
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("edit %q: parameter ID must be an integer", arg)
		}
		edits = append(edits, fieldEdit{id: param.ID(id), raw: value})
	}
	return edits, nil
}
