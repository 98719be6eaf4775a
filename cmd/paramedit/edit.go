package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paramedit/internal/tui"
)

type editOptions struct {
	logFile string
}

func newEditCmd(flags *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Launch the interactive parameter editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Append editor logs to this file (logging is off while the editor owns the screen otherwise)")

	return cmd
}

func runEdit(cmd *cobra.Command, flags *rootFlags, opts *editOptions) error {
	logOut, closeLog, err := openEditorLog(opts.logFile)
	if err != nil {
		return newCommandError("edit", fmt.Sprintf("opening log file %q", opts.logFile), err, "Choose a writable path for --log-file.")
	}
	defer closeLog()

	app, err := newAppContext(cmd, flags, logOut)
	if err != nil {
		return err
	}

	session := app.NewSession()
	app.Logger.Info("launching editor", "session_id", session.ID(), "parameters", app.Catalog.Len())

	p := tea.NewProgram(tui.NewModel(session, app.Logger), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		app.Logger.Error(err, "editor execution failed", "session_id", session.ID())
		return fmt.Errorf("failed to run editor: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		app.Logger.Info("editor closed", "session_id", session.ID(), "dirty", m.Session().Dirty())
	}
	return nil
}

func openEditorLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
