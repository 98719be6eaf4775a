package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	envFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "paramedit",
		Short:         "Paramedit edits typed parameter values and a color list",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a terminal there is nothing to drive the form, so print the snapshot.
			if !isTerminal(cmd.OutOrStdout()) {
				return runShow(cmd, flags, &showOptions{format: "yaml"})
			}
			return runEdit(cmd, flags, &editOptions{})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Editor document (defaults to the built-in catalog)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Read PARAMEDIT_* settings from this dotenv file (the process environment wins)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newCatalogCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
