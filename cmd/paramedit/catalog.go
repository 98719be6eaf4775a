package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paramedit/internal/param"
)

type catalogOptions struct {
	jsonOutput bool
}

func newCatalogCmd(flags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the declared parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runCatalog(cmd *cobra.Command, flags *rootFlags, opts *catalogOptions) error {
	app, err := newAppContext(cmd, flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	params := app.Catalog.All()
	if opts.jsonOutput {
		return renderCatalogJSON(cmd, params)
	}
	return renderCatalogTable(cmd, params)
}

func renderCatalogTable(cmd *cobra.Command, params []param.Parameter) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tTYPE")
	for _, p := range params {
		fmt.Fprintf(writer, "%d\t%s\t%s\n", p.ID, p.Name, p.Type.Label())
	}

	return writer.Flush()
}

type catalogJSONParameter struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type catalogJSONPayload struct {
	Count      int                    `json:"count"`
	Parameters []catalogJSONParameter `json:"parameters"`
}

func renderCatalogJSON(cmd *cobra.Command, params []param.Parameter) error {
	payload := catalogJSONPayload{
		Count:      len(params),
		Parameters: make([]catalogJSONParameter, len(params)),
	}
	for i, p := range params {
		payload.Parameters[i] = catalogJSONParameter{ID: int(p.ID), Name: p.Name, Type: string(p.Type)}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
