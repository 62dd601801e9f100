// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/lvlquant/catalog"
	"github.com/katalvlaran/lvlquant/si"
	"github.com/spf13/cobra"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

type unitsOptions struct {
	*rootOptions
	output string
}

func newUnitsCommand(root *rootOptions) *cobra.Command {
	o := &unitsOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "units <dimension>",
		Short: "List the units of a dimension",
		Example: `  qconv units length
  qconv units temperature -o yaml > temperature.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0])
		},
	}
	cmd.Flags().StringVarP(&o.output, "output", "o", outputTable, "Output format: table or yaml (a catalog document)")

	return cmd
}

func (o *unitsOptions) run(cmd *cobra.Command, dimension string) error {
	if o.output != outputTable && o.output != outputYAML {
		return fmt.Errorf("unknown output format %q", o.output)
	}
	conv, err := o.converter(dimension)
	if err != nil {
		return err
	}
	if o.output == outputYAML {
		return catalog.FromConverters(conv).Encode(cmd.OutOrStdout())
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tNAME\tSCALE\tOFFSET\tPREFIXES")
	for _, d := range conv.Definitions() {
		scale := strconv.FormatFloat(d.Scale, 'g', -1, 64)
		if d.Exponent > 1 {
			scale += "^" + strconv.Itoa(d.Exponent)
		}
		prefixes := "no"
		if d.Prefixable {
			prefixes = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.Symbol, d.Name, scale, strconv.FormatFloat(d.Offset, 'g', -1, 64), prefixes)
	}

	return w.Flush()
}

func newDimensionsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions",
		Short: "List the known dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regs, err := root.registries()
			if err != nil {
				return err
			}
			for _, name := range si.DimensionNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d units\n", name, len(regs[name].Symbols()))
			}

			return nil
		},
	}
}
