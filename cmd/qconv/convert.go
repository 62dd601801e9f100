// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlquant/quantity"
	"github.com/katalvlaran/lvlquant/si"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	*rootOptions
	precision int
	bare      bool
}

func newConvertCommand(root *rootOptions) *cobra.Command {
	o := &convertOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "convert <dimension> <value> <from> <to>",
		Short: "Convert a value from one unit to another",
		Long: `Convert a value of the given dimension from one unit symbol to another.
Symbols accept metric prefixes where the unit allows them (km, mg, kPa); "u"
may be used for the micro prefix.`,
		Example: `  qconv convert length 1 mi ft
  qconv convert temperature 100 °C °F
  qconv convert energy 1 kWh MJ --precision 3`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0], args[1], args[2], args[3])
		},
	}
	cmd.Flags().IntVarP(&o.precision, "precision", "p", -1, "Digits after the decimal point (-1 for shortest exact form)")
	cmd.Flags().BoolVar(&o.bare, "bare", false, "Print the number without the unit symbol")

	return cmd
}

func (o *convertOptions) run(cmd *cobra.Command, dimension, value, from, to string) error {
	if o.precision < -1 || o.precision > 17 {
		return fmt.Errorf("--precision must be in [-1, 17], got %d", o.precision)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", value, quantity.ErrSyntax)
	}
	conv, err := o.converter(dimension)
	if err != nil {
		return err
	}

	got, err := conv.Convert(v, from, to)
	if err != nil {
		return err
	}
	o.log.WithFields(logrus.Fields{
		"dimension": dimension,
		"value":     v,
		"from":      from,
		"to":        to,
		"result":    got,
	}).Debug("converted")

	opts := make([]quantity.FormatOption, 0, 2)
	if o.precision >= 0 {
		opts = append(opts, quantity.WithPrecision(o.precision))
	}
	if o.bare {
		opts = append(opts, quantity.WithoutSymbol())
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), quantity.FormatValue(got, to, opts...))

	return err
}

func errUnknownDimension(name string) error {
	return fmt.Errorf("unknown dimension %q (known: %s)", name, strings.Join(si.DimensionNames(), ", "))
}
