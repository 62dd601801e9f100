// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/katalvlaran/lvlquant/catalog"
	"github.com/katalvlaran/lvlquant/quantity"
	"github.com/katalvlaran/lvlquant/si"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootOptions carries the flags shared by every subcommand.
type rootOptions struct {
	catalogPath string
	verbose     bool

	log *logrus.Logger
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{log: logrus.New()}
	o.log.SetOutput(errOut)
	o.log.SetLevel(logrus.WarnLevel)

	cmd := &cobra.Command{
		Use:          "qconv",
		Short:        "Convert physical quantities between units",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.verbose {
				o.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.PersistentFlags().StringVar(&o.catalogPath, "catalog", "", "YAML unit catalog extending the built-in units")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	cmd.AddCommand(
		newConvertCommand(o),
		newUnitsCommand(o),
		newDimensionsCommand(o),
	)

	return cmd
}

// registries returns the built-in registries extended by --catalog.
func (o *rootOptions) registries() (map[string]quantity.Converter, error) {
	regs := si.Registries()
	if o.catalogPath == "" {
		return regs, nil
	}

	o.log.WithField("catalog", o.catalogPath).Debug("loading unit catalog")
	c, err := catalog.LoadFile(o.catalogPath)
	if err != nil {
		return nil, err
	}
	if err := catalog.Apply(c, regs); err != nil {
		return nil, err
	}
	o.log.WithFields(logrus.Fields{
		"catalog":    o.catalogPath,
		"units":      c.Len(),
		"dimensions": c.Dimensions(),
	}).Debug("unit catalog applied")

	return regs, nil
}

// converter resolves the registry of one dimension.
func (o *rootOptions) converter(dimension string) (quantity.Converter, error) {
	regs, err := o.registries()
	if err != nil {
		return nil, err
	}
	conv, ok := regs[dimension]
	if !ok {
		return nil, errUnknownDimension(dimension)
	}

	return conv, nil
}
