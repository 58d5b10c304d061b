// Device inspection commands of the qryddev CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qryddev/devcfg"
	"github.com/katalvlaran/qryddev/qrydion"
)

// loadDevice builds the device a settings file describes and reports its
// variant name.
func loadDevice(path string) (qrydion.Device, string, error) {
	s, err := devcfg.Load(path)
	if err != nil {
		return nil, "", err
	}
	variant, err := s.Variant()
	if err != nil {
		return nil, "", err
	}
	d, err := s.Build()
	if err != nil {
		return nil, "", err
	}

	return d, variant, nil
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <settings.toml>",
		Short: "Summarize the device a settings file describes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, variant, err := loadDevice(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "kind:   %s\n", variant)
			fmt.Fprintf(out, "qubits: %d\n", d.NumberQubits())
			fmt.Fprintf(out, "edges:  %d\n", len(d.TwoQubitEdges()))

			return nil
		},
	}
}

func newEdgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edges <settings.toml>",
		Short: "Print the two-qubit connectivity as index pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := loadDevice(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range d.TwoQubitEdges() {
				fmt.Fprintf(out, "%d %d\n", e.A, e.B)
			}

			return nil
		},
	}
}
