package main

import (
	"fmt"

	"github.com/aretw0/arkhe/internal/presentation/graph"
	"github.com/spf13/cobra"
)

func newGraphCmd(a *app) *cobra.Command {
	var input int

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the demo hypergraph as a Mermaid diagram",
		Long:  `Runs the demo composition and outputs a Mermaid diagram (graph LR) with nodes grouped by state space and the composed handover as an edge.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("input") {
				input = a.cfg.Demo.Input
			}

			s, err := a.runScenario(input)
			if err != nil {
				return err
			}

			views := append(graph.ViewsOf(s.graph), graph.NodeView{
				ID:         s.resultID(),
				StateSpace: "String",
				Value:      s.result,
				Coherence:  s.source.LocalCoherence,
			})

			output := graph.GenerateMermaid(views, s.graph.Handovers(), &graph.GraphOverlay{Highlighted: []string{s.source.ID}})
			_, err = fmt.Fprint(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().IntVar(&input, "input", 0, "Initial state of the demo node (default from config)")
	return cmd
}
