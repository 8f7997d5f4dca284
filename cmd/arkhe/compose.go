package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/arkhe/pkg/domain"
	"github.com/aretw0/arkhe/pkg/observability"
	"github.com/spf13/cobra"
)

func newComposeCmd(a *app) *cobra.Command {
	var (
		input int
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "compose HANDOVER...",
		Short: "Chain builtin handovers and execute them on an integer",
		Long:  `Composes the named builtin handovers from left to right and executes the result on a node holding --input. Use --list to see the available handovers.`,
		Example: `  arkhe compose double increment stringify --input 5
  arkhe compose square stringify exclaim --input -3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("input") {
				input = a.cfg.Demo.Input
			}
			reg := a.builtins()
			if list {
				var sb strings.Builder
				sb.WriteString("# Builtin handovers\n\n")
				for _, id := range reg.IDs() {
					h, _ := reg.Get(id)
					fmt.Fprintf(&sb, "- %s\n", describe(h.ID, h.Protocol))
				}
				return a.print(cmd.OutOrStdout(), sb.String())
			}
			if len(args) == 0 {
				return errors.New("at least one handover is required (see --list)")
			}

			chain, err := reg.Chain(args...)
			if err != nil {
				return err
			}
			chain = observability.Instrument(chain, observability.LoggingHooks(a.logger))

			node := domain.NewNode[any](a.cfg.Demo.Node, a.cfg.Demo.Space, input)
			result, err := execute(chain, node)
			if err != nil {
				return err
			}
			a.logger.Info("chain executed", "handover", chain.ID, "result", result)

			md := fmt.Sprintf("# %s\n\n- protocol: %s\n- fidelity: %g\n- input: %d\n- result: **%v**\n",
				chain.ID, chain.Protocol, chain.Fidelity, input, result)
			return a.print(cmd.OutOrStdout(), md)
		},
	}

	cmd.Flags().IntVar(&input, "input", 0, "Initial state of the source node (default from config)")
	cmd.Flags().BoolVar(&list, "list", false, "List builtin handovers")
	return cmd
}

// execute runs h on node, turning a mapper panic (e.g. a mistyped chain) into an error.
func execute(h *domain.Handover[any, any], node *domain.Node[any]) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handover %s failed: %v", h.ID, r)
		}
	}()
	return h.Execute(node), nil
}
