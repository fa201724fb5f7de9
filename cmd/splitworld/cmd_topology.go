package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/talgya/splitting-world/internal/world"
)

func newTopologyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topology [era]",
		Short: "Print the tile graph as it stands after an era's drift",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			era := world.MaxScriptedEra
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("era must be a number: %w", err)
				}
				era = n
			}
			if era < 1 || era > world.MaxScriptedEra {
				return fmt.Errorf("era %d: %w", era, world.ErrEraOutOfRange)
			}

			m, err := world.BuildTopology(era)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "era %d: %d tiles, %d edges\n", era, m.TileCount(), len(m.Edges()))
			for _, idx := range m.Indices() {
				tile := m.Get(idx)
				neighbors := make([]string, len(tile.Neighbors))
				for i, n := range tile.Neighbors {
					neighbors[i] = strconv.Itoa(n.Index)
				}
				frozen := ""
				if tile.Frozen {
					frozen = " (frozen)"
				}
				fmt.Fprintf(out, "%d:%s %s\n", idx, frozen, strings.Join(neighbors, " "))
			}
			return nil
		},
	}
}
