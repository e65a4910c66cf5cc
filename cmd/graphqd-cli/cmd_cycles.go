package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tgraph/graphqd/client"
)

func newCyclesCmd() *cobra.Command {
	var (
		maxDepth         int
		direction        string
		limit            int
		allowDupVertices bool
		allowDupEdges    bool
	)

	cmd := &cobra.Command{
		Use:   "cycles <start_vid>",
		Short: "Enumerate temporal transaction cycles through a vertex",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			startVID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fatal("parse start_vid", err)
			}

			req := &client.CycleQueryRequest{
				MaxDepth:         maxDepth,
				Direction:        direction,
				Limit:            limit,
				AllowDupVertices: allowDupVertices,
				AllowDupEdges:    allowDupEdges,
			}

			result, err := apiClient.Cycles.Query(context.Background(), startVID, req)
			if err != nil {
				fatal("query cycles", err)
			}
			output(result, "")
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 6, "Maximum cycle length (edges)")
	cmd.Flags().StringVar(&direction, "direction", "forward", "Temporal constraint: forward|any")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of cycles to return")
	cmd.Flags().BoolVar(&allowDupVertices, "allow-dup-vertices", false, "Allow repeated interior vertices")
	cmd.Flags().BoolVar(&allowDupEdges, "allow-dup-edges", false, "Allow repeated edges")
	return cmd
}
