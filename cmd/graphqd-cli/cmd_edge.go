package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tgraph/graphqd/client"
)

func newEdgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edge",
		Short: "Manage edges",
	}
	cmd.AddCommand(edgeCreateCmd())
	cmd.AddCommand(edgeGetCmd())
	cmd.AddCommand(edgeDeleteCmd())
	cmd.AddCommand(edgeListCmd())
	return cmd
}

func edgeCreateCmd() *cobra.Command {
	var etype string
	var eid, srcVID, dstVID, amount, occurTime int64
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an edge",
		Run: func(cmd *cobra.Command, args []string) {
			req := &client.CreateEdgeRequest{
				EID:       eid,
				SrcVID:    srcVID,
				DstVID:    dstVID,
				Amount:    amount,
				OccurTime: occurTime,
				EType:     etype,
			}
			e, err := apiClient.Edges.Create(context.Background(), req)
			if err != nil {
				fatal("create edge", err)
			}
			output(e, strconv.FormatInt(e.EID, 10))
		},
	}
	cmd.Flags().Int64Var(&eid, "eid", 0, "Edge ID")
	cmd.Flags().Int64Var(&srcVID, "src", 0, "Source vertex ID")
	cmd.Flags().Int64Var(&dstVID, "dst", 0, "Destination vertex ID")
	cmd.Flags().Int64Var(&amount, "amount", 0, "Transaction amount")
	cmd.Flags().Int64Var(&occurTime, "occur-time", 0, "Occurrence timestamp")
	cmd.Flags().StringVar(&etype, "type", "", "Edge type")
	_ = cmd.MarkFlagRequired("eid")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func edgeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <eid>",
		Short: "Get an edge by EID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			eid, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fatal("parse eid", err)
			}
			e, err := apiClient.Edges.Get(context.Background(), eid)
			if err != nil {
				fatal("get edge", err)
			}
			output(e, strconv.FormatInt(e.EID, 10))
		},
	}
}

func edgeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <eid>",
		Short: "Delete an edge",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			eid, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fatal("parse eid", err)
			}
			if err := apiClient.Edges.Delete(context.Background(), eid); err != nil {
				fatal("delete edge", err)
			}
			fmt.Println("deleted")
		},
	}
}

func edgeListCmd() *cobra.Command {
	var vid int64
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List edges incident to a vertex",
		Run: func(cmd *cobra.Command, args []string) {
			if vid <= 0 {
				fatal("list edges", fmt.Errorf("--vid is required"))
			}
			edges, _, err := apiClient.Vertices.Edges(context.Background(), vid, limit, offset)
			if err != nil {
				fatal("list edges", err)
			}
			if flagFmt == "table" {
				headers := []string{"EID", "SRC", "DST", "TYPE", "AMOUNT"}
				var rows [][]string
				for _, e := range edges {
					rows = append(rows, []string{
						strconv.FormatInt(e.EID, 10),
						strconv.FormatInt(e.SrcVID, 10),
						strconv.FormatInt(e.DstVID, 10),
						e.EType,
						strconv.FormatInt(e.Amount, 10),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, e := range edges {
					fmt.Println(e.EID)
				}
				return
			}
			output(edges, "")
		},
	}
	cmd.Flags().Int64Var(&vid, "vid", 0, "Vertex ID whose incident edges to list")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset")
	_ = cmd.MarkFlagRequired("vid")
	return cmd
}
