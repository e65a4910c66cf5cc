package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tgraph/graphqd/client"
)

func newVertexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vertex",
		Short: "Manage vertices",
	}
	cmd.AddCommand(vertexCreateCmd())
	cmd.AddCommand(vertexGetCmd())
	cmd.AddCommand(vertexDeleteCmd())
	cmd.AddCommand(vertexListCmd())
	return cmd
}

func vertexCreateCmd() *cobra.Command {
	var vtype string
	var createTime, balance int64
	cmd := &cobra.Command{
		Use:   "create <vid>",
		Short: "Create a vertex",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vid, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fatal("parse vid", err)
			}
			req := &client.CreateVertexRequest{
				VID:        vid,
				VType:      vtype,
				CreateTime: createTime,
				Balance:    balance,
			}
			v, err := apiClient.Vertices.Create(context.Background(), req)
			if err != nil {
				fatal("create vertex", err)
			}
			output(v, strconv.FormatInt(v.VID, 10))
		},
	}
	cmd.Flags().StringVar(&vtype, "type", "", "Vertex type")
	cmd.Flags().Int64Var(&createTime, "create-time", 0, "Creation timestamp")
	cmd.Flags().Int64Var(&balance, "balance", 0, "Initial balance")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func vertexGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <vid>",
		Short: "Get a vertex by VID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vid, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fatal("parse vid", err)
			}
			v, err := apiClient.Vertices.Get(context.Background(), vid)
			if err != nil {
				fatal("get vertex", err)
			}
			output(v, strconv.FormatInt(v.VID, 10))
		},
	}
}

func vertexDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <vid>",
		Short: "Delete a vertex",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			vid, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fatal("parse vid", err)
			}
			if err := apiClient.Vertices.Delete(context.Background(), vid); err != nil {
				fatal("delete vertex", err)
			}
			fmt.Println("deleted")
		},
	}
}

func vertexListCmd() *cobra.Command {
	var vtype string
	var limit, offset int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vertices",
		Run: func(cmd *cobra.Command, args []string) {
			if limit < 0 {
				fmt.Fprintf(os.Stderr, "Error: --limit must be non-negative\n")
				os.Exit(1)
			}
			if offset < 0 {
				fmt.Fprintf(os.Stderr, "Error: --offset must be non-negative\n")
				os.Exit(1)
			}
			opts := &client.VertexListOptions{
				VType:  vtype,
				Limit:  limit,
				Offset: offset,
			}
			vertices, _, err := apiClient.Vertices.List(context.Background(), opts)
			if err != nil {
				fatal("list vertices", err)
			}
			if flagFmt == "table" {
				headers := []string{"VID", "TYPE", "BALANCE", "CREATE_TIME"}
				var rows [][]string
				for _, v := range vertices {
					rows = append(rows, []string{
						strconv.FormatInt(v.VID, 10),
						v.VType,
						strconv.FormatInt(v.Balance, 10),
						strconv.FormatInt(v.CreateTime, 10),
					})
				}
				formatTable(headers, rows)
				return
			}
			if flagFmt == "quiet" {
				for _, v := range vertices {
					fmt.Println(v.VID)
				}
				return
			}
			output(vertices, "")
		},
	}
	cmd.Flags().StringVar(&vtype, "type", "", "Filter by type")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Offset")
	return cmd
}
