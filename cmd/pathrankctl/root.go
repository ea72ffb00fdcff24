package main

import "github.com/spf13/cobra"

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pathrankctl",
		Short: "Rank graph paths and expand seed neighborhoods by mutual information",
		Long: `pathrankctl generates deterministic test graphs, ranks paths between two
nodes by length-normalized mutual-information geometric mean, grows
seed-bounded neighborhoods, and runs baseline comparisons (a PageRank score
map and BFS shortest-path versus DFS paths).`,
	}

	root.AddCommand(generateCmd())
	root.AddCommand(rankCmd())
	root.AddCommand(expandCmd())
	root.AddCommand(compareCmd())

	return root
}
