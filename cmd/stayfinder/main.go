package main

import (
	"fmt"
	"os"

	"github.com/rawal21/stayfinder/cmd/stayfinder/commands"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "stayfinder",
		Short: "Hotel inventory search with a deterministic fallback path",
		Long:  "stayfinder resolves free-text destinations against a third-party inventory vendor and serves normalized, paginated hotel pages, degrading to deterministic synthetic inventory when the live path is unusable.",
	}

	root.PersistentFlags().String("config", "", "Path to config file (optional, env vars override)")

	root.AddCommand(commands.ServeCmd())
	root.AddCommand(commands.SearchCmd())
	root.AddCommand(commands.ResolveCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print stayfinder version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("stayfinder v0.1.0")
		},
	}
}
