package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// ResolveCmd resolves a free-text location to a vendor destination code.
// Useful for inspecting which tier answers a given query.
func ResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <location>",
		Short: "Resolve a free-text location to a vendor destination code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			a, err := buildApp(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			code, tier := a.resolver.Resolve(cmd.Context(), args[0])

			return json.NewEncoder(os.Stdout).Encode(map[string]string{
				"location": args[0],
				"code":     code,
				"tier":     string(tier),
			})
		},
	}
}
