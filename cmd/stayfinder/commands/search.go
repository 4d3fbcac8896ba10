package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rawal21/stayfinder/internal/search"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// SearchCmd runs a single search and prints the result page as JSON.
func SearchCmd() *cobra.Command {
	var (
		location string
		checkIn  string
		checkOut string
		guests   int
		offset   int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search hotel inventory for one result page",
		Example: `  stayfinder search --location Tokyo --checkin 2026-09-12 --checkout 2026-09-15
  stayfinder search --location "New York" --guests 3 --offset 20 --limit 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			params := search.Params{
				Location: location,
				Guests:   guests,
				Offset:   offset,
				Limit:    limit,
			}

			params.CheckIn = time.Now()
			if checkIn != "" {
				t, err := time.Parse(dateLayout, checkIn)
				if err != nil {
					return fmt.Errorf("invalid checkin date: %w", err)
				}
				params.CheckIn = t
			}

			params.CheckOut = params.CheckIn.AddDate(0, 0, 1)
			if checkOut != "" {
				t, err := time.Parse(dateLayout, checkOut)
				if err != nil {
					return fmt.Errorf("invalid checkout date: %w", err)
				}
				params.CheckOut = t
			}
			if params.CheckOut.Before(params.CheckIn) {
				return fmt.Errorf("checkout must not precede checkin")
			}

			a, err := buildApp(cmd.Context(), configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			result := a.searcher.Search(cmd.Context(), params)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "Free-text destination (empty searches the default destination)")
	cmd.Flags().StringVar(&checkIn, "checkin", "", "Check-in date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&checkOut, "checkout", "", "Check-out date YYYY-MM-DD (default one night)")
	cmd.Flags().IntVar(&guests, "guests", 2, "Number of guests")
	cmd.Flags().IntVar(&offset, "offset", 0, "Result page offset")
	cmd.Flags().IntVar(&limit, "limit", search.DefaultLimit, "Result page size")

	return cmd
}
