package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ashphythian/bayscraper/config"
	"github.com/ashphythian/bayscraper/internal/crawler"
	"github.com/ashphythian/bayscraper/internal/listing"
	apperrors "github.com/ashphythian/bayscraper/pkg/errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type searchOptions struct {
	exclude  string
	min      float64
	max      float64
	baseURL  string
	cheapest bool
	asJSON   bool
}

func init() {
	rootCmd.AddCommand(newSearchCmd())
}

func newSearchCmd() *cobra.Command {
	opts := searchOptions{}

	cmd := &cobra.Command{
		Use:   "search KEYWORDS...",
		Short: "Prints the listings for a search, cheapest total first.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := listing.Query{
				Keywords:   strings.Join(args, " "),
				Exclusions: opts.exclude,
				MinPrice:   opts.min,
				MaxPrice:   opts.max,
			}

			// Read after main has loaded .env
			cfg := config.LoadConfig()
			if opts.baseURL != "" {
				cfg.EbayBaseURL = opts.baseURL
			}
			c := crawler.CreateCrawler(&cfg, nil)

			result, err := c.Search(cmd.Context(), q)
			if err != nil {
				if apperrors.IsStructural(err) {
					return fmt.Errorf("results page not in the expected shape: search %q: %w", q.Keywords, err)
				}
				return fmt.Errorf("search %q: %w", q.Keywords, err)
			}

			if opts.cheapest {
				if cheapest, ok := result.Cheapest(); ok {
					result.Listings = []listing.Listing{cheapest}
				}
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				return writeJSON(out, result)
			}
			writeTable(out, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.exclude, "exclude", "x", "", "space-separated terms to leave out")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "lowest total price")
	cmd.Flags().Float64Var(&opts.max, "max", listing.DefaultMaxPrice, "highest total price")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "search page address (default $EBAY_BASE_URL or eBay UK)")
	cmd.Flags().BoolVar(&opts.cheapest, "cheapest", false, "print only the cheapest listing")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")

	return cmd
}

func writeJSON(w io.Writer, result *listing.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeTable(w io.Writer, result *listing.Result) {
	if result.Extracted == 0 {
		fmt.Fprintln(w, "No listings on the results page.")
		return
	}
	if result.Empty() {
		fmt.Fprintf(w, "No listings matched (%d found outside the price window).\n", result.Extracted)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Title", "Price", "Postage", "Total", "Link"})

	for i, l := range result.Listings {
		t.AppendRow(table.Row{
			i + 1,
			l.Title,
			fmt.Sprintf("%.2f", l.Price),
			fmt.Sprintf("%.2f", l.ShippingCost),
			fmt.Sprintf("%.2f", l.TotalPrice),
			l.Link,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
