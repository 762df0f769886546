package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tickersymbols/pkg/tickersymbols"
)

func queryCommands() []*cobra.Command {
	listCmd := func(use, short string, list func(*tickersymbols.Catalog) []string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				catalog, err := openCatalog()
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), list(catalog))
			},
		}
	}

	return []*cobra.Command{
		listCmd("indices", "List index names referenced by companies", (*tickersymbols.Catalog).Indices),
		listCmd("industries", "List industries", (*tickersymbols.Catalog).Industries),
		listCmd("countries", "List countries", (*tickersymbols.Catalog).Countries),
		companiesCmd(),
		tickersCmd(),
		indexSymbolCmd(),
	}
}

func companiesCmd() *cobra.Command {
	var index, industry, country string
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "List companies of an index, industry or country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog()
			if err != nil {
				return err
			}
			switch {
			case index != "":
				return printJSON(cmd.OutOrStdout(), catalog.CompaniesByIndex(index))
			case industry != "":
				return printJSON(cmd.OutOrStdout(), catalog.CompaniesByIndustry(industry))
			case country != "":
				return printJSON(cmd.OutOrStdout(), catalog.CompaniesByCountry(country))
			}
			return printJSON(cmd.OutOrStdout(), catalog.Companies())
		},
	}
	cmd.Flags().StringVar(&index, "index", "", "index name")
	cmd.Flags().StringVar(&industry, "industry", "", "industry name")
	cmd.Flags().StringVar(&country, "country", "", "country name")
	cmd.MarkFlagsMutuallyExclusive("index", "industry", "country")
	return cmd
}

func tickersCmd() *cobra.Command {
	var provider string
	cmd := &cobra.Command{
		Use:   "tickers <index>",
		Short: "Ticker symbols of an index's companies for one provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := tickersymbols.ParseProvider(provider)
			if err != nil {
				return err
			}
			catalog, err := openCatalog()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), catalog.TickerSymbolsByIndex(args[0], p))
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "yahoo", "symbol provider (yahoo or google)")
	return cmd
}

func indexSymbolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index-symbol <index>",
		Short: "Yahoo symbol of an index (exact name match)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := openCatalog()
			if err != nil {
				return err
			}
			sym, ok := catalog.IndexYahooSymbol(args[0])
			if !ok {
				return fmt.Errorf("unknown index %q", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sym)
			return err
		},
	}
}
