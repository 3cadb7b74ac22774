package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"expodir/internal/domain"
	"expodir/internal/logic"
	"expodir/internal/ui/services/filter"
	"expodir/internal/ui/services/query"
)

// listOptions are the filters of a one-shot listing
type listOptions struct {
	industries []int
	countries  []int
	search     string
	letter     string
	page       int
}

// state turns the options into a filter state starting from defaults
func (o listOptions) state(d filter.Defaults) filter.State {
	s := filter.NewState(d)
	for _, id := range o.industries {
		s = s.WithIndustry(id, true)
	}
	for _, id := range o.countries {
		s = s.WithCountry(id, true)
	}
	s = s.WithSearch(o.search)
	if o.letter != "" {
		s = s.WithAlpha(strings.ToUpper(o.letter))
	}
	if o.page > 1 {
		s = s.WithPage(o.page)
	}
	return s
}

func newListCmd(a *app) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of exhibitors as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.letter != "" && !isAlphaLetter(opts.letter) {
				return fmt.Errorf("invalid letter %q", opts.letter)
			}
			if opts.page < 1 {
				return fmt.Errorf("page must be at least 1, got %d", opts.page)
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			defaults := filter.Defaults{
				PageSize:  a.cfg.PageSize,
				SortField: a.cfg.SortField,
				SortOrder: a.cfg.SortOrder,
			}
			return runList(cmd.Context(), cmd.OutOrStdout(), client, a.cfg.ListingResource, opts.state(defaults))
		},
	}

	cmd.Flags().IntSliceVar(&opts.industries, "industry", nil, "industry category ids to filter by")
	cmd.Flags().IntSliceVar(&opts.countries, "country", nil, "country ids to filter by")
	cmd.Flags().StringVar(&opts.search, "search", "", "free text search")
	cmd.Flags().StringVar(&opts.letter, "letter", "", "first letter of the exhibitor name")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page number")

	return cmd
}

func isAlphaLetter(s string) bool {
	for _, l := range filter.AlphaLetters {
		if strings.EqualFold(l, s) {
			return true
		}
	}
	return false
}

// runList fetches one page for state and renders it to out. Missing
// reference tables only leave names unresolved.
func runList(ctx context.Context, out io.Writer, directory logic.Directory, resource string, state filter.State) error {
	if ctx == nil {
		ctx = context.Background()
	}

	store := logic.NewMemoryReferenceStore()
	if err := loadReferences(ctx, directory, store, nil); err != nil {
		zap.S().Warnf("Listing without reference names: %v", err)
	}

	params := query.Build(state)
	zap.S().Debugf("Listing %s?%s", resource, params.Encode())

	page, err := directory.FetchExhibitors(ctx, resource, params.Values())
	if err != nil {
		return fmt.Errorf("failed to fetch exhibitors: %w", err)
	}

	renderTable(out, page, store)

	switch {
	case page.IsEmpty() && state.Page > 1 && state.Page > page.TotalPages:
		fmt.Fprintf(out, "No exhibitors on page %d of %d\n", state.Page, page.TotalPages)
	case page.IsEmpty():
		fmt.Fprintln(out, "No exhibitors found")
	default:
		fmt.Fprintf(out, "Showing %d results, page %d of %d\n", page.TotalCount, state.Page, page.TotalPages)
	}
	return nil
}

func renderTable(out io.Writer, page domain.ResultPage, store logic.ReferenceStore) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name", "Stand", "Country", "Industry", "Website"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	for _, e := range page.Items {
		name := e.Name
		if e.Premium {
			name += " *"
		}
		table.Append([]string{
			strconv.Itoa(e.ID),
			name,
			domain.ValueOrDash(e.Stand),
			orDash(strings.Join(logic.CountryNames(store, e.CountryIDs), ", ")),
			orDash(strings.Join(logic.IndustryNames(store, e.IndustryIDs), ", ")),
			domain.ValueOrDash(e.CompanyURL),
		})
	}

	table.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
