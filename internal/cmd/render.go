package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jimezsa/jobboard/internal/bookmarks"
	"github.com/jimezsa/jobboard/internal/export"
	"github.com/jimezsa/jobboard/internal/filter"
	"github.com/jimezsa/jobboard/internal/listing"
	"github.com/jimezsa/jobboard/internal/ui"
)

type pageView struct {
	Criteria filter.Criteria `json:"criteria"`
	Page     listing.Page    `json:"page"`
}

func layoutFor(mode filter.ViewMode) export.Layout {
	if mode == filter.ViewList {
		return export.LayoutList
	}
	return export.LayoutGrid
}

func writeOptions(ctx *Context, w io.Writer, state *filter.State, store *bookmarks.Store) export.WriteOptions {
	opts := export.WriteOptions{
		ColorEnabled: ctx.UI != nil && ctx.UI.ColorEnabled && isTTY(w),
		Layout:       layoutFor(state.Criteria().ViewMode),
	}
	if store != nil {
		opts.IsBookmarked = store.IsBookmarked
	}
	return opts
}

// renderPage writes one page of results. Table output gets a header with the
// result and filter counts and the pager footer.
func renderPage(ctx *Context, w io.Writer, format export.Format, state *filter.State, page listing.Page, store *bookmarks.Store) error {
	if format == export.FormatJSON && ctx.JSONOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pageView{Criteria: state.Criteria(), Page: page})
	}

	if format != export.FormatTable {
		return export.WriteJobs(w, page.Jobs, format, writeOptions(ctx, w, state, store))
	}

	if _, err := fmt.Fprintf(w, "%d %s found  ·  %s  ·  sort: %s  ·  view: %s\n\n",
		page.Total, ui.Plural(page.Total, "job"), ui.FiltersHeading(state.ActiveCount()),
		state.Criteria().SortOption, state.Criteria().ViewMode,
	); err != nil {
		return err
	}
	if err := export.WriteJobs(w, page.Jobs, format, writeOptions(ctx, w, state, store)); err != nil {
		return err
	}
	if line := ui.PagerLine(page.Pager.Current, page.Pager.Total); line != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func describeCriteria(c filter.Criteria) string {
	parts := []string{
		fmt.Sprintf("search=%q", c.SearchQuery),
		fmt.Sprintf("type=%s", orAny(c.JobType)),
		fmt.Sprintf("level=%s", orAny(c.ExperienceLevel)),
		fmt.Sprintf("skills=%s", orAny(strings.Join(c.SelectedSkills, ","))),
		fmt.Sprintf("salary=%s-%s", export.FormatCurrency(c.SalaryRange.Min), export.FormatCurrency(c.SalaryRange.Max)),
		fmt.Sprintf("sort=%s", c.SortOption),
		fmt.Sprintf("view=%s", c.ViewMode),
	}
	return strings.Join(parts, " ")
}

func orAny(value string) string {
	if strings.TrimSpace(value) == "" {
		return "any"
	}
	return value
}

func resolveFormat(ctx *Context, flagFormat string, outputPath string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	if flagFormat != "" {
		return export.ParseFormat(flagFormat)
	}
	if outputPath != "" {
		return export.FormatCSV, nil
	}
	return export.FormatTable, nil
}
