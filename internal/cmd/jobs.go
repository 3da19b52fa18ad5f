package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jimezsa/jobboard/internal/filter"
	"github.com/jimezsa/jobboard/internal/listing"
)

type JobsCmd struct {
	Query     string   `arg:"" optional:"" help:"Search text matched against job title and company name."`
	Type      string   `short:"t" help:"Job type: Remote, Hybrid, Onsite."`
	Level     string   `short:"l" help:"Experience level: Internship, Junior, Mid-Level, Senior."`
	Skill     []string `short:"s" help:"Required skill; repeat or comma-separate, all must match."`
	SalaryMin float64  `help:"Minimum salary (inclusive)." default:"0"`
	SalaryMax float64  `help:"Maximum salary (inclusive)." default:"200000"`
	Sort      string   `help:"Sort order: recent, salary-desc, relevance." default:"recent"`
	View      string   `help:"View mode: grid or list." enum:"grid,list" default:"grid"`
	Page      int      `help:"Page number (1-based)." default:"1"`
	Format    string   `help:"Output format: table, csv, json, md, tsv." enum:",table,csv,json,md,tsv" default:""`
	Output    string   `name:"output" short:"o" help:"Write output to a file."`
}

// applyTo funnels the flags through the state's setters.
func (c *JobsCmd) applyTo(state *filter.State) error {
	jobType, err := filter.ParseJobType(c.Type)
	if err != nil {
		return err
	}
	level, err := filter.ParseExperienceLevel(c.Level)
	if err != nil {
		return err
	}
	view, err := filter.ParseViewMode(c.View)
	if err != nil {
		return err
	}
	if c.SalaryMin > c.SalaryMax {
		return fmt.Errorf("--salary-min must not exceed --salary-max")
	}

	state.SetSearchQuery(strings.TrimSpace(c.Query))
	state.SetJobType(jobType)
	state.SetExperienceLevel(level)
	state.SetSelectedSkills(c.Skill)
	state.SetSalaryRange(c.SalaryMin, c.SalaryMax)
	state.SetSortOption(filter.ParseSortOption(c.Sort))
	state.SetViewMode(view)
	return nil
}

func (c *JobsCmd) Run(ctx *Context) error {
	state := filter.New()
	if err := c.applyTo(state); err != nil {
		return err
	}
	browser := listing.NewBrowser(state)

	runCtx := context.Background()
	result, err := ctx.loadCatalog(runCtx)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}
	browser.SetJobs(result.Jobs)

	if !browser.SetPage(c.Page) {
		ctx.UI.Warnf("page %d is out of range; showing page 1", c.Page)
	}

	store, closeStore := ctx.openBookmarks(runCtx)
	defer closeStore()

	format, err := resolveFormat(ctx, c.Format, c.Output)
	if err != nil {
		return err
	}

	writer := ctx.Out
	if c.Output != "" {
		file, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		writer = file
	}

	page := browser.Page()
	if err := renderPage(ctx, writer, format, state, page, store); err != nil {
		return err
	}

	ctx.Logger.Debug().Str("criteria", describeCriteria(state.Criteria())).Msg("jobs listed")
	if ctx.Err != nil {
		fmt.Fprintf(ctx.Err, "summary: results=%d page=%d/%d bookmarked=%d\n",
			page.Total, page.Pager.Current, page.Pager.Total, store.Len())
	}
	return nil
}
