package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jimezsa/jobboard/internal/bookmarks"
	"github.com/jimezsa/jobboard/internal/export"
	"github.com/jimezsa/jobboard/internal/filter"
	"github.com/jimezsa/jobboard/internal/listing"
	"github.com/jimezsa/jobboard/internal/models"
	"github.com/jimezsa/jobboard/internal/ui"
)

var errQuit = errors.New("quit")

const browseHelp = `Commands:
  search <text>          match title or company name (empty clears)
  type <Remote|Hybrid|Onsite|any>
  level <Internship|Junior|Mid-Level|Senior|any>
  skills <a,b,...>       all listed skills must match (empty clears)
  salary <min> <max>     snapped to 5000 steps, at least 10000 apart
  sort <recent|salary-desc|relevance>
  view <grid|list>
  clear                  reset every filter except the view
  next | prev            move one page
  bookmark <id>          toggle a bookmark
  tracker                show bookmarked jobs
  filters                show the current filters
  help | quit`

type BrowseCmd struct {
	View string `help:"Initial view mode: grid or list." enum:"grid,list" default:"grid"`
}

type browseSession struct {
	ctx     *Context
	state   *filter.State
	browser *listing.Browser
	store   *bookmarks.Store
	catalog []models.Job
}

func (c *BrowseCmd) Run(ctx *Context) error {
	runCtx := context.Background()

	state := filter.New()
	view, err := filter.ParseViewMode(c.View)
	if err != nil {
		return err
	}
	state.SetViewMode(view)

	session := &browseSession{
		ctx:     ctx,
		state:   state,
		browser: listing.NewBrowser(state),
	}

	store, closeStore := ctx.openBookmarks(runCtx)
	defer closeStore()
	session.store = store

	result, err := ctx.loadCatalog(runCtx)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}
	session.catalog = result.Jobs
	session.browser.SetJobs(result.Jobs)
	ctx.Logger.Debug().Int("jobs", len(result.Jobs)).Str("source", result.Source).Msg("browse session ready")

	if err := session.render(); err != nil {
		return err
	}
	return session.loop(runCtx, ctx.In)
}

func (s *browseSession) loop(ctx context.Context, in io.Reader) error {
	if in == nil {
		return nil
	}
	scanner := bufio.NewScanner(in)
	for {
		s.prompt()
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		err := s.exec(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.ctx.UI.Errorf("%v", err)
		}
	}
}

func (s *browseSession) prompt() {
	if isTTY(s.ctx.Out) {
		fmt.Fprint(s.ctx.Out, "jobboard> ")
	}
}

// exec runs one command line. Commands that touch the filter state re-render
// the current page.
func (s *browseSession) exec(ctx context.Context, line string) error {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		fmt.Fprintln(s.ctx.Out, browseHelp)
		return nil
	case "filters":
		s.ctx.UI.Infof("%s: %s", ui.FiltersHeading(s.state.ActiveCount()), describeCriteria(s.state.Criteria()))
		return nil
	case "search":
		s.state.SetSearchQuery(rest)
	case "type":
		value, err := filter.ParseJobType(rest)
		if err != nil {
			return err
		}
		s.state.SetJobType(value)
	case "level":
		value, err := filter.ParseExperienceLevel(rest)
		if err != nil {
			return err
		}
		s.state.SetExperienceLevel(value)
	case "skills":
		s.state.SetSelectedSkills(strings.Split(rest, ","))
	case "salary":
		r, err := parseSalaryArgs(rest)
		if err != nil {
			return err
		}
		s.state.SetSalaryRange(r.Min, r.Max)
	case "sort":
		s.state.SetSortOption(filter.ParseSortOption(rest))
	case "view":
		mode, err := filter.ParseViewMode(rest)
		if err != nil {
			return err
		}
		s.state.SetViewMode(mode)
	case "clear":
		s.state.ClearFilters()
	case "next", "n":
		if !s.browser.Next() {
			s.ctx.UI.Warnf("already on the last page")
			return nil
		}
	case "prev", "p":
		if !s.browser.Prev() {
			s.ctx.UI.Warnf("already on the first page")
			return nil
		}
	case "bookmark", "b":
		id, err := strconv.Atoi(rest)
		if err != nil {
			return fmt.Errorf("bookmark needs a job id: %q", rest)
		}
		if s.store.Toggle(ctx, id) {
			s.ctx.UI.Successf("Bookmarked job %d", id)
		} else {
			s.ctx.UI.Infof("Removed bookmark for job %d", id)
		}
	case "tracker", "t":
		return writeTracker(s.ctx, s.store, listing.Tracker(s.catalog, s.store.IsBookmarked))
	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}
	return s.render()
}

func (s *browseSession) render() error {
	format := export.FormatTable
	if s.ctx.JSONOutput {
		format = export.FormatJSON
	} else if s.ctx.PlainText {
		format = export.FormatTSV
	}
	return renderPage(s.ctx, s.ctx.Out, format, s.state, s.browser.Page(), s.store)
}

func parseSalaryArgs(args string) (filter.SalaryRange, error) {
	fields := strings.Fields(strings.ReplaceAll(args, "-", " "))
	if len(fields) != 2 {
		return filter.SalaryRange{}, fmt.Errorf("salary needs <min> <max>")
	}
	min, err := parseAmount(fields[0])
	if err != nil {
		return filter.SalaryRange{}, err
	}
	max, err := parseAmount(fields[1])
	if err != nil {
		return filter.SalaryRange{}, err
	}
	return filter.SnapSalaryRange(min, max)
}

// parseAmount accepts plain numbers, thousands separators and a k suffix.
func parseAmount(value string) (float64, error) {
	value = strings.TrimPrefix(strings.ReplaceAll(value, ",", ""), "$")
	multiplier := 1.0
	if strings.HasSuffix(strings.ToLower(value), "k") {
		multiplier = 1000
		value = value[:len(value)-1]
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil || amount < 0 {
		return 0, fmt.Errorf("invalid salary amount: %q", value)
	}
	return amount * multiplier, nil
}
