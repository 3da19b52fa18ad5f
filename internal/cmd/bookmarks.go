package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jimezsa/jobboard/internal/bookmarks"
	"github.com/jimezsa/jobboard/internal/export"
	"github.com/jimezsa/jobboard/internal/listing"
	"github.com/jimezsa/jobboard/internal/models"
	"github.com/jimezsa/jobboard/internal/ui"
)

type BookmarksCmd struct {
	Toggle BookmarkToggleCmd `cmd:"" help:"Bookmark a job, or remove its bookmark."`
	List   BookmarkListCmd   `cmd:"" default:"1" help:"Show bookmarked jobs (the tracker)."`
	IDs    BookmarkIDsCmd    `cmd:"" name:"ids" help:"Print bookmarked job ids."`
}

type BookmarkToggleCmd struct {
	ID int `arg:"" help:"Job id."`
}

type BookmarkListCmd struct{}

type BookmarkIDsCmd struct{}

func (c *BookmarkToggleCmd) Run(ctx *Context) error {
	runCtx := context.Background()
	store, closeStore := ctx.openBookmarks(runCtx)
	defer closeStore()

	if store.Toggle(runCtx, c.ID) {
		ctx.UI.Successf("Bookmarked job %d", c.ID)
	} else {
		ctx.UI.Infof("Removed bookmark for job %d", c.ID)
	}
	return nil
}

func (c *BookmarkListCmd) Run(ctx *Context) error {
	runCtx := context.Background()
	store, closeStore := ctx.openBookmarks(runCtx)
	defer closeStore()

	result, err := ctx.loadCatalog(runCtx)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}
	return writeTracker(ctx, store, listing.Tracker(result.Jobs, store.IsBookmarked))
}

func writeTracker(ctx *Context, store *bookmarks.Store, tracked []models.Job) error {
	if ctx.JSONOutput {
		return export.WriteJobs(ctx.Out, tracked, export.FormatJSON, export.WriteOptions{IsBookmarked: store.IsBookmarked})
	}
	if store.Len() == 0 {
		ctx.UI.Infof("No bookmarked jobs yet")
		ctx.UI.Mutedf("Start exploring jobs and bookmark them to track your applications.")
		return nil
	}
	ctx.UI.Infof("You have %d bookmarked %s.", len(tracked), ui.Plural(len(tracked), "job"))
	if len(tracked) == 0 {
		return nil
	}
	fmt.Fprintln(ctx.Out)
	format := export.FormatTable
	if ctx.PlainText {
		format = export.FormatTSV
	}
	return export.WriteJobs(ctx.Out, tracked, format, export.WriteOptions{
		ColorEnabled: ctx.UI.ColorEnabled,
		Layout:       export.LayoutGrid,
		IsBookmarked: store.IsBookmarked,
	})
}

func (c *BookmarkIDsCmd) Run(ctx *Context) error {
	store, closeStore := ctx.openBookmarks(context.Background())
	defer closeStore()

	ids := store.IDs()
	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		return enc.Encode(ids)
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(ctx.Out, id); err != nil {
			return err
		}
	}
	return nil
}
