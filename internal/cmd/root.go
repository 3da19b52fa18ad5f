package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version   VersionCmd   `cmd:"" help:"Print version."`
	Config    ConfigCmd    `cmd:"" help:"Manage configuration."`
	Jobs      JobsCmd      `cmd:"" default:"withargs" help:"List one page of jobs matching the filters."`
	Browse    BrowseCmd    `cmd:"" help:"Browse jobs interactively."`
	Bookmarks BookmarksCmd `cmd:"" aliases:"tracker" help:"Manage bookmarked jobs."`
}

func NewCLI() *CLI {
	return &CLI{}
}
