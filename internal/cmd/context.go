package cmd

import (
	"io"

	"github.com/jimezsa/jobboard/internal/catalog"
	"github.com/jimezsa/jobboard/internal/config"
	"github.com/jimezsa/jobboard/internal/storage"
	"github.com/jimezsa/jobboard/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode

	// Source and Storage replace the configured backends when set.
	Source  catalog.Source
	Storage storage.Storage
}
