package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/jimezsa/jobboard/internal/models"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

//go:embed data/jobs.json
var embeddedDataset []byte

// EmbeddedSource serves the dataset compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string {
	return "embedded"
}

func (EmbeddedSource) Fetch(ctx context.Context) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	return DecodeDataset(embeddedDataset)
}

// FileSource reads a JSON or JSON5 dataset file.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return "file:" + s.Path
}

func (s FileSource) Fetch(ctx context.Context) (Dataset, error) {
	if strings.TrimSpace(s.Path) == "" {
		return Dataset{}, fmt.Errorf("dataset path is required")
	}
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Dataset{}, err
	}
	return DecodeDataset(data)
}

// DecodeDataset parses {"jobs": [...], "companies": [...]}. JSON5 syntax
// (comments, trailing commas) is accepted.
func DecodeDataset(data []byte) (Dataset, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Dataset{}, ErrEmptySource
	}
	var ds Dataset
	if err := json5.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	if ds.Jobs == nil {
		ds.Jobs = []models.Job{}
	}
	return ds, nil
}
