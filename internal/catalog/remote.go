package catalog

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jimezsa/jobboard/internal/network"
)

// RemoteSource downloads a dataset over HTTP(S). The URL may serve the
// dataset as JSON or as an HTML page that embeds it in a
// <script type="application/json"> element.
type RemoteSource struct {
	URL    string
	Client *network.Client
}

func NewRemoteSource(url string, client *network.Client) *RemoteSource {
	return &RemoteSource{URL: url, Client: client}
}

func (s *RemoteSource) Name() string {
	return "url:" + s.URL
}

func (s *RemoteSource) Fetch(ctx context.Context) (Dataset, error) {
	if s.Client == nil {
		return Dataset{}, fmt.Errorf("remote source: no http client")
	}
	resp, err := s.Client.Get(ctx, s.URL, map[string]string{
		"accept": "application/json, text/html;q=0.9, */*;q=0.5",
	})
	if err != nil {
		return Dataset{}, err
	}

	if isHTML(resp.ContentType, resp.Body) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
		if err != nil {
			return Dataset{}, fmt.Errorf("parse html: %w", err)
		}
		return datasetFromDocument(doc)
	}
	return DecodeDataset(resp.Body)
}

func isHTML(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "html") {
		return true
	}
	head := strings.ToLower(strings.TrimSpace(string(body[:min(len(body), 64)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// datasetFromDocument reads the embedded dataset, preferring #jobs-data.
func datasetFromDocument(doc *goquery.Document) (Dataset, error) {
	selection := doc.Find("script#jobs-data[type='application/json']")
	if selection.Length() == 0 {
		selection = doc.Find("script[type='application/json']")
	}

	var lastErr error
	for i := range selection.Nodes {
		raw := strings.TrimSpace(selection.Eq(i).Text())
		if raw == "" {
			continue
		}
		ds, err := DecodeDataset([]byte(raw))
		if err != nil {
			lastErr = err
			continue
		}
		if len(ds.Jobs) == 0 && len(ds.Companies) == 0 {
			continue
		}
		return ds, nil
	}
	if lastErr != nil {
		return Dataset{}, lastErr
	}
	return Dataset{}, fmt.Errorf("no embedded dataset found: %w", ErrEmptySource)
}
