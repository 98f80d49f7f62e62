package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Load fetches and decodes a dataset from a file path or an http(s) URL.
//
// Every failure is returned as a *LoadError, which matches ErrLoadFailed.
func Load(ctx context.Context, source string) (*Catalog, error) {
	rc, err := open(ctx, source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	defer rc.Close()

	c, err := Parse(rc)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return c, nil
}

// Parse decodes a dataset document. A missing certificates array yields an
// empty catalog.
func Parse(r io.Reader) (*Catalog, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid dataset JSON: %w", err)
	}
	if doc.Certificates == nil {
		doc.Certificates = []Record{}
	}
	return FromDocument(&doc), nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if source == "" {
		return nil, fmt.Errorf("no data source configured")
	}
	if !isURL(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("cannot open dataset: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch dataset: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.Body, nil
}
