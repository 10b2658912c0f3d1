package image

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxImageBytes caps how much image data a single fetch reads
const DefaultMaxImageBytes = 5 * 1024 * 1024 // 5MB

// Fetcher retrieves the first matching image for a query as raw bytes.
// A miss and a request timeout both yield (nil, nil): the word is just
// shown without an illustration.
type Fetcher struct {
	searcher Searcher
	maxBytes int64
}

// NewFetcher creates a fetcher over the given search provider
func NewFetcher(searcher Searcher, maxBytes int64) *Fetcher {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &Fetcher{
		searcher: searcher,
		maxBytes: maxBytes,
	}
}

// SearchFirstImage searches for the query and downloads the first
// available result. The caller controls the request deadline through
// the context; hitting it is treated as "no result".
func (f *Fetcher) SearchFirstImage(ctx context.Context, query string) ([]byte, error) {
	results, err := f.searcher.Search(ctx, DefaultSearchOptions(query))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, nil
		}
		return nil, fmt.Errorf("image search failed: %w", err)
	}

	for _, result := range results {
		data, err := f.download(ctx, result.URL)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, nil
			}
			// Try the next result.
			continue
		}
		return data, nil
	}

	return nil, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	reader, err := f.searcher.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, f.maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("image exceeds maximum size of %d bytes", f.maxBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	return data, nil
}
