package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"tourpipe/internal/dataset"
	"tourpipe/internal/fileutil"
	"tourpipe/internal/logging"
	"tourpipe/internal/merge"
)

// Per-id outcomes recorded for the run ledger.
const (
	OutcomeFetched     = "fetched"
	OutcomeCached      = "cached"
	OutcomeFetchFailed = "fetch-failed"
)

// Summary aggregates what the enrichment pass did.
type Summary struct {
	Fetched        int
	Cached         int
	FetchFailed    int
	Downloaded     int
	DownloadFailed int
	Missing        []dataset.MissingEntry
	Outcomes       map[string]string
}

// Options configures an Enricher.
type Options struct {
	Client         *http.Client
	CacheDir       string
	AssetDir       string
	Concurrency    int
	Timeout        time.Duration
	UserAgent      string
	DownloadCovers bool
	Logger         *slog.Logger
}

// Enricher fetches and caches tour page metadata.
type Enricher struct {
	client         *http.Client
	cache          *Cache
	assetDir       string
	assetBase      string
	concurrency    int
	userAgent      string
	downloadCovers bool
	logger         *slog.Logger
}

// New constructs an Enricher. A nil Client gets a default client with the
// configured timeout applied.
func New(opts Options) *Enricher {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	logger := logging.NewComponentLogger(opts.Logger, "enricher")

	return &Enricher{
		client:         client,
		cache:          NewCache(opts.CacheDir, opts.Logger),
		assetDir:       opts.AssetDir,
		assetBase:      fileutil.SiteRelativeBase(opts.AssetDir),
		concurrency:    concurrency,
		userAgent:      opts.UserAgent,
		downloadCovers: opts.DownloadCovers,
		logger:         logger,
	}
}

// result is one worker's output, applied to the table after the pool drains.
type result struct {
	id          string
	meta        PageMeta
	assetCover  string
	outcome     string
	downloaded  bool
	downloadErr error
}

// Run enriches every tour in the table that lacks readable metadata. Workers
// handle disjoint ids; each id is processed exactly once. Individual failures
// are counted and never abort the batch.
func (e *Enricher) Run(ctx context.Context, table *merge.Table) Summary {
	var pending []dataset.Tour
	for _, tour := range table.Tours() {
		if needsEnrichment(tour) {
			pending = append(pending, tour)
		}
	}

	summary := Summary{Outcomes: make(map[string]string, len(pending))}
	if len(pending) == 0 {
		return summary
	}

	results := make([]result, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, tour := range pending {
		g.Go(func() error {
			results[i] = e.enrichOne(gctx, tour)
			return nil
		})
	}
	// Workers report failures through their result slot, never as errors.
	_ = g.Wait()

	for _, res := range results {
		summary.Outcomes[res.id] = res.outcome
		switch res.outcome {
		case OutcomeFetched:
			summary.Fetched++
		case OutcomeCached:
			summary.Cached++
		case OutcomeFetchFailed:
			summary.FetchFailed++
			summary.Missing = append(summary.Missing, dataset.MissingEntry{ID: res.id, Reason: OutcomeFetchFailed})
			continue
		}

		table.Merge(merge.TourCandidate{
			ID:            res.id,
			Title:         res.meta.Title,
			Description:   res.meta.Description,
			Cover:         res.meta.Cover,
			RemoteCover:   res.meta.Cover,
			AssetCover:    res.assetCover,
			HasEnrichment: true,
		})

		if res.downloaded {
			summary.Downloaded++
		}
		if res.downloadErr != nil {
			summary.DownloadFailed++
			e.logger.Warn("cover download failed", logging.String("id", res.id), logging.Error(res.downloadErr))
		}
	}
	return summary
}

func (e *Enricher) enrichOne(ctx context.Context, tour dataset.Tour) result {
	res := result{id: tour.ID}

	if entry, ok := e.cache.Lookup(tour.ID); ok {
		res.outcome = OutcomeCached
		res.meta = PageMeta{Title: entry.Title, Description: entry.Description, Cover: entry.Cover}
	} else {
		meta, err := e.fetchMeta(ctx, tour)
		if err != nil {
			e.logger.Warn("metadata fetch failed", logging.String("id", tour.ID), logging.Error(err))
			res.outcome = OutcomeFetchFailed
			return res
		}
		res.outcome = OutcomeFetched
		res.meta = meta

		if err := e.cache.Store(CacheEntry{
			ID:          tour.ID,
			Title:       meta.Title,
			Description: meta.Description,
			Cover:       meta.Cover,
		}); err != nil {
			e.logger.Warn("cache write failed", logging.String("id", tour.ID), logging.Error(err))
		}
	}

	// A fetched-but-undownloadable cover must not block title capture, so
	// download errors ride along in the result instead of failing the id.
	if e.downloadCovers && res.meta.Cover != "" && tour.AssetCover == "" {
		local, err := e.downloadCover(ctx, tour.ID, res.meta.Cover)
		if err != nil {
			res.downloadErr = err
		} else {
			res.assetCover = local
			res.downloaded = true
			e.logger.Debug("cover downloaded", logging.String("id", tour.ID), logging.String("path", local))
		}
	}
	return res
}

func (e *Enricher) fetchMeta(ctx context.Context, tour dataset.Tour) (PageMeta, error) {
	url := tour.URL
	if url == "" {
		url = dataset.CanonicalURL(tour.ID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return PageMeta{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return PageMeta{}, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return PageMeta{}, fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	meta := ParsePageMeta(resp.Body)
	if meta.Title == "" && meta.Description == "" && meta.Cover == "" {
		return PageMeta{}, fmt.Errorf("page has no preview metadata")
	}
	return meta, nil
}

// needsEnrichment reports whether a tour still lacks any enrichable field.
func needsEnrichment(t dataset.Tour) bool {
	if t.Title == "" || t.Description == "" {
		return true
	}
	return t.Cover == "" && t.AssetCover == "" && t.RemoteCover == ""
}
