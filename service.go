package web2pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-web2pdf/internal/fileutil"
)

// Service orchestrates the fetch-then-merge pipeline.
type Service struct {
	config  Config
	cfg     settings
	fetcher pageFetcher
	merger  *Merger
}

// New creates a Service for the given configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(config Config, opts ...Option) *Service {
	s := &Service{
		config: config,
		cfg: settings{
			timeout:     DefaultTimeout,
			settleDelay: DefaultSettleDelay,
			progress:    os.Stdout,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create fetcher and merger if not injected (e.g., by tests)
	if s.fetcher == nil {
		s.fetcher = newChromeFetcher(s.cfg.timeout, s.cfg.settleDelay)
	}
	if s.merger == nil {
		s.merger = NewMerger(s.cfg.progress)
	}

	return s
}

// Run executes the full pipeline: ensure the download directory, fetch
// every target in order, then merge.
//
// Targets are fetched strictly one at a time; a failed target is logged
// and skipped without aborting the loop, so a partial run is a valid
// outcome. The merge policy follows the number of fetched pages: two or
// more are merged, exactly one is reported as the result with no merge,
// zero reports total failure.
//
// Only fatal conditions return an error: an invalid configuration,
// a download directory that cannot be created, an unreadable directory,
// or a merged output that cannot be written. Context cancellation also
// aborts the run.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	if err := fileutil.EnsureDir(s.config.DownloadDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownloadDir, err)
	}
	fmt.Fprintf(s.cfg.progress, "Download directory ready: %s\n", s.config.DownloadDir)

	result := &Result{}

	for _, target := range s.config.targets() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fmt.Fprintf(s.cfg.progress, "-> Fetching %s\n", target.URL)

		pdf, err := s.fetcher.Fetch(ctx, target.URL)
		if err == nil {
			err = os.WriteFile(target.OutputPath, pdf, 0o600)
		}
		if err != nil {
			fmt.Fprintf(s.cfg.progress, "   failed: %v\n", err)
			result.Failed = append(result.Failed, FetchFailure{URL: target.URL, Err: err})
			continue
		}

		fmt.Fprintf(s.cfg.progress, "   saved %s\n", filepath.Base(target.OutputPath))
		result.Pages = append(result.Pages, target.OutputPath)
	}

	switch len(result.Pages) {
	case 0:
		result.Outcome = OutcomeEmpty
		fmt.Fprintln(s.cfg.progress, "No files were successfully downloaded.")
	case 1:
		result.Outcome = OutcomeSingle
		result.MergedPath = result.Pages[0]
		fmt.Fprintf(s.cfg.progress, "Only one PDF was downloaded. No merging required: %s\n", filepath.Base(result.MergedPath))
	default:
		outPath, err := s.merger.Merge(s.config.DownloadDir, s.config.MergedFilename)
		if err != nil {
			return result, err
		}
		if outPath == "" {
			// Every candidate was rejected during validation
			result.Outcome = OutcomeEmpty
		} else {
			result.Outcome = OutcomeMerged
			result.MergedPath = outPath
		}
	}

	return result, nil
}
