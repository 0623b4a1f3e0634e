package web2pdf

import (
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// Default pipeline settings.
const (
	// DefaultTimeout bounds navigation and PDF export for one target.
	DefaultTimeout = 30 * time.Second

	// DefaultSettleDelay is the pause between the page load event and
	// PDF export, giving late scripts a chance to finish rendering.
	DefaultSettleDelay = time.Second
)

// Config holds the pipeline configuration: the ordered target list and
// where the output goes. Passed explicitly into New; the library keeps
// no package-level state.
type Config struct {
	Targets        []string // URLs, fetched in order
	DownloadDir    string   // directory for page PDFs and the merged file
	MergedFilename string   // name of the merged output inside DownloadDir
}

// Validate checks that required fields are present.
// Targets may be empty; an empty run is valid and produces nothing.
func (c Config) Validate() error {
	if c.DownloadDir == "" {
		return ErrNoDownloadDir
	}
	if c.MergedFilename == "" {
		return ErrNoMergedFilename
	}
	return nil
}

// Target is one configured URL with its derived output path.
// Immutable once built; position in the target list fixes the page index.
type Target struct {
	URL        string
	OutputPath string
}

// targets derives the Target list from the configured URLs.
// Page indexes are 1-based.
func (c Config) targets() []Target {
	list := make([]Target, len(c.Targets))
	for i, url := range c.Targets {
		list[i] = Target{
			URL:        url,
			OutputPath: filepath.Join(c.DownloadDir, pageFilename(i+1)),
		}
	}
	return list
}

// pageFilename returns the output filename for the 1-based page index.
func pageFilename(index int) string {
	return fmt.Sprintf("page_%d.pdf", index)
}

// Outcome describes how a run ended.
type Outcome int

const (
	// OutcomeEmpty means no page was fetched; nothing was produced.
	OutcomeEmpty Outcome = iota

	// OutcomeSingle means exactly one page was fetched; the merge was
	// skipped and that page is the final artifact.
	OutcomeSingle

	// OutcomeMerged means two or more pages were concatenated into the
	// merged output file.
	OutcomeMerged
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeSingle:
		return "single"
	case OutcomeMerged:
		return "merged"
	default:
		return "empty"
	}
}

// FetchFailure records one target that could not be rendered.
type FetchFailure struct {
	URL string
	Err error
}

// Result reports what a run produced. Pages lists successfully written
// page PDFs in fetch order; MergedPath is the final artifact (empty for
// OutcomeEmpty).
type Result struct {
	Pages      []string
	Failed     []FetchFailure
	Outcome    Outcome
	MergedPath string
}

// Option configures a Service.
type Option func(*Service)

// settings holds internal configuration for Service.
type settings struct {
	timeout     time.Duration
	settleDelay time.Duration
	progress    io.Writer
}

// WithTimeout sets the per-target fetch timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("web2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithSettleDelay sets the pause between page load and PDF export.
// Zero disables the pause. Panics if d < 0.
func WithSettleDelay(d time.Duration) Option {
	if d < 0 {
		panic("web2pdf: WithSettleDelay duration must not be negative")
	}
	return func(s *Service) {
		s.cfg.settleDelay = d
	}
}

// WithProgress directs human-readable progress output to w.
// The default is os.Stdout. Panics if w is nil.
func WithProgress(w io.Writer) Option {
	if w == nil {
		panic("web2pdf: WithProgress writer must not be nil")
	}
	return func(s *Service) {
		s.cfg.progress = w
	}
}
