package web2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// pageFetcher abstracts URL to PDF rendering to enable testing without
// a browser.
type pageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Compile-time interface check
var _ pageFetcher = (*chromeFetcher)(nil)

// PDF page dimensions in inches (A4 format).
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// chromeFetcher renders pages with headless Chrome via go-rod.
// Each Fetch launches a fresh browser and tears it down afterwards, so
// every target gets an isolated session with no carried-over state.
// Rod automatically downloads Chromium on first run if not found.
type chromeFetcher struct {
	timeout     time.Duration
	settleDelay time.Duration
}

// newChromeFetcher creates a chromeFetcher with the given timeout and
// settle delay.
func newChromeFetcher(timeout, settleDelay time.Duration) *chromeFetcher {
	return &chromeFetcher{timeout: timeout, settleDelay: settleDelay}
}

// connect launches and connects to an isolated browser instance.
func (f *chromeFetcher) connect() (*rod.Browser, error) {
	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return browser, nil
}

// Fetch navigates to url in a fresh headless Chrome session, waits for
// the load event plus the settle delay, and returns the rendered page
// as PDF bytes (A4). Returns explicit errors instead of panicking when
// browser operations fail.
func (f *chromeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	// Check context before launching a browser
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := f.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := f.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Give late scripts a chance to finish before export
	if err := settle(ctx, f.settleDelay); err != nil {
		return nil, err
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		PrintBackground: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFExport, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFExport, err)
	}

	return pdfBuf, nil
}

// settle pauses for d, aborting early when ctx is cancelled.
func settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
