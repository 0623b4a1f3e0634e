package web2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Fetch errors. Each marks one URL as failed; the driver loop
	// recovers and continues with remaining targets.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFExport      = errors.New("PDF export failed")

	// Merge errors. ErrMergeInput is recovered per file; the others
	// are fatal for the run.
	ErrMergeInput  = errors.New("merge input rejected")
	ErrMergeWrite  = errors.New("failed to write merged output")
	ErrDirScan     = errors.New("failed to scan download directory")
	ErrDownloadDir = errors.New("failed to create download directory")

	// Configuration validation errors.
	ErrNoMergedFilename = errors.New("merged filename cannot be empty")
	ErrNoDownloadDir    = errors.New("download directory cannot be empty")
)
