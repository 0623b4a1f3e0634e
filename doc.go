// Package web2pdf renders web pages to PDF using headless Chrome and
// concatenates the results into a single report.
//
// # Quick Start
//
// Create a service with a list of targets and run the pipeline:
//
//	svc := web2pdf.New(web2pdf.Config{
//	    Targets:        []string{"https://example.com/", "https://example.org/"},
//	    DownloadDir:    "downloaded_pdfs",
//	    MergedFilename: "combined_report.pdf",
//	})
//
//	result, err := svc.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.MergedPath)
//
// # Pipeline
//
// The run proceeds in two sequential stages:
//
//  1. Fetch: each target URL is opened in an isolated headless Chrome
//     session, given a short settle delay after the load event, and
//     exported to <dir>/page_<i>.pdf (A4) via go-rod. Targets are
//     fetched strictly one at a time, in configured order. A failed
//     target is logged and skipped; the loop continues.
//  2. Merge: every page PDF in the download directory is validated and
//     concatenated with pdfcpu into <dir>/<MergedFilename>, ordered by
//     page index. With exactly one fetched page the merge is skipped
//     and that page is the result; with none the run reports failure.
//
// Only directory creation and merged-output write errors are fatal;
// everything else is recovered per target or per file.
//
// # Browser Requirements
//
// PDF rendering requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/).
//
// For containers and CI environments, set CI=true to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome
// binary.
package web2pdf
