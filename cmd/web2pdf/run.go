package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	web2pdf "github.com/alnah/go-web2pdf"
	"github.com/alnah/go-web2pdf/internal/fileutil"
)

// run executes one full pipeline run and reports the outcome on out.
// Every failure, fatal ones included, is logged there; nothing changes
// the process exit code.
func run(flags *cliFlags, out io.Writer) {
	cfg, err := loadRunConfig(flags.config)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Targets: %d, download dir: %s, merged file: %s\n",
			len(cfg.Targets), cfg.DownloadDir, cfg.MergedFilename)
	}
	for _, target := range cfg.Targets {
		if !fileutil.IsURL(target) {
			fmt.Fprintf(out, "Warning: target does not look like a URL: %s\n", target)
		}
	}

	opts, err := serviceOptions(cfg, out)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	svc := web2pdf.New(web2pdf.Config{
		Targets:        cfg.Targets,
		DownloadDir:    cfg.DownloadDir,
		MergedFilename: cfg.MergedFilename,
	}, opts...)

	result, err := svc.Run(context.Background())
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	printSummary(out, result)
}

// loadRunConfig returns the built-in defaults, or the config file
// merged over them when one was requested.
func loadRunConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(nameOrPath)
}

// serviceOptions translates config duration strings into service options.
func serviceOptions(cfg *Config, out io.Writer) ([]web2pdf.Option, error) {
	opts := []web2pdf.Option{web2pdf.WithProgress(out)}

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid timeout %q", cfg.Timeout)
		}
		opts = append(opts, web2pdf.WithTimeout(d))
	}
	if cfg.SettleDelay != "" {
		d, err := time.ParseDuration(cfg.SettleDelay)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid settle delay %q", cfg.SettleDelay)
		}
		opts = append(opts, web2pdf.WithSettleDelay(d))
	}

	return opts, nil
}

// printSummary writes the final human-readable summary line.
func printSummary(out io.Writer, result *web2pdf.Result) {
	switch result.Outcome {
	case web2pdf.OutcomeMerged:
		fmt.Fprintf(out, "Done: %d pages merged into %s", len(result.Pages), result.MergedPath)
	case web2pdf.OutcomeSingle:
		fmt.Fprintf(out, "Done: single page saved as %s", result.MergedPath)
	default:
		fmt.Fprint(out, "Done: nothing was produced")
	}
	if n := len(result.Failed); n > 0 {
		fmt.Fprintf(out, " (%d targets failed)", n)
	}
	fmt.Fprintln(out)
}
