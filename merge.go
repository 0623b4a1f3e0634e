package web2pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
)

// mergeBackend abstracts PDF validation and concatenation to enable
// testing without real PDF fixtures.
type mergeBackend interface {
	Validate(file string) error
	Merge(inFiles []string, outFile string) error
}

// Compile-time interface check
var _ mergeBackend = (*pdfcpuBackend)(nil)

// pdfcpuBackend implements mergeBackend using pdfcpu.
type pdfcpuBackend struct{}

func (pdfcpuBackend) Validate(file string) error {
	return pdfapi.ValidateFile(file, nil)
}

func (pdfcpuBackend) Merge(inFiles []string, outFile string) error {
	return pdfapi.MergeCreateFile(inFiles, outFile, false, nil)
}

// pageFilePattern matches page PDFs written by the fetch loop and
// captures their 1-based index.
var pageFilePattern = regexp.MustCompile(`^page_(\d+)\.pdf$`)

// Merger concatenates page PDFs from a directory into one document.
type Merger struct {
	backend  mergeBackend
	progress io.Writer
}

// NewMerger creates a Merger backed by pdfcpu, reporting progress to w.
func NewMerger(w io.Writer) *Merger {
	return &Merger{backend: pdfcpuBackend{}, progress: w}
}

// Merge discovers every PDF in dir (non-recursive, excluding
// outputFilename itself), validates each one, and concatenates the
// valid files into dir/outputFilename in page-index order. Files that
// fail validation are skipped with a logged error; a partial merge is
// an acceptable outcome. Returns the output path, or "" when there was
// nothing to merge.
//
// A pre-existing output file is overwritten.
func (m *Merger) Merge(dir, outputFilename string) (string, error) {
	inputs, err := collectInputs(dir, outputFilename)
	if err != nil {
		return "", err
	}
	if len(inputs) == 0 {
		fmt.Fprintln(m.progress, "No PDFs found, nothing to merge.")
		return "", nil
	}

	fmt.Fprintf(m.progress, "Merging %d files into %s...\n", len(inputs), outputFilename)

	// Validate each candidate up front so one corrupt file cannot sink
	// the whole merge.
	valid := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if err := m.backend.Validate(in); err != nil {
			fmt.Fprintf(m.progress, "   skipping %s: %v\n", filepath.Base(in), fmt.Errorf("%w: %v", ErrMergeInput, err))
			continue
		}
		fmt.Fprintf(m.progress, "   adding %s\n", filepath.Base(in))
		valid = append(valid, in)
	}
	if len(valid) == 0 {
		fmt.Fprintln(m.progress, "No valid PDFs remain, nothing to merge.")
		return "", nil
	}

	outPath := filepath.Join(dir, outputFilename)
	if err := m.backend.Merge(valid, outPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMergeWrite, err)
	}

	fmt.Fprintf(m.progress, "Merging completed: %s\n", outPath)
	return outPath, nil
}

// mergeCandidate is one discovered PDF with its sort keys.
type mergeCandidate struct {
	path    string
	index   int
	indexed bool
	modTime time.Time
}

// collectInputs scans dir (non-recursive) for PDF files, excluding
// exclude, and returns their paths in merge order: page-indexed files
// first by ascending index, then everything else by modification time.
//
// The explicit page index is the authoritative order. Filesystem
// creation time is not portably available and mtime can be disturbed,
// so the index written into the filename wins.
func collectInputs(dir, exclude string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirScan, err)
	}

	var candidates []mergeCandidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		// Never feed a previous merge result back into the merge
		if name == exclude {
			continue
		}

		c := mergeCandidate{path: filepath.Join(dir, name)}
		if match := pageFilePattern.FindStringSubmatch(name); match != nil {
			index, convErr := strconv.Atoi(match[1])
			if convErr == nil {
				c.index = index
				c.indexed = true
			}
		}
		if !c.indexed {
			info, infoErr := entry.Info()
			if infoErr != nil {
				return nil, fmt.Errorf("%w: %v", ErrDirScan, infoErr)
			}
			c.modTime = info.ModTime()
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		switch {
		case a.indexed && b.indexed:
			return a.index < b.index
		case a.indexed != b.indexed:
			return a.indexed
		default:
			if !a.modTime.Equal(b.modTime) {
				return a.modTime.Before(b.modTime)
			}
			return a.path < b.path
		}
	})

	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.path
	}
	return paths, nil
}
