// Package fileutil contains filesystem helpers shared by the extraction
// coordinator, the batch processor and the CLI: PDF validation, document
// inspection and output path handling.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var (
	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidFormat indicates the input file is not a PDF.
	ErrInvalidFormat = errors.New("not a valid PDF file")
)

// pdfSignature is the magic prefix every PDF file starts with.
var pdfSignature = []byte("%PDF-")

// ValidatePDF checks that path exists, is a regular file and carries the PDF
// signature. It returns ErrNotFound or ErrInvalidFormat (wrapped) on failure.
func ValidatePDF(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}

	f, err := os.Open(path) //nolint:gosec // G304: user-provided input path is expected
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	header := make([]byte, len(pdfSignature))
	n, err := io.ReadFull(f, header)
	if err != nil || n < len(pdfSignature) || !bytes.HasPrefix(header, pdfSignature) {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, path)
	}
	return nil
}

// PageCount returns the number of pages in the PDF.
func PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read page count of %s: %w", path, err)
	}
	return count, nil
}

// Info describes a PDF document on disk.
type Info struct {
	Path      string    `json:"path"`
	SizeBytes int64     `json:"size_bytes"`
	Pages     int       `json:"pages"`
	SHA256    string    `json:"sha256"`
	Modified  time.Time `json:"modified"`
	Valid     bool      `json:"valid"`
}

// Inspect gathers document info for the given PDF. Validation failures from
// pdfcpu are reported through Info.Valid, not as an error.
func Inspect(path string) (*Info, error) {
	if err := ValidatePDF(path); err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}

	hash, err := SHA256File(path)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Path:      path,
		SizeBytes: stat.Size(),
		SHA256:    hash,
		Modified:  stat.ModTime(),
		Valid:     api.ValidateFile(path, nil) == nil,
	}
	if pages, err := PageCount(path); err == nil {
		info.Pages = pages
	}
	return info, nil
}

// SHA256File returns the hex-encoded SHA-256 digest of the file contents.
func SHA256File(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // G304: user-provided input path is expected
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SafeFilename replaces characters that are unsafe in output filenames.
func SafeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_",
	)
	safe := replacer.Replace(strings.TrimSpace(name))
	if safe == "" {
		safe = "output"
	}
	return safe
}

// FindPDFs returns the PDF files under dir, sorted by path. With recursive
// set, subdirectories are searched as well.
func FindPDFs(dir string, recursive bool) ([]string, error) {
	var files []string

	walkFn := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			files = append(files, path)
		}
		return nil
	}

	if err := filepath.Walk(dir, walkFn); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
