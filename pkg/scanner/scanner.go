// Package scanner finds source documents on disk and reads them for the
// extractors, enforcing the size limit before any content is scanned.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kataras/color-extractor/pkg/config"
	"github.com/kataras/color-extractor/pkg/extractor"
)

// ErrTooLarge reports a file over the configured max_file_size.
var ErrTooLarge = errors.New("file exceeds max file size")

// Document is one file ready for extraction.
type Document struct {
	Path     string
	FileType extractor.FileType
	Content  string
}

// SkipError records why a file was not read. Skips are not fatal.
type SkipError struct {
	Path string
	Err  error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skip %s: %v", e.Path, e.Err)
}

func (e *SkipError) Unwrap() error {
	return e.Err
}

// ReadResult holds the documents read, in input order, and the files that
// were skipped.
type ReadResult struct {
	Documents []Document
	Skipped   []error // non-fatal per-file failures, *SkipError values
}

// DetectFileType maps the extension of path through extensions. Unknown
// extensions give extractor.FileTypeUnknown.
func DetectFileType(path string, extensions map[string]extractor.FileType) extractor.FileType {
	ext := strings.ToLower(filepath.Ext(path))
	if ft, ok := extensions[ext]; ok {
		return ft
	}
	return extractor.FileTypeUnknown
}

// CollectFiles expands roots into the list of files to scan. Directories are
// walked recursively, skipping any directory named in cfg.ExcludeDirs and any
// file whose extension is not in cfg.Extensions. Files named explicitly are
// always kept. Each path appears once, in walk order.
func CollectFiles(roots []string, cfg *config.Config) ([]string, error) {
	excluded := make(map[string]bool, len(cfg.ExcludeDirs))
	for _, d := range cfg.ExcludeDirs {
		excluded[d] = true
	}

	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && excluded[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if DetectFileType(path, cfg.Extensions) != extractor.FileTypeUnknown {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	return files, nil
}

// ReadDocuments reads paths with at most cfg.Concurrency files in flight.
// Files larger than cfg.MaxFileSize and files that cannot be read are
// recorded in Skipped. The only error returned is ctx's.
func ReadDocuments(ctx context.Context, paths []string, cfg *config.Config) (*ReadResult, error) {
	docs := make([]*Document, len(paths))
	skips := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Concurrency, 1))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := readDocument(path, cfg)
			if err != nil {
				skips[i] = &SkipError{Path: path, Err: err}
				return nil
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &ReadResult{Documents: make([]Document, 0, len(paths))}
	for i := range paths {
		if docs[i] != nil {
			result.Documents = append(result.Documents, *docs[i])
		}
		if skips[i] != nil {
			result.Skipped = append(result.Skipped, skips[i])
		}
	}
	return result, nil
}

func readDocument(path string, cfg *config.Config) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("is a directory")
	}
	if info.Size() > cfg.MaxFileSize {
		return nil, fmt.Errorf("%w (%d > %d bytes)", ErrTooLarge, info.Size(), cfg.MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &Document{
		Path:     path,
		FileType: DetectFileType(path, cfg.Extensions),
		Content:  string(data),
	}, nil
}
