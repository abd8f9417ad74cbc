package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/custodia-labs/sercha-site/internal/core/domain"
	"github.com/custodia-labs/sercha-site/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-site/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.ContentLoader = (*Loader)(nil)

// Loader reads front matter content files from a directory tree.
type Loader struct {
	now func() time.Time
}

// New creates a filesystem loader.
func New() *Loader {
	return &Loader{now: time.Now}
}

// Load walks src.Root and parses every file with an accepted extension.
// Hidden files and directories are skipped. Drafts are counted and dropped.
func (l *Loader) Load(ctx context.Context, src domain.SourceConfig) (*domain.LoadResult, error) {
	if !src.Type.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedType, src.Type)
	}

	info, err := os.Stat(src.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, src.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrSourceUnavailable, src.Root)
	}

	logger.Debug("loading %s content from %s", src.Type, src.Root)

	result := &domain.LoadResult{Source: src}
	loadedAt := l.now()

	walkErr := filepath.WalkDir(src.Root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == src.Root {
				return err
			}
			l.warn(result, path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, _ := filepath.Rel(src.Root, path)
		if rel != "." && isHidden(rel) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !src.AcceptsExtension(filepath.Ext(path)) {
			return nil
		}

		file, err := l.parseFile(src, path, loadedAt)
		if err != nil {
			l.warn(result, path, err)
			return nil
		}
		if file.Meta.Common().Draft {
			logger.Debug("skipping draft %s", path)
			result.Drafts++
			return nil
		}
		result.Files = append(result.Files, *file)
		return nil
	})

	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			return nil, walkErr
		}
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, src.Root, walkErr)
	}

	logger.Debug("loaded %d %s files (%d drafts, %d warnings)",
		len(result.Files), src.Type, result.Drafts, len(result.Warnings))
	return result, nil
}

// parseFile reads one file and coerces its header into typed metadata.
func (l *Loader) parseFile(src domain.SourceConfig, path string, loadedAt time.Time) (*domain.ParsedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	h := header{}
	body, err := frontmatter.Parse(bytes.NewReader(data), &h)
	if err != nil {
		return nil, fmt.Errorf("%w: front matter: %v", domain.ErrParse, err)
	}

	meta, err := h.toMetadata(src.Type)
	if err != nil {
		return nil, err
	}

	return &domain.ParsedFile{
		Slug:     SlugFromPath(src.Root, path),
		Path:     path,
		Meta:     meta,
		Body:     string(body),
		ModTime:  info.ModTime(),
		LoadedAt: loadedAt,
	}, nil
}

func (l *Loader) warn(result *domain.LoadResult, path string, err error) {
	logger.Warn("skipping %s: %v", path, err)
	result.Warnings = append(result.Warnings, domain.LoadWarning{Path: path, Err: err})
}
