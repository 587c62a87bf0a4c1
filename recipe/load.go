// SPDX-License-Identifier: MIT

package recipe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/prodnet/internal/ctxlog"
)

// Supported file extensions.
const (
	ExtHCL  = ".hcl"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// LoadFile reads path and decodes it with the parser matching its extension.
func LoadFile(ctx context.Context, path string, vars map[string]string) (*Book, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading recipe", "path", path, "vars", len(vars))

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe %s: %w", path, err)
	}

	var book *Book
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ExtHCL:
		book, err = ParseHCL(src, path, vars)
	case ExtYAML, ExtYML:
		book, err = ParseYAML(src, path, vars)
	default:
		return nil, fmt.Errorf("%s: extension %q: %w", path, ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded recipe", "path", path, "resources", len(book.Resources), "targets", len(book.Targets))

	return book, nil
}
