package publish

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/el-go/el/pkg/render"
)

// Dir renders every page in the site and writes it under dir, creating
// parent directories as needed. "/" is written as index.html and
// extension-less paths as <path>/index.html.
func Dir(site *Site, dir string) error {
	logger := slog.Default().With("component", "publish")

	for _, path := range site.Paths() {
		doc, _ := site.Page(path)

		html, err := render.DocumentString(doc)
		if err != nil {
			return fmt.Errorf("render %s: %w", path, err)
		}

		target := filepath.Join(dir, filepath.FromSlash(objectPath(path)))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", path, err)
		}
		if err := os.WriteFile(target, []byte(html), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		logger.Info("wrote page", "path", path, "file", target, "bytes", len(html))
	}

	return nil
}
