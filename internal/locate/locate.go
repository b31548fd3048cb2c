// Package locate discovers project files under a directory tree by filename
// extension.
package locate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Each walks root recursively and invokes fn for every regular file whose
// name ends with ext (case-sensitive). Traversal is streaming: fn sees each
// path as soon as the walk reaches it, in filesystem order. Returning an
// error from fn aborts the walk. The root must exist and be a directory;
// anything else is an error before any file is visited.
func Each(root, ext string, skipDirs []string, fn func(path string) error) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("search root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("search root %s is not a directory", root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// One unreadable subtree must not abort the batch; only the
			// root itself is fatal.
			return nil
		}
		if d.IsDir() {
			base := filepath.Base(path)
			for _, skip := range skipDirs {
				if base == skip && path != root {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		return fn(path)
	})
}

// Files collects every matching path under root and returns them sorted, so
// batch runs process files in a stable order regardless of filesystem
// traversal quirks.
func Files(root, ext string, skipDirs []string) ([]string, error) {
	var files []string
	err := Each(root, ext, skipDirs, func(path string) error {
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
