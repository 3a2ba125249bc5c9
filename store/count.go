package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Count recursively counts the entries under root. Files always count as
// one; directories count as one only when countDirs is set, and their
// contents are counted either way. Fails when root does not exist.
func Count(root string, countDirs bool) (int, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, fmt.Errorf("reading %q: %w", root, err)
	}

	count := 0

	for _, entry := range entries {
		if !entry.IsDir() {
			count++

			continue
		}

		if countDirs {
			count++
		}

		subCount, err := Count(filepath.Join(root, entry.Name()), countDirs)
		if err != nil {
			return 0, err
		}

		count += subCount
	}

	return count, nil
}
