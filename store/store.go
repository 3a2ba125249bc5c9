// Package store persists revision fragments in a hierarchical file tree and
// counts what has been stored.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/VLeins/oii-fsds-wikipedia/revision"
	log "github.com/sirupsen/logrus"
)

// Store writes revision fragments under a root directory.
type Store struct {
	root string
}

// New creates a Store rooted at root.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the root directory of the Store.
func (s *Store) Root() string {
	return s.root
}

// PagePath returns the subdirectory holding the revisions of a page.
func (s *Store) PagePath(page string) string {
	return filepath.Join(s.root, page)
}

// SaveRevision writes a revision fragment to its derived path, creating
// missing parent directories. A file already present at the path is left
// untouched and written reports false. The returned path is the storage
// location of the revision whether or not it was written.
func (s *Store) SaveRevision(page, fragment string) (path string, written bool, err error) {
	path, err = revision.BuildPath(s.root, page, fragment)
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(path); err == nil {
		log.Debugf("Revision already stored at %v, skipping\n", path)

		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("checking %q: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("creating directory for %q: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(fragment), 0o644); err != nil {
		return "", false, fmt.Errorf("writing %q: %w", path, err)
	}

	return path, true, nil
}
