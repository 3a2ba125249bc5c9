package revision

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// BuildPath derives the storage path of a revision fragment:
// <root>/<page>/<year>/<zero-padded month>/<revision id>.xml.
// The path is a pure function of the page title and the fragment's id and
// timestamp.
func BuildPath(root, page, fragment string) (string, error) {
	id, err := ID(fragment)
	if err != nil {
		return "", err
	}

	timestamp, err := Timestamp(fragment)
	if err != nil {
		return "", err
	}

	year := strconv.Itoa(timestamp.Year())
	month := fmt.Sprintf("%02d", int(timestamp.Month()))

	return filepath.Join(root, page, year, month, id+".xml"), nil
}
