// Package revision parses MediaWiki export documents into per-revision
// fragments and derives storage paths from them.
package revision

import (
	"errors"
	"fmt"
	"time"

	"github.com/beevik/etree"
)

// ErrAttributeNotFound is returned when a named element is absent from a
// document fragment.
var ErrAttributeNotFound = errors.New("attribute not found")

// TimestampLayout is the fixed layout of revision timestamps in export
// documents.
const TimestampLayout = "2006-01-02T15:04:05Z"

// ExtractAttribute parses the fragment as markup and returns the text of the
// first element named attribute, in document order.
func ExtractAttribute(fragment, attribute string) (string, error) {
	document := etree.NewDocument()
	if err := document.ReadFromString(fragment); err != nil {
		return "", fmt.Errorf("parsing fragment: %w", err)
	}

	element := document.FindElement("//" + attribute)
	if element == nil {
		return "", fmt.Errorf("%w: %s", ErrAttributeNotFound, attribute)
	}

	return element.Text(), nil
}

// ID returns the revision id of a fragment.
func ID(fragment string) (string, error) {
	return ExtractAttribute(fragment, "id")
}

// Timestamp returns the parsed timestamp of a fragment.
func Timestamp(fragment string) (time.Time, error) {
	value, err := ExtractAttribute(fragment, "timestamp")
	if err != nil {
		return time.Time{}, err
	}

	return ParseTimestamp(value)
}

// ParseTimestamp parses a timestamp string of the form
// "2006-01-02T15:04:05Z".
func ParseTimestamp(value string) (time.Time, error) {
	timestamp, err := time.Parse(TimestampLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing revision timestamp %q: %w", value, err)
	}

	return timestamp, nil
}
