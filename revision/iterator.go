package revision

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Iterator walks the <revision> elements of an export document, in document
// order. It is forward-only: once Next has returned io.EOF it stays drained.
type Iterator struct {
	document string
	decoder  *xml.Decoder
	done     bool
}

// NewIterator creates an Iterator over an export document.
func NewIterator(document string) *Iterator {
	return &Iterator{
		document: document,
		decoder:  xml.NewDecoder(strings.NewReader(document)),
	}
}

// Next returns the literal source text of the next revision element, or
// io.EOF when the document holds no further revisions. The fragment is not
// validated; a fragment missing required elements fails downstream when its
// attributes are extracted.
func (it *Iterator) Next() (string, error) {
	if it.done {
		return "", io.EOF
	}

	for {
		// Token boundaries line up, so the offset before reading a
		// token is the offset of its first source byte.
		begin := it.decoder.InputOffset()

		token, err := it.decoder.Token()
		if err == io.EOF {
			it.done = true

			return "", io.EOF
		}

		if err != nil {
			return "", fmt.Errorf("scanning export document: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "revision" {
			continue
		}

		if err := it.decoder.Skip(); err != nil {
			return "", fmt.Errorf("scanning export document: %w", err)
		}

		return it.document[begin:it.decoder.InputOffset()], nil
	}
}
