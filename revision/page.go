package revision

import (
	"errors"
	"fmt"
)

// PageNotFoundError reports that an export document holds no page element,
// meaning the wiki has no page under the requested title.
type PageNotFoundError struct {
	Page string
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("page %q does not exist", e.Page)
}

// ValidatePage checks that the export document contains a page element.
func ValidatePage(page, document string) error {
	if _, err := ExtractAttribute(document, "page"); err != nil {
		if errors.Is(err, ErrAttributeNotFound) {
			return &PageNotFoundError{Page: page}
		}

		return err
	}

	return nil
}
