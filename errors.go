package bookshelf

import (
	"errors"
	"fmt"
)

// ErrInvalidBook is returned when the database rejects a book that breaks a column constraint,
// e.g. a rating outside of 0-10.
var ErrInvalidBook = errors.New("invalid book")

func newErrNotFound(id int64) ErrNotFound {
	return ErrNotFound{
		ID: id,
	}
}

// ErrNotFound is returned when a book with the given id does not exist.
type ErrNotFound struct {
	ID int64
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("book %d does not exist", e.ID)
}

func newErrDuplicateTitle(title string) ErrDuplicateTitle {
	return ErrDuplicateTitle{
		Title: title,
	}
}

// ErrDuplicateTitle is returned when a book with the same title is already in the store.
type ErrDuplicateTitle struct {
	Title string
}

func (e ErrDuplicateTitle) Error() string {
	return fmt.Sprintf("a book titled %q already exists", e.Title)
}
