package bookshelf

import (
	"github.com/Suiper34/virtual-bookshelf-web/db"
)

const (
	MaxTitleLength  = 250
	MaxAuthorLength = 250
	MinRating       = 0.0
	MaxRating       = 10.0
)

// Book is a single entry in the catalogue.
type Book struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
}

func booksOf(rows []db.Book) (books []Book) {
	books = make([]Book, len(rows))
	for i, r := range rows {
		books[i] = Book(r)
	}
	return books
}
