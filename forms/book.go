package forms

import (
	"strconv"
	"strings"

	bookshelf "github.com/Suiper34/virtual-bookshelf-web"
)

// AddBook is the form used to add a new book.
type AddBook struct {
	Title  string `form:"title" validate:"required,max=250"`
	Author string `form:"author" validate:"required,max=250"`
	Rating string `form:"rating" validate:"required,rating_number,rating_range"`
}

// Validate trims the submitted values and checks every rule.
// The form is valid if the returned Errors is empty.
func (f *AddBook) Validate() Errors {
	f.Title = strings.TrimSpace(f.Title)
	f.Author = strings.TrimSpace(f.Author)
	f.Rating = strings.TrimSpace(f.Rating)
	return check(f)
}

// Book converts a validated form into a book.
func (f AddBook) Book() bookshelf.Book {
	rating, _ := parseRating(f.Rating)
	return bookshelf.Book{
		Title:  f.Title,
		Author: f.Author,
		Rating: rating,
	}
}

// EditRating is the form used to change the rating of an existing book.
type EditRating struct {
	Rating string `form:"rating" validate:"required,rating_number,rating_range"`
}

// NewEditRating returns a form pre-populated with the book's current rating.
func NewEditRating(b bookshelf.Book) EditRating {
	return EditRating{
		Rating: strconv.FormatFloat(b.Rating, 'f', -1, 64),
	}
}

func (f *EditRating) Validate() Errors {
	f.Rating = strings.TrimSpace(f.Rating)
	return check(f)
}

// Value returns the rating of a validated form.
func (f EditRating) Value() float64 {
	rating, _ := parseRating(f.Rating)
	return rating
}
