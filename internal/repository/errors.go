package repository

import "errors"

var (
	// ErrBookNotFound reports an unknown ISBN.
	ErrBookNotFound = errors.New("book not found")
	// ErrNoReviews reports a book that has no reviews at all.
	ErrNoReviews = errors.New("book has no reviews")
	// ErrReviewNotFound reports that the given user never reviewed the book.
	ErrReviewNotFound = errors.New("review not found for user")
	// ErrUserExists reports a duplicate username at registration.
	ErrUserExists = errors.New("user already exists")
)
