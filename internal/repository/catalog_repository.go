package repository

import (
	"sync"

	"github.com/Malex1718/expressBookReviews/internal/domain"
)

// CatalogRepository defines access to the in-memory book catalog.
// Books are seeded once at startup and never added or removed; only each
// book's reviews map is mutated.
type CatalogRepository interface {
	All() map[string]*domain.Book
	GetByISBN(isbn string) (*domain.Book, bool)
	SetReview(isbn, username, text string) (updated bool, ok bool)
	DeleteReview(isbn, username string) error
	ReviewsByUser(username string) map[string]domain.UserReview
}

// catalogRepository guards the book map and every reviews map with one
// RWMutex. The host dispatches requests in parallel, so the single-threaded
// behavior of the catalog has to be enforced here.
type catalogRepository struct {
	mu    sync.RWMutex
	books map[string]*domain.Book
}

// NewCatalogRepository seeds a catalog from the given books, keyed by ISBN.
func NewCatalogRepository(seed []domain.Book) CatalogRepository {
	books := make(map[string]*domain.Book, len(seed))
	for i := range seed {
		book := seed[i]
		if book.Reviews == nil {
			book.Reviews = make(map[string]string)
		}
		books[book.ISBN] = &book
	}
	return &catalogRepository{books: books}
}

// All returns a snapshot of the catalog. Books are cloned so callers can
// iterate and serialize without holding the lock.
func (r *catalogRepository) All() map[string]*domain.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]*domain.Book, len(r.books))
	for isbn, book := range r.books {
		snapshot[isbn] = book.Clone()
	}
	return snapshot
}

func (r *catalogRepository) GetByISBN(isbn string) (*domain.Book, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[isbn]
	if !ok {
		return nil, false
	}
	return book.Clone(), true
}

// SetReview stores username's review on the book. updated reports whether
// a prior review by the same user was overwritten; ok is false when the
// ISBN is unknown.
func (r *catalogRepository) SetReview(isbn, username, text string) (updated bool, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, exists := r.books[isbn]
	if !exists {
		return false, false
	}
	_, updated = book.Reviews[username]
	book.Reviews[username] = text
	return updated, true
}

// DeleteReview removes exactly username's entry, leaving other reviews
// untouched. The sentinel errors distinguish the three failure cases.
func (r *catalogRepository) DeleteReview(isbn, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, exists := r.books[isbn]
	if !exists {
		return ErrBookNotFound
	}
	if len(book.Reviews) == 0 {
		return ErrNoReviews
	}
	if _, has := book.Reviews[username]; !has {
		return ErrReviewNotFound
	}
	delete(book.Reviews, username)
	return nil
}

// ReviewsByUser collects every book where username left a review.
func (r *catalogRepository) ReviewsByUser(username string) map[string]domain.UserReview {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make(map[string]domain.UserReview)
	for isbn, book := range r.books {
		if text, has := book.Reviews[username]; has {
			found[isbn] = domain.UserReview{Title: book.Title, Review: text}
		}
	}
	return found
}
