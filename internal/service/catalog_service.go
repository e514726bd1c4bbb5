package service

import (
	"strings"

	"github.com/Malex1718/expressBookReviews/internal/domain"
	"github.com/Malex1718/expressBookReviews/internal/repository"
	apperrors "github.com/Malex1718/expressBookReviews/pkg/util"
)

// CatalogService provides read-only lookups and filters over the catalog.
//
// Author and title matching is case-insensitive substring throughout; the
// service used to carry a second, exact-match variant of the author lookup
// and the substring policy is the one that was kept.
type CatalogService struct {
	catalog repository.CatalogRepository
}

// SearchFilter describes the optional /search constraints. Absent fields
// impose no constraint; provided fields intersect (AND semantics).
type SearchFilter struct {
	Author     string
	Title      string
	HasReviews bool
}

// NewCatalogService constructs the service.
func NewCatalogService(catalog repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListAll returns the full catalog snapshot.
func (s *CatalogService) ListAll() map[string]*domain.Book {
	return s.catalog.All()
}

// GetByISBN returns the book or a not-found error.
func (s *CatalogService) GetByISBN(isbn string) (*domain.Book, error) {
	book, ok := s.catalog.GetByISBN(isbn)
	if !ok {
		return nil, apperrors.NewNotFound("book", map[string]any{"isbn": isbn})
	}
	return book, nil
}

// GetByAuthor returns every book whose author contains the query,
// case-insensitively. An empty result is not an error; the handler decides
// whether that is a 404.
func (s *CatalogService) GetByAuthor(author string) map[string]*domain.Book {
	return s.filter(func(b *domain.Book) bool {
		return containsFold(b.Author, author)
	})
}

// GetByTitle matches titles with the same policy as GetByAuthor.
func (s *CatalogService) GetByTitle(title string) map[string]*domain.Book {
	return s.filter(func(b *domain.Book) bool {
		return containsFold(b.Title, title)
	})
}

// GetReviews returns the book's review map, empty when nobody has
// reviewed it yet.
func (s *CatalogService) GetReviews(isbn string) (map[string]string, error) {
	book, ok := s.catalog.GetByISBN(isbn)
	if !ok {
		return nil, apperrors.NewNotFound("book", map[string]any{"isbn": isbn})
	}
	return book.Reviews, nil
}

// Stats aggregates the catalog in one pass.
func (s *CatalogService) Stats() domain.CatalogStats {
	books := s.catalog.All()

	authors := make(map[string]struct{})
	withReviews := 0
	for _, book := range books {
		authors[book.Author] = struct{}{}
		if len(book.Reviews) > 0 {
			withReviews++
		}
	}
	return domain.CatalogStats{
		TotalBooks:       len(books),
		DistinctAuthors:  len(authors),
		BooksWithReviews: withReviews,
	}
}

// Search intersects all provided filters.
func (s *CatalogService) Search(filter SearchFilter) map[string]*domain.Book {
	return s.filter(func(b *domain.Book) bool {
		if filter.Author != "" && !containsFold(b.Author, filter.Author) {
			return false
		}
		if filter.Title != "" && !containsFold(b.Title, filter.Title) {
			return false
		}
		if filter.HasReviews && len(b.Reviews) == 0 {
			return false
		}
		return true
	})
}

func (s *CatalogService) filter(match func(*domain.Book) bool) map[string]*domain.Book {
	found := make(map[string]*domain.Book)
	for isbn, book := range s.catalog.All() {
		if match(book) {
			found[isbn] = book
		}
	}
	return found
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
