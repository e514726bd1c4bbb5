package domain

// Book is the catalog record keyed by ISBN. Reviews map usernames to
// review text; at most one entry per username.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// Clone returns a copy of the book with its own reviews map, so callers
// cannot mutate repository state through a returned snapshot.
func (b *Book) Clone() *Book {
	reviews := make(map[string]string, len(b.Reviews))
	for user, text := range b.Reviews {
		reviews[user] = text
	}
	return &Book{
		ISBN:    b.ISBN,
		Title:   b.Title,
		Author:  b.Author,
		Reviews: reviews,
	}
}

// UserReview pairs a book title with one user's review text, used when
// listing everything a single user has reviewed.
type UserReview struct {
	Title  string `json:"title"`
	Review string `json:"review"`
}

// CatalogStats aggregates one pass over the catalog.
type CatalogStats struct {
	TotalBooks       int `json:"total_books"`
	DistinctAuthors  int `json:"distinct_authors"`
	BooksWithReviews int `json:"books_with_reviews"`
}
