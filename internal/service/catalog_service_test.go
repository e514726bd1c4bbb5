package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Malex1718/expressBookReviews/internal/domain"
	"github.com/Malex1718/expressBookReviews/internal/repository"
)

func newTestCatalog() (*CatalogService, repository.CatalogRepository) {
	repo := repository.NewCatalogRepository([]domain.Book{
		{ISBN: "1", Author: "Chinua Achebe", Title: "Things Fall Apart"},
		{ISBN: "2", Author: "Hans Christian Andersen", Title: "Fairy tales"},
		{ISBN: "3", Author: "Chinua Achebe", Title: "No Longer at Ease"},
	})
	return NewCatalogService(repo), repo
}

func TestGetByISBN(t *testing.T) {
	svc, _ := newTestCatalog()

	book, err := svc.GetByISBN("1")
	require.NoError(t, err)
	assert.Equal(t, "Things Fall Apart", book.Title)
	assert.Equal(t, "Chinua Achebe", book.Author)

	_, err = svc.GetByISBN("99")
	assert.Equal(t, "NOT_FOUND", errorCode(t, err))
}

func TestGetByAuthor_CaseInsensitive(t *testing.T) {
	svc, _ := newTestCatalog()

	lower := svc.GetByAuthor("chinua achebe")
	exact := svc.GetByAuthor("Chinua Achebe")

	assert.Equal(t, exact, lower)
	assert.Len(t, lower, 2)
}

func TestGetByAuthor_Substring(t *testing.T) {
	svc, _ := newTestCatalog()

	assert.Len(t, svc.GetByAuthor("achebe"), 2)
	assert.Len(t, svc.GetByAuthor("andersen"), 1)
	assert.Empty(t, svc.GetByAuthor("austen"))
}

func TestGetByTitle_Substring(t *testing.T) {
	svc, _ := newTestCatalog()

	books := svc.GetByTitle("fall")
	require.Len(t, books, 1)
	assert.Equal(t, "Things Fall Apart", books["1"].Title)

	assert.Empty(t, svc.GetByTitle("moby dick"))
}

func TestGetReviews(t *testing.T) {
	svc, repo := newTestCatalog()

	reviews, err := svc.GetReviews("1")
	require.NoError(t, err)
	assert.Empty(t, reviews)

	repo.SetReview("1", "alice", "Great book")
	reviews, err = svc.GetReviews("1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "Great book"}, reviews)

	_, err = svc.GetReviews("99")
	assert.Equal(t, "NOT_FOUND", errorCode(t, err))
}

func TestStats(t *testing.T) {
	svc, repo := newTestCatalog()

	stats := svc.Stats()
	assert.Equal(t, domain.CatalogStats{
		TotalBooks:       3,
		DistinctAuthors:  2,
		BooksWithReviews: 0,
	}, stats)

	repo.SetReview("1", "alice", "Great book")
	repo.SetReview("1", "bob", "Agreed")
	repo.SetReview("2", "alice", "Charming")

	stats = svc.Stats()
	assert.Equal(t, 2, stats.BooksWithReviews)
}

func TestSearch_FiltersIntersect(t *testing.T) {
	svc, repo := newTestCatalog()
	repo.SetReview("1", "alice", "Great book")

	tests := []struct {
		name      string
		filter    SearchFilter
		wantISBNs []string
	}{
		{"no constraints", SearchFilter{}, []string{"1", "2", "3"}},
		{"author only", SearchFilter{Author: "achebe"}, []string{"1", "3"}},
		{"title only", SearchFilter{Title: "tales"}, []string{"2"}},
		{"author and title", SearchFilter{Author: "achebe", Title: "ease"}, []string{"3"}},
		{"author and reviews", SearchFilter{Author: "achebe", HasReviews: true}, []string{"1"}},
		{"no match", SearchFilter{Author: "austen"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := svc.Search(tt.filter)
			isbns := make([]string, 0, len(found))
			for isbn := range found {
				isbns = append(isbns, isbn)
			}
			assert.ElementsMatch(t, tt.wantISBNs, isbns)
		})
	}
}

// End-to-end scenario over a seeded one-book catalog.
func TestCatalogScenario(t *testing.T) {
	repo := repository.NewCatalogRepository([]domain.Book{
		{ISBN: "1", Author: "Chinua Achebe", Title: "Things Fall Apart"},
	})
	catalog := NewCatalogService(repo)
	reviews := NewReviewService(repo, nil)
	ctx := context.Background()

	book, err := catalog.GetByISBN("1")
	require.NoError(t, err)
	assert.Equal(t, "Things Fall Apart", book.Title)

	_, err = catalog.GetByISBN("99")
	assert.Equal(t, "NOT_FOUND", errorCode(t, err))

	updated, err := reviews.UpsertReview(ctx, "1", domain.Identity{Username: "alice"}, "Great book")
	require.NoError(t, err)
	assert.False(t, updated)

	got, err := catalog.GetReviews("1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "Great book"}, got)

	err = reviews.DeleteReview(ctx, "1", domain.Identity{Username: "bob"})
	assert.Equal(t, "REVIEW_NOT_FOUND", errorCode(t, err))
}
