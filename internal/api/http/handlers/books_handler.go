package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Malex1718/expressBookReviews/internal/service"
	apperrors "github.com/Malex1718/expressBookReviews/pkg/util"
)

// BooksHandler exposes the public catalog read endpoints.
type BooksHandler struct {
	catalog *service.CatalogService
}

// NewBooksHandler constructs handler.
func NewBooksHandler(catalogService *service.CatalogService) *BooksHandler {
	return &BooksHandler{catalog: catalogService}
}

// ListAll handles GET /.
func (h *BooksHandler) ListAll(c *fiber.Ctx) error {
	return c.JSON(h.catalog.ListAll())
}

// GetByISBN handles GET /isbn/:isbn.
func (h *BooksHandler) GetByISBN(c *fiber.Ctx) error {
	book, err := h.catalog.GetByISBN(c.Params("isbn"))
	if err != nil {
		return err
	}
	return c.JSON(book)
}

// GetByAuthor handles GET /author/:author. An empty match set is reported
// as not found on this route.
func (h *BooksHandler) GetByAuthor(c *fiber.Ctx) error {
	author := c.Params("author")
	books := h.catalog.GetByAuthor(author)
	if len(books) == 0 {
		return apperrors.NewNotFound("books by author", map[string]any{"author": author})
	}
	return c.JSON(books)
}

// GetByTitle handles GET /title/:title, same semantics as GetByAuthor.
func (h *BooksHandler) GetByTitle(c *fiber.Ctx) error {
	title := c.Params("title")
	books := h.catalog.GetByTitle(title)
	if len(books) == 0 {
		return apperrors.NewNotFound("books with title", map[string]any{"title": title})
	}
	return c.JSON(books)
}

// GetReviews handles GET /review/:isbn. No reviews yet is a success with
// an empty map.
func (h *BooksHandler) GetReviews(c *fiber.Ctx) error {
	isbn := c.Params("isbn")
	reviews, err := h.catalog.GetReviews(isbn)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("No reviews yet for book with ISBN %s", isbn),
			"reviews": fiber.Map{},
		})
	}
	return c.JSON(reviews)
}

// Stats handles GET /stats.
func (h *BooksHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Stats())
}

// Search handles GET /search?author&title&hasReviews. All filters are
// optional; a missing filter imposes no constraint and an empty result is
// a 200 with an empty map.
func (h *BooksHandler) Search(c *fiber.Ctx) error {
	filter := service.SearchFilter{
		Author:     c.Query("author"),
		Title:      c.Query("title"),
		HasReviews: c.Query("hasReviews") == "true",
	}
	return c.JSON(h.catalog.Search(filter))
}

// The delayed variants mirror the plain reads behind an optional fixed
// delay. They wrap the payload in a message envelope, which is the only
// thing that distinguishes them.

// DelayedListAll handles GET /async/books.
func (h *BooksHandler) DelayedListAll(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Books fetched with simulated delay",
		"data":    h.catalog.ListAll(),
	})
}

// DelayedGetByISBN handles GET /promise/isbn/:isbn.
func (h *BooksHandler) DelayedGetByISBN(c *fiber.Ctx) error {
	book, err := h.catalog.GetByISBN(c.Params("isbn"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Book fetched with simulated delay",
		"data":    book,
	})
}

// DelayedGetByAuthor handles GET /async/author/:author.
func (h *BooksHandler) DelayedGetByAuthor(c *fiber.Ctx) error {
	author := c.Params("author")
	books := h.catalog.GetByAuthor(author)
	if len(books) == 0 {
		return apperrors.NewNotFound("books by author", map[string]any{"author": author})
	}
	return c.JSON(fiber.Map{
		"message": "Books fetched by author with simulated delay",
		"data":    books,
	})
}

// DelayedGetByTitle handles GET /promise/title/:title.
func (h *BooksHandler) DelayedGetByTitle(c *fiber.Ctx) error {
	title := c.Params("title")
	books := h.catalog.GetByTitle(title)
	if len(books) == 0 {
		return apperrors.NewNotFound("books with title", map[string]any{"title": title})
	}
	return c.JSON(fiber.Map{
		"message": "Books fetched by title with simulated delay",
		"data":    books,
	})
}
