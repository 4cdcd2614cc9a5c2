package books

import (
	"math"
	"net/http"
	"strconv"

	"github.com/hausbib/hausbib/pkg/auth"
	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/hausbib/hausbib/pkg/models"
	"github.com/hausbib/hausbib/pkg/permissions"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	bookService *Service
	resolver    *permissions.Resolver
}

// Pagination is the page arithmetic block returned by list endpoints.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func newPagination(page, limit, total int) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

type listResponse struct {
	Data        []*models.Book `json:"data"`
	Pagination  Pagination     `json:"pagination"`
	Permissions struct {
		CanViewPrices bool `json:"canViewPrices"`
	} `json:"permissions"`
}

func (h *handler) list(c echo.Context) error {
	return h.listBooks(c, false)
}

// listRemoved serves the soft-deleted books for audit.
func (h *handler) listRemoved(c echo.Context) error {
	return h.listBooks(c, true)
}

func (h *handler) listBooks(c echo.Context, onlyRemoved bool) error {
	ctx := c.Request().Context()

	params := ListBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	books, total, err := h.bookService.ListBooksWithTotal(ctx, ListBooksOptions{
		Page:        params.Page,
		Limit:       params.Limit,
		TopicSlug:   params.Topic,
		AuthorID:    params.Author,
		Search:      params.Search,
		OnlyRemoved: onlyRemoved,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	role := auth.RoleFromContext(c)
	canViewPrices := h.resolver.Can(role, permissions.CapabilityViewPrices)
	if !canViewPrices {
		for _, book := range books {
			book.Prices = nil
		}
	}

	response := listResponse{
		Data:       books,
		Pagination: newPagination(params.Page, params.Limit, total),
	}
	response.Permissions.CanViewPrices = canViewPrices

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

// bookResponse is the detail shape: the book plus its people split by role.
type bookResponse struct {
	*models.Book
	models.PeopleByRole
}

func (h *handler) respondWithBook(c echo.Context, code int, book *models.Book) error {
	role := auth.RoleFromContext(c)
	if !h.resolver.Can(role, permissions.CapabilityViewPrices) {
		book.Prices = nil
	}
	if !h.resolver.Can(role, permissions.CapabilityViewDebugInfo) {
		book.AdminData = nil
	}
	return errors.WithStack(c.JSON(code, bookResponse{book, book.PeopleByRole()}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithBook(c, http.StatusOK, book)
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book := &models.Book{
		Title:              params.Title,
		Subtitle:           params.Subtitle,
		Publisher:          params.Publisher,
		PlaceOfPublication: params.PlaceOfPublication,
		PublicationYear:    params.PublicationYear,
		Edition:            params.Edition,
		Pages:              params.Pages,
		ISBN:               params.ISBN,
		FormatOriginal:     params.FormatOriginal,
		FormatExpanded:     params.FormatExpanded,
		Condition:          params.Condition,
		Copies:             params.Copies,
		Illustrations:      params.Illustrations,
		Packaging:          params.Packaging,
		TopicID:            params.TopicID,
		IsTranslation:      params.IsTranslation,
		OriginalLanguage:   params.OriginalLanguage,
		IsMultivolume:      params.IsMultivolume,
		SeriesTitle:        params.SeriesTitle,
		TotalVolumes:       params.TotalVolumes,
	}

	for _, link := range params.People {
		book.People = append(book.People, &models.BookPerson{
			PersonID:      link.PersonID,
			DisplayName:   link.DisplayName,
			SortOrder:     link.SortOrder,
			IsAuthor:      link.IsAuthor,
			IsEditor:      link.IsEditor,
			IsContributor: link.IsContributor,
			IsTranslator:  link.IsTranslator,
		})
	}

	for _, vol := range params.Volumes {
		book.Volumes = append(book.Volumes, &models.Volume{
			VolumeNumber: vol.VolumeNumber,
			VolumeTitle:  vol.VolumeTitle,
			Pages:        vol.Pages,
			Notes:        vol.Notes,
		})
	}

	if params.AdminData != nil {
		book.AdminData = &models.BookAdmin{
			OriginalEntry:     params.AdminData.OriginalEntry,
			ParsingConfidence: params.AdminData.ParsingConfidence,
			NeedsReview:       params.AdminData.NeedsReview,
			VerificationNotes: params.AdminData.VerificationNotes,
			BatchID:           params.AdminData.BatchID,
		}
	}

	if err := h.bookService.CreateBook(ctx, book); err != nil {
		return errors.WithStack(err)
	}

	// Re-read to pick up nested people records and relation ordering.
	book, err := h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &book.ID})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithBook(c, http.StatusCreated, book)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book := &models.Book{ID: id}
	columns := []string{}

	if params.Title != nil {
		book.Title = *params.Title
		columns = append(columns, "title")
	}
	if params.Subtitle != nil {
		book.Subtitle = params.Subtitle
		columns = append(columns, "subtitle")
	}
	if params.Publisher != nil {
		book.Publisher = params.Publisher
		columns = append(columns, "publisher")
	}
	if params.PlaceOfPublication != nil {
		book.PlaceOfPublication = params.PlaceOfPublication
		columns = append(columns, "place_of_publication")
	}
	if params.PublicationYear != nil {
		book.PublicationYear = params.PublicationYear
		columns = append(columns, "publication_year")
	}
	if params.Edition != nil {
		book.Edition = params.Edition
		columns = append(columns, "edition")
	}
	if params.Pages != nil {
		book.Pages = params.Pages
		columns = append(columns, "pages")
	}
	if params.ISBN != nil {
		book.ISBN = params.ISBN
		columns = append(columns, "isbn")
	}
	if params.FormatOriginal != nil {
		book.FormatOriginal = params.FormatOriginal
		columns = append(columns, "format_original")
	}
	if params.FormatExpanded != nil {
		book.FormatExpanded = params.FormatExpanded
		columns = append(columns, "format_expanded")
	}
	if params.Condition != nil {
		book.Condition = params.Condition
		columns = append(columns, "condition")
	}
	if params.Copies != nil {
		book.Copies = params.Copies
		columns = append(columns, "copies")
	}
	if params.Illustrations != nil {
		book.Illustrations = params.Illustrations
		columns = append(columns, "illustrations")
	}
	if params.Packaging != nil {
		book.Packaging = params.Packaging
		columns = append(columns, "packaging")
	}
	if params.TopicID != nil {
		book.TopicID = params.TopicID
		columns = append(columns, "topic_id")
	}
	if params.IsTranslation != nil {
		book.IsTranslation = *params.IsTranslation
		columns = append(columns, "is_translation")
	}
	if params.OriginalLanguage != nil {
		book.OriginalLanguage = params.OriginalLanguage
		columns = append(columns, "original_language")
	}
	if params.IsMultivolume != nil {
		book.IsMultivolume = *params.IsMultivolume
		columns = append(columns, "is_multivolume")
	}
	if params.SeriesTitle != nil {
		book.SeriesTitle = params.SeriesTitle
		columns = append(columns, "series_title")
	}
	if params.TotalVolumes != nil {
		book.TotalVolumes = params.TotalVolumes
		columns = append(columns, "total_volumes")
	}

	if len(columns) > 0 {
		if err := h.bookService.UpdateBook(ctx, book, UpdateBookOptions{Columns: columns}); err != nil {
			return errors.WithStack(err)
		}
	}

	book, err = h.bookService.RetrieveBook(ctx, RetrieveBookOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithBook(c, http.StatusOK, book)
}

// softDelete handles PATCH /books?id=. The only supported body is
// {"is_removed": true}.
func (h *handler) softDelete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.QueryParam("id"))
	if err != nil || id < 1 {
		return errcodes.ValidationError("id query parameter is required")
	}

	params := SoftDeletePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}
	if !params.IsRemoved {
		return errcodes.ValidationError("only is_removed=true is supported")
	}

	if err := h.bookService.SoftDeleteBook(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"book_id": id, "is_removed": true}))
}

func (h *handler) deleteBook(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	if err := h.bookService.DeleteBook(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"book_id": id, "deleted": true}))
}
