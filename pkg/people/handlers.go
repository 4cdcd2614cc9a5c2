package people

import (
	"math"
	"net/http"
	"strconv"

	"github.com/hausbib/hausbib/pkg/errcodes"
	"github.com/hausbib/hausbib/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	personService *Service
}

type listResponse struct {
	Data       []*models.Person `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		Limit      int `json:"limit"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListPeopleQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	people, total, err := h.personService.ListPeopleWithTotal(ctx, ListPeopleOptions{
		Page:   params.Page,
		Limit:  params.Limit,
		Search: params.Search,
		Role:   params.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	response := listResponse{Data: people}
	response.Pagination.Page = params.Page
	response.Pagination.Limit = params.Limit
	response.Pagination.Total = total
	response.Pagination.TotalPages = int(math.Ceil(float64(total) / float64(params.Limit)))

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Person")
	}

	person, err := h.personService.RetrievePerson(ctx, RetrievePersonOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	books, err := h.personService.PersonBooks(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	response := struct {
		*models.Person
		Books []*models.Book `json:"books"`
	}{person, books}

	return errors.WithStack(c.JSON(http.StatusOK, response))
}

// create is idempotent on the unified id: posting the same name twice returns
// the existing person with a 200 instead of a duplicate.
func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreatePersonPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	person := &models.Person{
		FamilyName:     params.FamilyName,
		GivenNames:     params.GivenNames,
		NameParticles:  params.NameParticles,
		SingleName:     params.SingleName,
		IsOrganisation: params.IsOrganisation,
	}

	created, err := h.personService.FindOrCreatePerson(ctx, person)
	if err != nil {
		return errors.WithStack(err)
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}

	return errors.WithStack(c.JSON(code, person))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Person")
	}

	params := UpdatePersonPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	person := &models.Person{ID: id}
	columns := []string{}

	if params.FamilyName != nil {
		person.FamilyName = params.FamilyName
		columns = append(columns, "family_name")
	}
	if params.GivenNames != nil {
		person.GivenNames = params.GivenNames
		columns = append(columns, "given_names")
	}
	if params.NameParticles != nil {
		person.NameParticles = params.NameParticles
		columns = append(columns, "name_particles")
	}
	if params.SingleName != nil {
		person.SingleName = params.SingleName
		columns = append(columns, "single_name")
	}
	if params.IsOrganisation != nil {
		person.IsOrganisation = *params.IsOrganisation
		columns = append(columns, "is_organisation")
	}

	if len(columns) > 0 {
		if err := h.personService.UpdatePerson(ctx, person, UpdatePersonOptions{Columns: columns}); err != nil {
			return errors.WithStack(err)
		}
	}

	person, err = h.personService.RetrievePerson(ctx, RetrievePersonOptions{ID: &id})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, person))
}

// listAuthors backs the author filter dropdown.
func (h *handler) listAuthors(c echo.Context) error {
	ctx := c.Request().Context()

	authors, err := h.personService.ListAuthors(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"data": authors}))
}
