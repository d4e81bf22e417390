package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"microcredit/internal/apperrors"
	"microcredit/internal/models"
	"microcredit/internal/services"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type CompanyHandler struct {
	Service *services.CompanyService
}

func NewCompanyHandler(service *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Service: service}
}

// @Summary      List companies
// @Description  Lists companies with optional name search and exact country/status filters
// @Tags         Companies
// @Produce      json
// @Param        q        query     string  false  "Case-insensitive name substring"
// @Param        country  query     string  false  "Exact country match"
// @Param        status   query     string  false  "Exact status match"
// @Param        limit    query     int     false  "Max results, 1-500"  default(100)
// @Success      200      {array}   map[string]interface{}
// @Failure      422      {object}  map[string]interface{}
// @Failure      500      {object}  map[string]string
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	limit, verr := parseLimit(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if verr != nil {
		respondError(c, verr)
		return
	}

	companies, err := h.Service.List(
		c.Request.Context(),
		c.Query("q"),
		c.Query("country"),
		c.Query("status"),
		limit,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// @Summary      Create a company
// @Description  Validates and stores a new company record
// @Tags         Companies
// @Accept       json
// @Produce      json
// @Param        company  body      models.Company  true  "Company record"
// @Success      201      {object}  map[string]string
// @Failure      422      {object}  map[string]interface{}
// @Failure      500      {object}  map[string]string
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		// Malformed JSON and type mismatches are input validation failures
		// like any range violation.
		respondError(c, apperrors.NewValidationError([]apperrors.FieldError{
			{Field: "body", Message: err.Error()},
		}))
		return
	}

	id, err := h.Service.Create(c.Request.Context(), &company)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Company statistics
// @Description  Aggregates over the whole collection for dashboard cards
// @Tags         Companies
// @Produce      json
// @Success      200  {object}  models.CompanyStats
// @Failure      500  {object}  map[string]string
// @Router       /api/companies/stats [get]
func (h *CompanyHandler) Stats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func parseLimit(raw string) (int64, *apperrors.ValidationError) {
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 || limit > maxListLimit {
		return 0, apperrors.NewValidationError([]apperrors.FieldError{
			{Field: "limit", Message: "must be an integer between 1 and 500"},
		})
	}
	return limit, nil
}
