package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
	"github.com/mamadbah2/nutrilog/internal/service/foods"
)

type foodRequest struct {
	Name         string   `json:"name" binding:"required"`
	Calorie      *float64 `json:"calorie" binding:"required,gte=0"`
	Carbohydrate *float64 `json:"carbohydrate" binding:"required,gte=0"`
}

type importRequest struct {
	Query string `json:"query" binding:"required"`
}

// FoodHandler serves the shared food catalog.
type FoodHandler struct {
	svc    *foods.Service
	logger *zap.Logger
}

// NewFoodHandler constructs the HTTP handler adapter.
func NewFoodHandler(svc *foods.Service, logger *zap.Logger) *FoodHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FoodHandler{svc: svc, logger: logger}
}

func (h *FoodHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FoodHandler) Get(c *gin.Context) {
	food, err := h.svc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// Upsert creates a food or overwrites the values of the one with the same name.
func (h *FoodHandler) Upsert(c *gin.Context) {
	var req foodRequest
	if !bindJSON(c, &req) {
		return
	}

	food, err := h.svc.Upsert(c.Request.Context(), models.Food{
		Name:         req.Name,
		Calorie:      *req.Calorie,
		Carbohydrate: *req.Carbohydrate,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// Delete removes a food named by the path segment or the name query parameter.
func (h *FoodHandler) Delete(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		name = strings.TrimSpace(c.Query("name"))
	}
	if name == "" {
		respondErrors(c, FieldError{Field: "name", Msg: "Name is required"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), name); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Food deleted"})
}

// Lookup searches the remote nutrition database.
func (h *FoodHandler) Lookup(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondErrors(c, FieldError{Field: "q", Msg: "Q is required"})
		return
	}

	candidates, err := h.svc.Lookup(c.Request.Context(), query)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// Import stores the best remote match for the query in the catalog.
func (h *FoodHandler) Import(c *gin.Context) {
	var req importRequest
	if !bindJSON(c, &req) {
		return
	}

	food, err := h.svc.Import(c.Request.Context(), req.Query)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, foods.ErrFoodNotFound):
		respondError(c, http.StatusNotFound, "Food not found")
	case errors.Is(err, foods.ErrNoCandidates):
		respondError(c, http.StatusNotFound, "No matching foods")
	case errors.Is(err, foods.ErrInvalidFood):
		respondErrors(c, FieldError{Msg: err.Error()})
	case errors.Is(err, foods.ErrLookupDisabled):
		respondError(c, http.StatusServiceUnavailable, "nutrition lookup is not configured")
	default:
		respondServerError(c, h.logger, "food request failed", err)
	}
}
