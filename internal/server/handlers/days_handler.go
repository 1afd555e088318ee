package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/service/days"
	"github.com/mamadbah2/nutrilog/internal/service/reporting"
)

type dayRequest struct {
	Name string `json:"name"`
}

type mealRequest struct {
	Type string `json:"type" binding:"required"`
}

type consumedRequest struct {
	Food     string  `json:"food" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

// DaysHandler serves the caller's day logs, their meals and consumed entries.
type DaysHandler struct {
	svc       *days.Service
	reporting *reporting.Service
	logger    *zap.Logger
}

// NewDaysHandler constructs the HTTP handler adapter.
func NewDaysHandler(svc *days.Service, reportingSvc *reporting.Service, logger *zap.Logger) *DaysHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DaysHandler{svc: svc, reporting: reportingSvc, logger: logger}
}

// Upsert touches the named day (today by default), creating it when missing.
func (h *DaysHandler) Upsert(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dayRequest
	// An empty body means today.
	if !bindOptionalJSON(c, &req) {
		return
	}

	day, created, err := h.svc.Upsert(c.Request.Context(), userID, req.Name)
	if err != nil {
		h.fail(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, day)
}

func (h *DaysHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *DaysHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	day, err := h.svc.Get(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// Summary returns the nutrition totals of one day.
func (h *DaysHandler) Summary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.reporting.DailySummary(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *DaysHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, c.Param("name")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Day deleted"})
}

// AddMeal adds an empty meal to today's day.
func (h *DaysHandler) AddMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req mealRequest
	if !bindJSON(c, &req) {
		return
	}

	day, err := h.svc.AddMeal(c.Request.Context(), userID, req.Type)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *DaysHandler) RemoveMeal(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	day, err := h.svc.RemoveMeal(c.Request.Context(), userID, c.Param("type"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// AddConsumed records a food portion in one of today's meals.
func (h *DaysHandler) AddConsumed(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req consumedRequest
	if !bindJSON(c, &req) {
		return
	}
	foodID, ok := parseObjectID(c, "food", req.Food)
	if !ok {
		return
	}

	day, err := h.svc.AddConsumed(c.Request.Context(), userID, c.Param("type"), foodID, req.Quantity)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// RemoveConsumed deletes a consumed entry from one of today's meals.
func (h *DaysHandler) RemoveConsumed(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	consumedID, ok := parseObjectID(c, "id", c.Param("id"))
	if !ok {
		return
	}

	day, err := h.svc.RemoveConsumed(c.Request.Context(), userID, c.Param("type"), consumedID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

func (h *DaysHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, days.ErrDayNotFound), errors.Is(err, reporting.ErrDayNotFound):
		respondError(c, http.StatusNotFound, "Day not found")
	case errors.Is(err, days.ErrMealNotFound):
		respondError(c, http.StatusNotFound, "Meal not found")
	case errors.Is(err, days.ErrFoodNotFound):
		respondError(c, http.StatusNotFound, "Food not found")
	case errors.Is(err, days.ErrConsumedNotFound):
		respondError(c, http.StatusNotFound, "Consumed entry not found")
	case errors.Is(err, days.ErrMealExists):
		respondError(c, http.StatusConflict, "Meal already exists")
	case errors.Is(err, days.ErrInvalidQuantity):
		respondErrors(c, FieldError{Field: "quantity", Msg: "Quantity must be greater than 0"})
	case errors.Is(err, days.ErrInvalidMealType):
		respondErrors(c, FieldError{Field: "type", Msg: "Type is required"})
	default:
		respondServerError(c, h.logger, "day request failed", err)
	}
}
