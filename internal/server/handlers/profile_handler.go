package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/service/profiles"
)

type profileRequest struct {
	Age    int     `json:"age" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

// ProfileHandler serves the caller's body profile.
type ProfileHandler struct {
	svc    *profiles.Service
	logger *zap.Logger
}

// NewProfileHandler constructs the HTTP handler adapter.
func NewProfileHandler(svc *profiles.Service, logger *zap.Logger) *ProfileHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileHandler{svc: svc, logger: logger}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	profile, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req profileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.svc.Upsert(c.Request.Context(), userID, req.Age, req.Height, req.Weight)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "Profile deleted"})
}

func (h *ProfileHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, profiles.ErrProfileNotFound):
		respondError(c, http.StatusNotFound, "There is no profile for this user")
	case errors.Is(err, profiles.ErrInvalidProfile):
		respondErrors(c, FieldError{Msg: err.Error()})
	default:
		respondServerError(c, h.logger, "profile request failed", err)
	}
}
