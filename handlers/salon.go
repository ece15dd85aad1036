package handlers

import (
	"errors"
	"net/http"

	salonRepo "stylebook/database/repository/salon"
	"stylebook/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SalonHandler covers the salon directory.
type SalonHandler struct {
	Salons salonRepo.SalonRepository
}

func NewSalonHandler(salons salonRepo.SalonRepository) *SalonHandler {
	return &SalonHandler{Salons: salons}
}

// ListHandler returns all salons.
func (h *SalonHandler) ListHandler(c *gin.Context) {
	list, err := h.Salons.List(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list salons", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to list salons")
		return
	}
	c.JSON(http.StatusOK, gin.H{"salons": list})
}

// GetByIDHandler returns one salon.
func (h *SalonHandler) GetByIDHandler(c *gin.Context) {
	s, err := h.Salons.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonError(c, http.StatusNotFound, "salon not found")
			return
		}
		getLogger(c).Error("failed to get salon", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to get salon")
		return
	}
	c.JSON(http.StatusOK, s)
}

// CreateHandler registers a salon owned by the caller.
func (h *SalonHandler) CreateHandler(c *gin.Context) {
	var s models.Salon
	if err := c.ShouldBindJSON(&s); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")
	s.OwnerID, _ = userID.(string)

	if err := h.Salons.Create(c.Request.Context(), &s); err != nil {
		getLogger(c).Error("failed to create salon", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to create salon")
		return
	}
	c.JSON(http.StatusCreated, s)
}

// ownedByCaller verifies the targeted salon belongs to the calling user
// account. Admins bypass the check. Writes an error response and returns
// false when the caller is not the owner.
func (h *SalonHandler) ownedByCaller(c *gin.Context, id string) bool {
	userID, role := callerIdentity(c)
	if role == "admin" {
		return true
	}

	s, err := h.Salons.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonError(c, http.StatusNotFound, "salon not found")
			return false
		}
		getLogger(c).Error("failed to load salon for ownership check", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to load salon")
		return false
	}
	if s.OwnerID != userID {
		jsonError(c, http.StatusForbidden, "not your salon")
		return false
	}
	return true
}

// UpdateHandler applies whitelisted field updates to a salon.
func (h *SalonHandler) UpdateHandler(c *gin.Context) {
	if !h.ownedByCaller(c, c.Param("id")) {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	s, err := h.Salons.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonError(c, http.StatusNotFound, "salon not found")
			return
		}
		jsonError(c, http.StatusBadRequest, "failed to update salon: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateOpeningHoursHandler replaces the salon's weekly opening hours.
func (h *SalonHandler) UpdateOpeningHoursHandler(c *gin.Context) {
	if !h.ownedByCaller(c, c.Param("id")) {
		return
	}

	var hours []models.OpeningHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.Salons.UpdateOpeningHours(c.Request.Context(), c.Param("id"), hours); err != nil {
		jsonError(c, http.StatusBadRequest, "failed to update opening hours: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "opening hours updated"})
}

// DeleteHandler removes a salon.
func (h *SalonHandler) DeleteHandler(c *gin.Context) {
	if !h.ownedByCaller(c, c.Param("id")) {
		return
	}

	if err := h.Salons.Delete(c.Request.Context(), c.Param("id")); err != nil {
		getLogger(c).Error("failed to delete salon", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to delete salon")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "salon deleted"})
}
