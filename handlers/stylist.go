package handlers

import (
	"errors"
	"net/http"

	stylistRepo "stylebook/database/repository/stylist"
	"stylebook/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StylistHandler covers the stylist directory.
type StylistHandler struct {
	Stylists stylistRepo.StylistRepository
}

func NewStylistHandler(stylists stylistRepo.StylistRepository) *StylistHandler {
	return &StylistHandler{Stylists: stylists}
}

// ListHandler returns all stylist profiles.
func (h *StylistHandler) ListHandler(c *gin.Context) {
	list, err := h.Stylists.List(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to list stylists", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to list stylists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"stylists": list})
}

// GetByIDHandler returns one stylist profile.
func (h *StylistHandler) GetByIDHandler(c *gin.Context) {
	s, err := h.Stylists.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonError(c, http.StatusNotFound, "stylist not found")
			return
		}
		getLogger(c).Error("failed to get stylist", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to get stylist")
		return
	}
	c.JSON(http.StatusOK, s)
}

// CreateHandler registers a stylist profile owned by the caller.
func (h *StylistHandler) CreateHandler(c *gin.Context) {
	var s models.Stylist
	if err := c.ShouldBindJSON(&s); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	userID, _ := c.Get("userID")
	s.UserID, _ = userID.(string)

	if err := h.Stylists.Create(c.Request.Context(), &s); err != nil {
		getLogger(c).Error("failed to create stylist", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to create stylist")
		return
	}
	c.JSON(http.StatusCreated, s)
}

// ownedByCaller verifies the targeted profile belongs to the calling user
// account. Admins bypass the check. Writes an error response and returns
// false when the caller is not the owner.
func (h *StylistHandler) ownedByCaller(c *gin.Context, id string) bool {
	userID, role := callerIdentity(c)
	if role == "admin" {
		return true
	}

	s, err := h.Stylists.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonError(c, http.StatusNotFound, "stylist not found")
			return false
		}
		getLogger(c).Error("failed to load stylist for ownership check", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to load stylist")
		return false
	}
	if s.UserID != userID {
		jsonError(c, http.StatusForbidden, "not your stylist profile")
		return false
	}
	return true
}

// UpdateHandler applies whitelisted field updates to a stylist profile.
func (h *StylistHandler) UpdateHandler(c *gin.Context) {
	if !h.ownedByCaller(c, c.Param("id")) {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	s, err := h.Stylists.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonError(c, http.StatusNotFound, "stylist not found")
			return
		}
		jsonError(c, http.StatusBadRequest, "failed to update stylist: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateWorkingHoursHandler replaces the stylist's weekly working hours.
// Days and time windows are index-paired and validated in the repository.
func (h *StylistHandler) UpdateWorkingHoursHandler(c *gin.Context) {
	if !h.ownedByCaller(c, c.Param("id")) {
		return
	}

	var hours models.WorkingHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	if err := h.Stylists.UpdateWorkingHours(c.Request.Context(), c.Param("id"), hours); err != nil {
		jsonError(c, http.StatusBadRequest, "failed to update working hours: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "working hours updated"})
}

// DeleteHandler removes a stylist profile.
func (h *StylistHandler) DeleteHandler(c *gin.Context) {
	if !h.ownedByCaller(c, c.Param("id")) {
		return
	}

	if err := h.Stylists.Delete(c.Request.Context(), c.Param("id")); err != nil {
		getLogger(c).Error("failed to delete stylist", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to delete stylist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "stylist deleted"})
}
