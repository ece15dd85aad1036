package handlers

import (
	"errors"
	"net/http"

	salonRepo "stylebook/database/repository/salon"
	serviceRepo "stylebook/database/repository/service"
	"stylebook/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServiceHandler covers the bookable service catalog. The salon directory
// is needed to resolve the owner of salon-attached entries.
type ServiceHandler struct {
	Services serviceRepo.ServiceRepository
	Salons   salonRepo.SalonRepository
}

func NewServiceHandler(services serviceRepo.ServiceRepository, salons salonRepo.SalonRepository) *ServiceHandler {
	return &ServiceHandler{Services: services, Salons: salons}
}

// providerOwnedByCaller verifies the caller controls the provider a
// catalog entry is attached to: their own stylist user account, or a salon
// they own. Admins bypass the check. Writes an error response and returns
// false on failure.
func (h *ServiceHandler) providerOwnedByCaller(c *gin.Context, s *models.Service) bool {
	userID, role := callerIdentity(c)
	if role == "admin" {
		return true
	}

	if s.StylistID != "" {
		if s.StylistID != userID {
			jsonError(c, http.StatusForbidden, "not your service")
			return false
		}
		return true
	}
	if s.SalonID != "" {
		sa, err := h.Salons.GetByID(c.Request.Context(), s.SalonID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				jsonError(c, http.StatusBadRequest, "unknown salon "+s.SalonID)
				return false
			}
			getLogger(c).Error("failed to load salon for ownership check", zap.Error(err))
			jsonError(c, http.StatusInternalServerError, "failed to load salon")
			return false
		}
		if sa.OwnerID != userID {
			jsonError(c, http.StatusForbidden, "not your service")
			return false
		}
		return true
	}

	jsonError(c, http.StatusBadRequest, "service must reference a stylist or a salon")
	return false
}

// loadOwnedService fetches a catalog entry and verifies the caller
// controls its provider.
func (h *ServiceHandler) loadOwnedService(c *gin.Context, id string) (*models.Service, bool) {
	s, err := h.Services.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonError(c, http.StatusNotFound, "service not found")
			return nil, false
		}
		getLogger(c).Error("failed to get service", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to get service")
		return nil, false
	}
	if !h.providerOwnedByCaller(c, s) {
		return nil, false
	}
	return s, true
}

// ListHandler returns the catalog for a stylist or salon.
func (h *ServiceHandler) ListHandler(c *gin.Context) {
	stylistID := c.Query("stylistId")
	salonID := c.Query("salonId")
	if (stylistID == "") == (salonID == "") {
		jsonError(c, http.StatusBadRequest, "exactly one of stylistId or salonId is required")
		return
	}

	var (
		list []models.Service
		err  error
	)
	if stylistID != "" {
		list, err = h.Services.ListByStylist(c.Request.Context(), stylistID)
	} else {
		list, err = h.Services.ListBySalon(c.Request.Context(), salonID)
	}
	if err != nil {
		getLogger(c).Error("failed to list services", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to list services")
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": list})
}

// GetByIDHandler returns one catalog entry.
func (h *ServiceHandler) GetByIDHandler(c *gin.Context) {
	s, err := h.Services.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonError(c, http.StatusNotFound, "service not found")
			return
		}
		getLogger(c).Error("failed to get service", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to get service")
		return
	}
	c.JSON(http.StatusOK, s)
}

// CreateHandler adds a catalog entry. Duration must be positive; it fixes
// the end time of every booking made against this service.
func (h *ServiceHandler) CreateHandler(c *gin.Context) {
	var s models.Service
	if err := c.ShouldBindJSON(&s); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if !h.providerOwnedByCaller(c, &s) {
		return
	}

	if err := h.Services.Create(c.Request.Context(), &s); err != nil {
		jsonError(c, http.StatusBadRequest, "failed to create service: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, s)
}

// UpdateHandler applies whitelisted field updates to a catalog entry.
func (h *ServiceHandler) UpdateHandler(c *gin.Context) {
	if _, ok := h.loadOwnedService(c, c.Param("id")); !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	s, err := h.Services.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonError(c, http.StatusNotFound, "service not found")
			return
		}
		jsonError(c, http.StatusBadRequest, "failed to update service: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteHandler removes a catalog entry.
func (h *ServiceHandler) DeleteHandler(c *gin.Context) {
	if _, ok := h.loadOwnedService(c, c.Param("id")); !ok {
		return
	}

	if err := h.Services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		getLogger(c).Error("failed to delete service", zap.Error(err))
		jsonError(c, http.StatusInternalServerError, "failed to delete service")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}
