package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stylebook/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authAs injects the identity the auth middleware would set.
func authAs(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
	}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type fakeStylistDir struct {
	byID         map[string]*models.Stylist
	hoursUpdated bool
	deleted      bool
}

func (f *fakeStylistDir) Create(ctx context.Context, s *models.Stylist) error { return nil }
func (f *fakeStylistDir) GetByID(ctx context.Context, id string) (*models.Stylist, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}
func (f *fakeStylistDir) GetByUserID(ctx context.Context, userID string) (*models.Stylist, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeStylistDir) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Stylist, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}
func (f *fakeStylistDir) UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error {
	f.hoursUpdated = true
	return nil
}
func (f *fakeStylistDir) List(ctx context.Context) ([]models.Stylist, error) { return nil, nil }
func (f *fakeStylistDir) Delete(ctx context.Context, id string) error {
	f.deleted = true
	return nil
}

type fakeSalonDir struct {
	byID         map[string]*models.Salon
	hoursUpdated bool
}

func (f *fakeSalonDir) Create(ctx context.Context, s *models.Salon) error { return nil }
func (f *fakeSalonDir) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}
func (f *fakeSalonDir) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Salon, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}
func (f *fakeSalonDir) UpdateOpeningHours(ctx context.Context, id string, hours []models.OpeningHours) error {
	f.hoursUpdated = true
	return nil
}
func (f *fakeSalonDir) List(ctx context.Context) ([]models.Salon, error) { return nil, nil }
func (f *fakeSalonDir) Delete(ctx context.Context, id string) error      { return errors.New("not implemented") }

type fakeServiceDir struct {
	byID    map[string]*models.Service
	deleted bool
}

func (f *fakeServiceDir) Create(ctx context.Context, s *models.Service) error { return nil }
func (f *fakeServiceDir) GetByID(ctx context.Context, id string) (*models.Service, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}
func (f *fakeServiceDir) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Service, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return s, nil
}
func (f *fakeServiceDir) ListByStylist(ctx context.Context, stylistID string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceDir) ListBySalon(ctx context.Context, salonID string) ([]models.Service, error) {
	return nil, nil
}
func (f *fakeServiceDir) Delete(ctx context.Context, id string) error {
	f.deleted = true
	return nil
}

const workingHoursBody = `{"days":["Monday"],"timeSlots":[{"start":540,"end":1020}]}`

func stylistRouter(dir *fakeStylistDir, userID, role string) *gin.Engine {
	h := NewStylistHandler(dir)
	r := gin.New()
	r.PUT("/stylists/:id", authAs(userID, role), h.UpdateHandler)
	r.PUT("/stylists/:id/working-hours", authAs(userID, role), h.UpdateWorkingHoursHandler)
	r.DELETE("/stylists/:id", authAs(userID, role), h.DeleteHandler)
	return r
}

func TestStylistWorkingHours_NonOwnerForbidden(t *testing.T) {
	dir := &fakeStylistDir{byID: map[string]*models.Stylist{
		"sty-1": {ID: "sty-1", UserID: "u-owner"},
	}}
	r := stylistRouter(dir, "u-other", "stylist")

	w := doJSON(r, http.MethodPut, "/stylists/sty-1/working-hours", workingHoursBody)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, dir.hoursUpdated)
}

func TestStylistWorkingHours_OwnerAndAdminAllowed(t *testing.T) {
	dir := &fakeStylistDir{byID: map[string]*models.Stylist{
		"sty-1": {ID: "sty-1", UserID: "u-owner"},
	}}

	w := doJSON(stylistRouter(dir, "u-owner", "stylist"), http.MethodPut, "/stylists/sty-1/working-hours", workingHoursBody)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, dir.hoursUpdated)

	dir.hoursUpdated = false
	w = doJSON(stylistRouter(dir, "root", "admin"), http.MethodPut, "/stylists/sty-1/working-hours", workingHoursBody)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, dir.hoursUpdated)
}

func TestStylistUpdateAndDelete_NonOwnerForbidden(t *testing.T) {
	dir := &fakeStylistDir{byID: map[string]*models.Stylist{
		"sty-1": {ID: "sty-1", UserID: "u-owner"},
	}}
	r := stylistRouter(dir, "u-other", "stylist")

	w := doJSON(r, http.MethodPut, "/stylists/sty-1", `{"city":"Lyon"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodDelete, "/stylists/sty-1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, dir.deleted)
}

func TestSalonOpeningHours_OwnerOnly(t *testing.T) {
	dir := &fakeSalonDir{byID: map[string]*models.Salon{
		"salon-1": {ID: "salon-1", OwnerID: "u-owner"},
	}}
	h := NewSalonHandler(dir)
	body := `[{"day":1,"start":540,"end":1020}]`

	r := gin.New()
	r.PUT("/salons/:id/opening-hours", authAs("u-other", "stylist"), h.UpdateOpeningHoursHandler)
	w := doJSON(r, http.MethodPut, "/salons/salon-1/opening-hours", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, dir.hoursUpdated)

	r = gin.New()
	r.PUT("/salons/:id/opening-hours", authAs("u-owner", "stylist"), h.UpdateOpeningHoursHandler)
	w = doJSON(r, http.MethodPut, "/salons/salon-1/opening-hours", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, dir.hoursUpdated)
}

func TestServiceDelete_ProviderOwnerOnly(t *testing.T) {
	services := &fakeServiceDir{byID: map[string]*models.Service{
		"svc-1": {ID: "svc-1", StylistID: "u-owner", Name: "Cut"},
	}}
	salons := &fakeSalonDir{byID: map[string]*models.Salon{}}
	h := NewServiceHandler(services, salons)

	r := gin.New()
	r.DELETE("/services/:id", authAs("u-other", "stylist"), h.DeleteHandler)
	w := doJSON(r, http.MethodDelete, "/services/svc-1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, services.deleted)

	r = gin.New()
	r.DELETE("/services/:id", authAs("u-owner", "stylist"), h.DeleteHandler)
	w = doJSON(r, http.MethodDelete, "/services/svc-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, services.deleted)
}

func TestServiceUpdate_SalonOwnedResolvesOwner(t *testing.T) {
	services := &fakeServiceDir{byID: map[string]*models.Service{
		"svc-2": {ID: "svc-2", SalonID: "salon-1", Name: "Color"},
	}}
	salons := &fakeSalonDir{byID: map[string]*models.Salon{
		"salon-1": {ID: "salon-1", OwnerID: "u-salon"},
	}}
	h := NewServiceHandler(services, salons)

	r := gin.New()
	r.PUT("/services/:id", authAs("u-other", "stylist"), h.UpdateHandler)
	w := doJSON(r, http.MethodPut, "/services/svc-2", `{"price":50}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	r = gin.New()
	r.PUT("/services/:id", authAs("u-salon", "stylist"), h.UpdateHandler)
	w = doJSON(r, http.MethodPut, "/services/svc-2", `{"price":50}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
