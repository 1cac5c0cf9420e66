package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	salonRepo "salonflow/database/repository/salon"
	"salonflow/middleware"
	"salonflow/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeMediaService struct {
	uploadedFolder string
	deleted        []string
	deleteErr      error
}

func (f *fakeMediaService) Upload(_ context.Context, _ multipart.File, folder string) (string, string, error) {
	f.uploadedFolder = folder
	return "salon-logos/abc123", "https://cdn.example.com/salon-logos/abc123.png", nil
}

func (f *fakeMediaService) Delete(_ context.Context, publicID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

type stubSalonRepo struct {
	salon      *models.Salon
	setDocs    []bson.M
	setDocsErr error
}

func (s *stubSalonRepo) GetByID(context.Context, string) (*models.Salon, error) {
	if s.salon == nil {
		return nil, salonRepo.ErrNotFound
	}
	return s.salon, nil
}

func (s *stubSalonRepo) GetBySlug(context.Context, string) (*models.Salon, error) {
	return nil, errors.New("not implemented")
}

func (s *stubSalonRepo) Create(context.Context, *models.Salon) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubSalonRepo) Update(context.Context, *models.Salon) error {
	return errors.New("not implemented")
}

func (s *stubSalonRepo) UpdateSetDocument(_ context.Context, _ string, doc bson.M) error {
	if s.setDocsErr != nil {
		return s.setDocsErr
	}
	s.setDocs = append(s.setDocs, doc)
	return nil
}

func (s *stubSalonRepo) Delete(context.Context, string) error {
	return errors.New("not implemented")
}

func mediaRouter(media *fakeMediaService, salons *stubSalonRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.SalonIDKey, "salon-1") })
	h := NewMediaHandler(media, salons)
	r.POST("/media/logo", h.UploadLogoHandler)
	r.DELETE("/media/logo", h.DeleteLogoHandler)
	return r
}

func TestUploadLogoStoresURLAndPublicID(t *testing.T) {
	media := &fakeMediaService{}
	salons := &stubSalonRepo{}
	r := mediaRouter(media, salons)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media/logo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "salon-logos", media.uploadedFolder)
	require.Len(t, salons.setDocs, 1)
	assert.Equal(t, "https://cdn.example.com/salon-logos/abc123.png", salons.setDocs[0]["logoUrl"])
	assert.Equal(t, "salon-logos/abc123", salons.setDocs[0]["logoPublicId"])
}

func TestUploadLogoMissingFile(t *testing.T) {
	r := mediaRouter(&fakeMediaService{}, &stubSalonRepo{})

	req := httptest.NewRequest(http.MethodPost, "/media/logo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteLogoDestroysAndClears(t *testing.T) {
	media := &fakeMediaService{}
	salons := &stubSalonRepo{salon: &models.Salon{
		ID:           "salon-1",
		LogoURL:      "https://cdn.example.com/salon-logos/abc123.png",
		LogoPublicID: "salon-logos/abc123",
	}}
	r := mediaRouter(media, salons)

	req := httptest.NewRequest(http.MethodDelete, "/media/logo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"salon-logos/abc123"}, media.deleted)
	require.Len(t, salons.setDocs, 1)
	assert.Equal(t, "", salons.setDocs[0]["logoUrl"])
	assert.Equal(t, "", salons.setDocs[0]["logoPublicId"])
}

func TestDeleteLogoWithoutLogoIs404(t *testing.T) {
	media := &fakeMediaService{}
	salons := &stubSalonRepo{salon: &models.Salon{ID: "salon-1"}}
	r := mediaRouter(media, salons)

	req := httptest.NewRequest(http.MethodDelete, "/media/logo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, media.deleted)
}

func TestDeleteLogoStorageFailure(t *testing.T) {
	media := &fakeMediaService{deleteErr: errors.New("cloudinary unavailable")}
	salons := &stubSalonRepo{salon: &models.Salon{ID: "salon-1", LogoPublicID: "salon-logos/abc123"}}
	r := mediaRouter(media, salons)

	req := httptest.NewRequest(http.MethodDelete, "/media/logo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, salons.setDocs, "logo fields stay intact when the destroy fails")
}
