package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dragontravel/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReservationRepo struct {
	deleted   []string
	deleteErr error
}

func (s *stubReservationRepo) Create(_ context.Context, res models.Reservation) (string, error) {
	return res.ID, nil
}

func (s *stubReservationRepo) GetByID(_ context.Context, _ string) (*models.Reservation, error) {
	return nil, errors.New("not found")
}

func (s *stubReservationRepo) GetAll(_ context.Context) ([]models.Reservation, error) {
	return nil, nil
}

func (s *stubReservationRepo) DeleteByID(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubStorage struct {
	deleted []string
	err     error
}

func (s *stubStorage) UploadAudio(_ context.Context, _, publicID string) (string, error) {
	return "https://cdn.test/" + publicID, nil
}

func (s *stubStorage) DeleteAudio(_ context.Context, publicID string) error {
	s.deleted = append(s.deleted, publicID)
	return s.err
}

func deleteReservation(h *ReservationHandler, id string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/reservations/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}
	h.DeleteReservation(c)
	return w
}

func TestDeleteReservationCleansUpAudio(t *testing.T) {
	repo := &stubReservationRepo{}
	store := &stubStorage{}
	h := NewReservationHandler(repo, store, zap.NewNop())

	w := deleteReservation(h, "res-1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"res-1"}, repo.deleted)
	require.Equal(t, []string{"dragontravel/audio/res-1"}, store.deleted)
}

func TestDeleteReservationAudioFailureIsNotFatal(t *testing.T) {
	repo := &stubReservationRepo{}
	store := &stubStorage{err: errors.New("cloudinary down")}
	h := NewReservationHandler(repo, store, zap.NewNop())

	w := deleteReservation(h, "res-1")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteReservationMissingDocument(t *testing.T) {
	repo := &stubReservationRepo{deleteErr: errors.New("no documents")}
	store := &stubStorage{}
	h := NewReservationHandler(repo, store, zap.NewNop())

	w := deleteReservation(h, "res-1")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Empty(t, store.deleted)
}
