package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tavolo/internal/delivery/http/middleware"
	"tavolo/internal/delivery/http/validator"
	"tavolo/internal/domain/entity"
	domainerrors "tavolo/internal/domain/errors"
	"tavolo/internal/domain/repository"
	"tavolo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockReservationUsecase struct {
	mock.Mock
}

func (m *mockReservationUsecase) List(ctx context.Context, memberID uuid.UUID, page int) (*repository.Page[*entity.Reservation], error) {
	args := m.Called(ctx, memberID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.Page[*entity.Reservation]), args.Error(1)
}

func (m *mockReservationUsecase) Create(ctx context.Context, memberID uuid.UUID, input usecase.CreateReservationInput) (*entity.Reservation, error) {
	args := m.Called(ctx, memberID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Reservation), args.Error(1)
}

func (m *mockReservationUsecase) Cancel(ctx context.Context, memberID, reservationID uuid.UUID) error {
	args := m.Called(ctx, memberID, reservationID)

	return args.Error(0)
}

// newHandlerEcho builds an echo instance with the production validator and
// error handler, so handler tests observe the same boundary behavior as a
// running server.
func newHandlerEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func asPrincipal(p entity.Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetPrincipal(c, p)

			return next(c)
		}
	}
}

func TestReservationHandler_Delete_NonOwnerRedirectsToIndex(t *testing.T) {
	memberID := uuid.New()
	reservationID := uuid.New()

	uc := new(mockReservationUsecase)
	uc.On("Cancel", mock.Anything, memberID, reservationID).
		Return(domainerrors.ErrReservationOwnership)

	e := newHandlerEcho()
	h := NewReservationHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.DELETE("/reservations/:id", h.Delete, asPrincipal(entity.MemberPrincipal(memberID)))

	req := httptest.NewRequest(http.MethodDelete, "/reservations/"+reservationID.String(), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, domainerrors.ReservationIndexPath, rec.Header().Get("Location"))
}

func TestReservationHandler_Create_OwnerTakenFromPrincipal(t *testing.T) {
	memberID := uuid.New()
	restaurantID := uuid.New()

	uc := new(mockReservationUsecase)
	uc.On("Create", mock.Anything, memberID, usecase.CreateReservationInput{
		RestaurantID: restaurantID,
		Date:         "2026-10-01",
		Time:         "18:30",
		PartySize:    4,
	}).Return(&entity.Reservation{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		MemberID:     memberID,
		PartySize:    4,
	}, nil)

	e := newHandlerEcho()
	h := NewReservationHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/reservations", h.Create, asPrincipal(entity.MemberPrincipal(memberID)))

	body := `{"restaurant_id":"` + restaurantID.String() + `","date":"2026-10-01","time":"18:30","party_size":4}`
	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestReservationHandler_Create_MissingFieldsRejectedBeforeUsecase(t *testing.T) {
	uc := new(mockReservationUsecase)

	e := newHandlerEcho()
	h := NewReservationHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/reservations", h.Create, asPrincipal(entity.MemberPrincipal(uuid.New())))

	req := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(`{"date":"2026-10-01"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
