package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRequestService struct {
	moveStatusErr error
	lastActor     services.Actor
	lastID        uint64
	lastStatus    string
}

func (s *stubRequestService) GetRequests(context.Context) ([]entities.MaintenanceRequest, error) {
	return []entities.MaintenanceRequest{}, nil
}

func (s *stubRequestService) GetRequestsByEquipment(context.Context, uint64) ([]entities.MaintenanceRequest, error) {
	return []entities.MaintenanceRequest{}, nil
}

func (s *stubRequestService) FindRequest(context.Context, uint64) (*entities.MaintenanceRequest, error) {
	return &entities.MaintenanceRequest{ID: 1}, nil
}

func (s *stubRequestService) CreateRequest(_ context.Context, actorID uint64, _ dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	return &entities.MaintenanceRequest{ID: 1, RequestedByUserID: actorID, Status: entities.StatusNew}, nil
}

func (s *stubRequestService) MoveStatus(_ context.Context, actor services.Actor, id uint64, newStatus string) (*entities.MaintenanceRequest, error) {
	s.lastActor = actor
	s.lastID = id
	s.lastStatus = newStatus
	if s.moveStatusErr != nil {
		return nil, s.moveStatusErr
	}
	return &entities.MaintenanceRequest{ID: id, Status: entities.RequestStatus(newStatus)}, nil
}

func newMoveStatusContext(t *testing.T, body string, userID uint64, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())

	req := httptest.NewRequest(http.MethodPatch, "/api/requests/1/move-status", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	ctx := context.WithValue(req.Context(), contextkeys.UserIDKey, userID)
	ctx = context.WithValue(ctx, contextkeys.UserRoleKey, role)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/requests/:id/move-status")
	c.SetParamNames("id")
	c.SetParamValues("1")
	return c, rec
}

func TestRequestController_MoveStatus(t *testing.T) {
	stub := &stubRequestService{}
	ctrl := NewRequestController(stub, zap.NewNop())

	c, rec := newMoveStatusContext(t, `{"newStatus":"in_progress"}`, 42, "technician")
	require.NoError(t, ctrl.MoveStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(1), stub.lastID)
	assert.Equal(t, "in_progress", stub.lastStatus)
	assert.Equal(t, services.Actor{UserID: 42, Role: entities.RoleTechnician}, stub.lastActor)

	var updated entities.MaintenanceRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, entities.StatusInProgress, updated.Status)
}

func TestRequestController_MoveStatus_MissingBodyField(t *testing.T) {
	stub := &stubRequestService{}
	ctrl := NewRequestController(stub, zap.NewNop())

	c, rec := newMoveStatusContext(t, `{}`, 42, "technician")
	require.NoError(t, ctrl.MoveStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestController_MoveStatus_ServiceErrorIsMapped(t *testing.T) {
	stub := &stubRequestService{moveStatusErr: apperrors.NewForbiddenError("no team assigned")}
	ctrl := NewRequestController(stub, zap.NewNop())

	c, rec := newMoveStatusContext(t, `{"newStatus":"scrap"}`, 42, "requester")
	require.NoError(t, ctrl.MoveStatus(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no team assigned", body.Error)
}
