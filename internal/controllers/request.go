package controllers

import (
	"net/http"
	"strconv"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{
		requestService: requestService,
		logger:         logger,
	}
}

func (ctrl *RequestController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *RequestController) GetRequests(c echo.Context) error {
	list, err := ctrl.requestService.GetRequests(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, list)
}

func (ctrl *RequestController) FindRequest(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid request id"))
	}

	request, err := ctrl.requestService.FindRequest(c.Request().Context(), id)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, request)
}

func (ctrl *RequestController) CreateRequest(c echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid request body"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	actorID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	request, err := ctrl.requestService.CreateRequest(c.Request().Context(), actorID, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, request)
}

func (ctrl *RequestController) MoveStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid request id"))
	}

	var payload dto.MoveStatusDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid request body"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	actorID, err := utils.GetUserIDFromCtx(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	role, err := roleFromCtx(c)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	actor := services.Actor{UserID: actorID, Role: role}
	request, err := ctrl.requestService.MoveStatus(c.Request().Context(), actor, id, payload.NewStatus)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, request)
}
