package controllers

import (
	"net/http"
	"strconv"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	requestService   services.RequestServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	requestService services.RequestServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		requestService:   requestService,
		logger:           logger,
	}
}

func (ctrl *EquipmentController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *EquipmentController) GetEquipments(c echo.Context) error {
	list, err := ctrl.equipmentService.GetEquipments(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, list)
}

func (ctrl *EquipmentController) FindEquipment(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid equipment id"))
	}

	equipment, err := ctrl.equipmentService.FindEquipment(c.Request().Context(), id)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, equipment)
}

// GetMaintenanceRequests lists a piece of equipment's request history,
// newest first. Zero requests is an empty list, not an error.
func (ctrl *EquipmentController) GetMaintenanceRequests(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid equipment id"))
	}

	list, err := ctrl.requestService.GetRequestsByEquipment(c.Request().Context(), id)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, list)
}

func (ctrl *EquipmentController) CreateEquipment(c echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid request body"))
	}
	if payload.MaintenanceTeamID == 0 {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("maintenance_team_id is required"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	role, err := roleFromCtx(c)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	equipment, err := ctrl.equipmentService.CreateEquipment(c.Request().Context(), role, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, equipment)
}

func (ctrl *EquipmentController) ScrapEquipment(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid equipment id"))
	}

	equipment, err := ctrl.equipmentService.ScrapEquipment(c.Request().Context(), id)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, equipment)
}

func roleFromCtx(c echo.Context) (entities.Role, error) {
	role, err := utils.GetUserRoleFromCtx(c.Request().Context())
	if err != nil {
		return "", err
	}
	return entities.Role(role), nil
}
