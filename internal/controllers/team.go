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

type TeamController struct {
	teamService services.TeamServiceInterface
	logger      *zap.Logger
}

func NewTeamController(teamService services.TeamServiceInterface, logger *zap.Logger) *TeamController {
	return &TeamController{
		teamService: teamService,
		logger:      logger,
	}
}

func (ctrl *TeamController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *TeamController) GetTeams(c echo.Context) error {
	teams, err := ctrl.teamService.GetTeams(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, teams)
}

func (ctrl *TeamController) CreateTeam(c echo.Context) error {
	var payload dto.CreateTeamDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid request body"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	role, err := roleFromCtx(c)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	team, err := ctrl.teamService.CreateTeam(c.Request().Context(), role, payload)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, team)
}

func (ctrl *TeamController) AddMember(c echo.Context) error {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid team id"))
	}

	var payload dto.AddTeamMemberDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid request body"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	role, err := roleFromCtx(c)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	if err := ctrl.teamService.AddMember(c.Request().Context(), role, teamID, payload.UserID); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, map[string]string{"message": "member added"})
}

func (ctrl *TeamController) RemoveMember(c echo.Context) error {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid team id"))
	}
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid user id"))
	}

	role, err := roleFromCtx(c)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}

	if err := ctrl.teamService.RemoveMember(c.Request().Context(), role, teamID, userID); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, map[string]string{"message": "member removed"})
}

func (ctrl *TeamController) GetSummary(c echo.Context) error {
	teamID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("invalid team id"))
	}

	summary, err := ctrl.teamService.GetSummary(c.Request().Context(), teamID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, summary)
}
