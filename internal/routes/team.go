package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTeamRouter(secureGroup *echo.Group, teamCtrl *controllers.TeamController) {
	{
		secureGroup.GET("/teams", teamCtrl.GetTeams)
		secureGroup.POST("/teams", teamCtrl.CreateTeam)
		secureGroup.GET("/teams/:id/summary", teamCtrl.GetSummary)
		secureGroup.POST("/teams/:id/members", teamCtrl.AddMember)
		secureGroup.DELETE("/teams/:id/members/:userId", teamCtrl.RemoveMember)
	}
}
