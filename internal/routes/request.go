package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runRequestRouter(secureGroup *echo.Group, requestCtrl *controllers.RequestController) {
	{
		secureGroup.GET("/requests", requestCtrl.GetRequests)
		secureGroup.POST("/requests", requestCtrl.CreateRequest)
		secureGroup.GET("/requests/:id", requestCtrl.FindRequest)
		secureGroup.PATCH("/requests/:id/move-status", requestCtrl.MoveStatus)
	}
}
