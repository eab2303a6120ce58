package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(secureGroup *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	{
		secureGroup.GET("/equipment", equipmentCtrl.GetEquipments)
		secureGroup.POST("/equipment", equipmentCtrl.CreateEquipment)
		secureGroup.GET("/equipment/:id", equipmentCtrl.FindEquipment)
		secureGroup.GET("/equipment/:id/maintenance-requests", equipmentCtrl.GetMaintenanceRequests)
		secureGroup.PATCH("/equipment/:id/scrap", equipmentCtrl.ScrapEquipment)
	}
}
