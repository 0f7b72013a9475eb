package routes

import (
	"github.com/labstack/echo/v4"

	"computadores-api/internal/controllers"
)

func runComputadorRouter(g *echo.Group, ctrl *controllers.ComputadorController) {
	g.GET("/computadores", ctrl.GetComputadores)
	g.GET("/computadores/:id", ctrl.FindComputador)
	g.POST("/computadores", ctrl.CreateComputador)
	g.PUT("/computadores/:id", ctrl.UpdateComputador)
	g.DELETE("/computadores/:id", ctrl.DeleteComputador)
}
