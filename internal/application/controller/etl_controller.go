package controller

import (
	"weather-etl/internal/application/handler"

	"github.com/labstack/echo/v4"
)

// EtlController exposes manual triggers for both units. The HTTP status mirrors the
// invocation result.
type EtlController struct {
	api           *echo.Group
	syncHandler   *handler.SyncHandler
	exportHandler *handler.ExportHandler
}

func NewEtlController(api *echo.Group, syncHandler *handler.SyncHandler, exportHandler *handler.ExportHandler) *EtlController {
	return &EtlController{api: api, syncHandler: syncHandler, exportHandler: exportHandler}
}

// InitEtlRoutes initializes the trigger routes
func (controller *EtlController) InitEtlRoutes() {
	controller.api.POST("/sync", controller.Sync)
	controller.api.POST("/export", controller.Export)
}

// Sync godoc
// @Summary Run the sync unit
// @Description Fetches the current weather and stores one observation
// @Tags etl
// @Produce json
// @Success 200 {object} model.InvocationResponse
// @Failure 500 {object} model.InvocationResponse
// @Router /sync [post]
func (controller *EtlController) Sync(c echo.Context) error {
	response := controller.syncHandler.Invoke(c.Request().Context())
	return c.JSON(response.StatusCode, response)
}

// Export godoc
// @Summary Run the export unit
// @Description Writes the last day of observations as a CSV object
// @Tags etl
// @Produce json
// @Success 200 {object} model.InvocationResponse
// @Failure 500 {object} model.InvocationResponse
// @Router /export [post]
func (controller *EtlController) Export(c echo.Context) error {
	response := controller.exportHandler.Invoke(c.Request().Context())
	return c.JSON(response.StatusCode, response)
}
