package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todolist-api/internal/domain/model"
)

type IndexController struct {
	api *echo.Group
}

func NewIndexController(api *echo.Group) *IndexController {
	return &IndexController{api: api}
}

// InitIndexRoutes initializes the API root
func (controller *IndexController) InitIndexRoutes() {
	controller.api.GET("", controller.Index)
	controller.api.GET("/", controller.Index)
}

// Index godoc
// @Summary API root
// @Description Links to every resource collection
// @Tags index
// @Produce application/hal+json
// @Success 200 {object} model.IndexDto
// @Router / [get]
func (controller *IndexController) Index(c echo.Context) error {
	return renderHAL(c, http.StatusOK, model.NewIndexDto(linker(c)))
}
