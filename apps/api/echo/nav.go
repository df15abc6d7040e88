package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kanisa-app/kanisa/core"
	"github.com/kanisa-app/kanisa/core/nav"
	"github.com/kanisa-app/kanisa/core/user"
)

type navApi struct {
	conf    *core.Config
	userSvc *user.Service
}

func registerNavAPI(g *echo.Group, deps ServerDeps) {
	api := navApi{conf: deps.Conf, userSvc: deps.UserSvc}
	g.GET("/navigation", api.query)
}

func (api *navApi) query(ctx echo.Context) error {
	usr := optionalContextUser(ctx, api.conf, api.userSvc)
	return ctx.JSON(http.StatusOK, nav.VisibleRoutes(usr))
}
