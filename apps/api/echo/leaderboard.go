package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core"
	"github.com/kanisa-app/kanisa/core/leaderboard"
	"github.com/kanisa-app/kanisa/core/user"
)

const leaderboardLimit = 20

type leaderboardApi struct {
	conf    *core.Config
	svc     *leaderboard.Service
	userSvc *user.Service
}

func registerLeaderboardAPI(g *echo.Group, _ echo.MiddlewareFunc, deps ServerDeps) {
	api := leaderboardApi{
		conf:    deps.Conf,
		svc:     deps.BoardSvc,
		userSvc: deps.UserSvc,
	}
	g.GET("/leaderboard", api.query)
}

// LeaderboardResponse is the ranked top of the board plus the caller's own
// standing (when authenticated and present on the board).
type LeaderboardResponse struct {
	Entries  []leaderboard.RankedEntry `json:"entries"`
	Standing *leaderboard.RankedEntry  `json:"standing,omitempty"`
}

func (api *leaderboardApi) query(ctx echo.Context) error {
	ranked, err := api.svc.Rank(ctx.QueryParam("quiz_id"))
	if err != nil {
		return errors.Wrap(err, "ranking leaderboard")
	}

	res := LeaderboardResponse{Entries: ranked}
	if len(ranked) > leaderboardLimit {
		res.Entries = ranked[:leaderboardLimit]
	}

	if usr := optionalContextUser(ctx, api.conf, api.userSvc); usr != nil {
		if standing, ok := leaderboard.Standing(ranked, usr.ID); ok {
			res.Standing = &standing
		}
	}
	return ctx.JSON(http.StatusOK, res)
}
