package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core/activity"
)

type activityApi struct {
	svc *activity.Service
}

func registerActivityAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := activityApi{svc: deps.ActivitySvc}
	g.GET("/activities", api.query, jwt)
}

// ActivityResponse is an activity with its relative time label resolved
// at response time.
type ActivityResponse struct {
	activity.Activity
	TimeAgo string `json:"time_ago"`
}

func (api *activityApi) query(ctx echo.Context) error {
	activities, err := api.svc.QueryRecent()
	if err != nil {
		return errors.Wrap(err, "querying activities")
	}

	now := time.Now()
	res := make([]ActivityResponse, 0, len(activities))
	for _, act := range activities {
		res = append(res, ActivityResponse{
			Activity: act,
			TimeAgo:  activity.TimeAgo(act.Timestamp, now),
		})
	}
	return ctx.JSON(http.StatusOK, res)
}
