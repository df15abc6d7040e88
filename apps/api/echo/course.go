package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core"
	"github.com/kanisa-app/kanisa/core/course"
	"github.com/kanisa-app/kanisa/core/user"
)

type courseApi struct {
	conf    *core.Config
	svc     *course.Service
	userSvc *user.Service
}

func registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := courseApi{
		conf:    deps.Conf,
		svc:     deps.CourseSvc,
		userSvc: deps.UserSvc,
	}

	cg := g.Group("/courses")

	// catalog endpoints are open; visibility still varies with the caller
	cg.GET("", api.query)
	cg.GET("/:id", api.retrieve)
	cg.GET("/:id/lessons/:lid", api.retrieveLesson)

	// authed endpoints
	cg.POST("/:id/enroll", api.enroll, jwt)
}

// CourseResponse decorates a course with its derived state.
type CourseResponse struct {
	course.Course
	Progress     int  `json:"progress"`
	QuizUnlocked bool `json:"is_quiz_unlocked"`
	IsEnrolled   bool `json:"is_enrolled"`
}

func newCourseResponse(c course.Course, usr *user.User) CourseResponse {
	var enrolled bool
	if usr != nil {
		enrolled = usr.IsEnrolled(c.ID)
	}
	return CourseResponse{
		Course:       c,
		Progress:     course.Progress(c),
		QuizUnlocked: course.QuizUnlocked(c),
		IsEnrolled:   enrolled,
	}
}

// Handlers

func (api *courseApi) query(ctx echo.Context) error {
	usr := optionalContextUser(ctx, api.conf, api.userSvc)

	courses, err := api.svc.QueryVisible(usr)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}

	res := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		res = append(res, newCourseResponse(c, usr))
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	usr := optionalContextUser(ctx, api.conf, api.userSvc)

	c, err := api.svc.GetVisibleByID(ctx.Param("id"), usr)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newCourseResponse(c, usr))
}

func (api *courseApi) retrieveLesson(ctx echo.Context) error {
	usr := optionalContextUser(ctx, api.conf, api.userSvc)

	lesson, err := api.svc.GetLesson(ctx.Param("id"), ctx.Param("lid"), usr)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, lesson)
}

func (api *courseApi) enroll(ctx echo.Context) error {
	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	c, err := api.svc.GetVisibleByID(ctx.Param("id"), &ctxUsr)
	if err != nil {
		return err
	}

	if !ctxUsr.IsEnrolled(c.ID) {
		ctxUsr.Enroll(c.ID)
		usr, err := api.userSvc.Patch(ctxUsr.ID, user.PatchUser{EnrolledCourseIDs: &ctxUsr.EnrolledCourseIDs})
		if err != nil {
			return errors.Wrap(err, "enrolling user")
		}
		ctx.Set(contextUserKey, usr)
		ctxUsr = usr
	}

	return ctx.JSON(http.StatusOK, newCourseResponse(c, &ctxUsr))
}
