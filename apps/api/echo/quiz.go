package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/kanisa-app/kanisa/core"
	"github.com/kanisa-app/kanisa/core/course"
	"github.com/kanisa-app/kanisa/core/quiz"
	"github.com/kanisa-app/kanisa/core/user"
)

type quizApi struct {
	conf      *core.Config
	courseSvc *course.Service
	userSvc   *user.Service
	attempts  *quiz.AttemptStore
}

func registerQuizAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps ServerDeps) {
	api := quizApi{
		conf:      deps.Conf,
		courseSvc: deps.CourseSvc,
		userSvc:   deps.UserSvc,
		attempts:  deps.Attempts,
	}

	ag := g.Group("/courses/:id/quiz", jwt)
	ag.POST("/attempts", api.start)
	ag.GET("/attempts/:aid", api.retrieve)
	ag.PUT("/attempts/:aid/answer", api.answer)
	ag.POST("/attempts/:aid/submit", api.submit)
}

// AttemptResponse is an attempt snapshot plus the derived navigation
// state the client needs to render the question sequence.
type AttemptResponse struct {
	quiz.AttemptView
	Answered   int  `json:"answered"`
	CanAdvance bool `json:"can_advance"`
}

func newAttemptResponse(att *quiz.Attempt) AttemptResponse {
	view := att.View()
	_, canAdvance := view.Selections[view.Current]
	return AttemptResponse{
		AttemptView: view,
		Answered:    len(view.Selections),
		CanAdvance:  canAdvance,
	}
}

// Handlers

func (api *quizApi) start(ctx echo.Context) error {
	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	c, err := api.courseSvc.GetVisibleByID(ctx.Param("id"), &ctxUsr)
	if err != nil {
		return err
	}
	if c.Quiz == nil {
		return course.ErrNoQuiz
	}
	if !course.QuizUnlocked(c) {
		return errHttpForbidden
	}

	att := api.attempts.Start(*c.Quiz)
	return ctx.JSON(http.StatusCreated, newAttemptResponse(att))
}

func (api *quizApi) retrieve(ctx echo.Context) error {
	att, err := api.attempts.Get(ctx.Param("aid"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newAttemptResponse(att))
}

func (api *quizApi) answer(ctx echo.Context) error {
	att, err := api.attempts.Get(ctx.Param("aid"))
	if err != nil {
		return err
	}

	var data AnswerRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AnswerRequest")
	}

	if err := att.Select(data.Question, data.Option); err != nil {
		return err
	}
	att.GoTo(data.Question)
	return ctx.JSON(http.StatusOK, newAttemptResponse(att))
}

func (api *quizApi) submit(ctx echo.Context) error {
	ctxUsr, err := getContextUser(ctx, api.userSvc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}

	att, err := api.attempts.Get(ctx.Param("aid"))
	if err != nil {
		return err
	}

	result, err := att.Submit()
	if err != nil {
		return err
	}

	taken := ctxUsr.QuizzesTaken + 1
	usr, err := api.userSvc.Patch(ctxUsr.ID, user.PatchUser{QuizzesTaken: &taken})
	if err != nil {
		return errors.Wrap(err, "recording quiz taken")
	}
	ctx.Set(contextUserKey, usr)

	// only destroy the attempt once the taken count is persisted
	api.attempts.Remove(att.ID())

	return ctx.JSON(http.StatusOK, result)
}

type AnswerRequest struct {
	Question int `json:"question"`
	Option   int `json:"option"`
}
