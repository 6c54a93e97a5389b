package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/noill-admin/internal/middleware"
	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/view"
	apperrors "github.com/jwalitptl/noill-admin/pkg/errors"
	"github.com/jwalitptl/noill-admin/pkg/httputil"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

// Query parameters shared by the HTML screens.
const (
	QueryDialog = "dialog"
	QueryView   = "view"
	DialogNew   = "new"
)

// ParseFilter reads search, status and role from the query string.
func ParseFilter(c *gin.Context) model.ListFilter {
	var filter model.ListFilter
	// Every field is a plain string, so binding cannot fail.
	_ = c.ShouldBindQuery(&filter)
	return filter
}

// ParseID reads the integer :id path parameter.
func ParseID(c *gin.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.BadRequest("invalid id "+strconv.Quote(raw), err)
	}
	return id, nil
}

// BindForm binds a dialog submission, JSON or form encoded, and returns
// its field errors. Nil means the draft is acceptable.
func BindForm(c *gin.Context, req any) []validator.FieldError {
	if err := c.ShouldBind(req); err != nil {
		return validator.Translate(err)
	}
	return nil
}

// FormValues returns the first value of every posted form field so a
// rejected dialog can be shown again with the user's input.
func FormValues(c *gin.Context) map[string]string {
	values := make(map[string]string)
	if err := c.Request.ParseForm(); err != nil {
		return values
	}
	for key, v := range c.Request.PostForm {
		if len(v) > 0 {
			values[key] = v[0]
		}
	}
	return values
}

// RespondError attaches err for the error middleware to log and answers
// with the JSON envelope.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)
	httputil.RespondWithError(c, err)
}

// NewPage prepares the shell for section with the request's filter and
// dialog state.
func NewPage(c *gin.Context, section string) view.Page {
	page := view.NewPage(section)
	page.RequestID = middleware.GetRequestID(c)
	page.Filter = ParseFilter(c)
	page.Tab = c.Query(QueryView)
	page.Dialog = c.Query(QueryDialog) == DialogNew
	return page
}

// RenderPage renders one screen inside the shell.
func RenderPage(c *gin.Context, status int, name string, page view.Page) {
	c.HTML(status, name, page)
}

// RenderError renders the not-found page for missing or malformed ids and
// a generic failure page otherwise, inside the shell of section.
func RenderError(c *gin.Context, section string, err error) {
	_ = c.Error(err)

	page := view.NewPage(section)
	page.RequestID = middleware.GetRequestID(c)

	var appErr *apperrors.AppError
	switch {
	case apperrors.IsNotFound(err) && apperrors.As(err, &appErr):
		page.Message = appErr.Message
		RenderPage(c, http.StatusNotFound, view.PageNotFound, page)
	case apperrors.StatusCode(err) == http.StatusBadRequest:
		page.Message = "The requested record does not exist"
		RenderPage(c, http.StatusNotFound, view.PageNotFound, page)
	default:
		page.Message = "Something went wrong. Please try again."
		RenderPage(c, apperrors.StatusCode(err), view.PageNotFound, page)
	}
}
