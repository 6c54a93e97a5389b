package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/noill-admin/internal/handler"
	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/service/staff"
	"github.com/jwalitptl/noill-admin/internal/view"
	"github.com/jwalitptl/noill-admin/pkg/httputil"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

const TabSchedule = "schedule"

type Handler struct {
	service staff.StaffService
}

func NewHandler(service staff.StaffService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	members := r.Group("/staff")
	{
		members.GET("", h.ListStaff)
		members.GET("/schedule", h.GetSchedule)
		members.GET("/:id", h.GetStaffMember)
		members.POST("", h.CreateStaffMember)
	}
}

func (h *Handler) RegisterPages(r *gin.RouterGroup) {
	r.GET("/staff", h.Page)
	r.POST("/staff", h.SubmitPage)
}

func (h *Handler) ListStaff(c *gin.Context) {
	result, err := h.service.List(c, handler.ParseFilter(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}

func (h *Handler) GetStaffMember(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	member, err := h.service.Get(c, id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, member)
}

func (h *Handler) GetSchedule(c *gin.Context) {
	days, err := h.service.Schedule(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, days)
}

func (h *Handler) CreateStaffMember(c *gin.Context) {
	var req model.CreateStaffRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		httputil.RespondWithValidation(c, errs)
		return
	}
	httputil.RespondWithStatus(c, http.StatusAccepted, h.service.SubmitForm(c, req))
}

func (h *Handler) Page(c *gin.Context) {
	h.render(c, http.StatusOK, handler.NewPage(c, model.SectionStaff))
}

func (h *Handler) SubmitPage(c *gin.Context) {
	var req model.CreateStaffRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		page := handler.NewPage(c, model.SectionStaff)
		page.Dialog = true
		page.Errors = validator.ByField(errs)
		page.Values = handler.FormValues(c)
		h.render(c, http.StatusBadRequest, page)
		return
	}

	h.service.SubmitForm(c, req)
	c.Redirect(http.StatusSeeOther, "/staff")
}

func (h *Handler) render(c *gin.Context, status int, page view.Page) {
	var data view.StaffData
	var err error
	if page.Tab == TabSchedule {
		data.Schedule, err = h.service.Schedule(c)
	} else {
		data.Result, err = h.service.List(c, page.Filter)
	}
	if err != nil {
		handler.RenderError(c, model.SectionStaff, err)
		return
	}

	page.Data = data
	handler.RenderPage(c, status, view.PageStaff, page)
}
