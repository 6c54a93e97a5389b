package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/noill-admin/internal/handler"
	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/service/appointment"
	"github.com/jwalitptl/noill-admin/internal/view"
	"github.com/jwalitptl/noill-admin/pkg/httputil"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.GET("/options", h.GetOptions)
		appointments.GET("/:id", h.GetAppointment)
		appointments.POST("", h.CreateAppointment)
	}
}

func (h *Handler) RegisterPages(r *gin.RouterGroup) {
	r.GET("/appointments", h.Page)
	r.POST("/appointments", h.SubmitPage)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	result, err := h.service.List(c, handler.ParseFilter(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	a, err := h.service.Get(c, id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, a)
}

func (h *Handler) GetOptions(c *gin.Context) {
	opts, err := h.service.Options(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, opts)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		httputil.RespondWithValidation(c, errs)
		return
	}
	httputil.RespondWithStatus(c, http.StatusAccepted, h.service.SubmitForm(c, req))
}

func (h *Handler) Page(c *gin.Context) {
	h.render(c, http.StatusOK, handler.NewPage(c, model.SectionAppointments))
}

func (h *Handler) SubmitPage(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		page := handler.NewPage(c, model.SectionAppointments)
		page.Dialog = true
		page.Errors = validator.ByField(errs)
		page.Values = handler.FormValues(c)
		h.render(c, http.StatusBadRequest, page)
		return
	}

	h.service.SubmitForm(c, req)
	c.Redirect(http.StatusSeeOther, "/appointments")
}

func (h *Handler) render(c *gin.Context, status int, page view.Page) {
	result, err := h.service.List(c, page.Filter)
	if err != nil {
		handler.RenderError(c, model.SectionAppointments, err)
		return
	}
	opts, err := h.service.Options(c)
	if err != nil {
		handler.RenderError(c, model.SectionAppointments, err)
		return
	}

	page.Data = view.AppointmentsData{
		Result:   result,
		Options:  opts,
		Statuses: model.AppointmentStatuses,
	}
	handler.RenderPage(c, status, view.PageAppointments, page)
}
