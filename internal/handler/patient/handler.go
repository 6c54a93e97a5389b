package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/noill-admin/internal/handler"
	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/service/patient"
	"github.com/jwalitptl/noill-admin/internal/view"
	"github.com/jwalitptl/noill-admin/pkg/httputil"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

type Handler struct {
	service patient.PatientService
}

func NewHandler(service patient.PatientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("", h.ListPatients)
		patients.GET("/:id", h.GetPatient)
		patients.POST("", h.CreatePatient)
	}
}

func (h *Handler) RegisterPages(r *gin.RouterGroup) {
	r.GET("/patients", h.Page)
	r.GET("/patients/:id", h.DetailPage)
	r.POST("/patients", h.SubmitPage)
}

func (h *Handler) ListPatients(c *gin.Context) {
	result, err := h.service.List(c, handler.ParseFilter(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}

func (h *Handler) GetPatient(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	p, err := h.service.Get(c, id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, p)
}

// CreatePatient checks the field types of the Add Patient draft and echoes
// it back. Nothing is stored.
func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		httputil.RespondWithValidation(c, errs)
		return
	}
	httputil.RespondWithStatus(c, http.StatusAccepted, h.service.SubmitForm(c, req))
}

func (h *Handler) Page(c *gin.Context) {
	page := handler.NewPage(c, model.SectionPatients)
	h.render(c, http.StatusOK, page)
}

func (h *Handler) DetailPage(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.RenderError(c, model.SectionPatients, err)
		return
	}

	p, err := h.service.Get(c, id)
	if err != nil {
		handler.RenderError(c, model.SectionPatients, err)
		return
	}

	page := handler.NewPage(c, model.SectionPatients)
	page.Data = p
	handler.RenderPage(c, http.StatusOK, view.PagePatient, page)
}

// SubmitPage closes the dialog with a redirect when the draft is
// acceptable and shows it again with field messages otherwise.
func (h *Handler) SubmitPage(c *gin.Context) {
	var req model.CreatePatientRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		page := handler.NewPage(c, model.SectionPatients)
		page.Dialog = true
		page.Errors = validator.ByField(errs)
		page.Values = handler.FormValues(c)
		h.render(c, http.StatusBadRequest, page)
		return
	}

	h.service.SubmitForm(c, req)
	c.Redirect(http.StatusSeeOther, "/patients")
}

func (h *Handler) render(c *gin.Context, status int, page view.Page) {
	result, err := h.service.List(c, page.Filter)
	if err != nil {
		handler.RenderError(c, model.SectionPatients, err)
		return
	}
	page.Data = result
	handler.RenderPage(c, status, view.PagePatients, page)
}
