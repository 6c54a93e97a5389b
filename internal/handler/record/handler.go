package record

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/noill-admin/internal/handler"
	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/service/medical"
	"github.com/jwalitptl/noill-admin/internal/view"
	"github.com/jwalitptl/noill-admin/pkg/httputil"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

const (
	TabHistory     = "history"
	QueryPatientID = "patient_id"
)

type Handler struct {
	service medical.MedicalService
}

func NewHandler(service medical.MedicalService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	records := r.Group("/records")
	{
		records.GET("", h.ListRecords)
		records.GET("/history", h.GetHistory)
		records.GET("/:id", h.GetRecord)
		records.POST("", h.CreateRecord)
	}
}

func (h *Handler) RegisterPages(r *gin.RouterGroup) {
	r.GET("/records", h.Page)
	r.GET("/records/:id", h.DetailPage)
	r.POST("/records", h.SubmitPage)
}

func (h *Handler) ListRecords(c *gin.Context) {
	result, err := h.service.List(c, handler.ParseFilter(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}

func (h *Handler) GetRecord(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	rec, err := h.service.Get(c, id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, rec)
}

// GetHistory returns the timeline of ?patient_id=, P001 when omitted.
func (h *Handler) GetHistory(c *gin.Context) {
	history, err := h.service.History(c, c.Query(QueryPatientID))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, history)
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var req model.CreateRecordRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		httputil.RespondWithValidation(c, errs)
		return
	}
	httputil.RespondWithStatus(c, http.StatusAccepted, h.service.SubmitForm(c, req))
}

func (h *Handler) Page(c *gin.Context) {
	h.render(c, http.StatusOK, handler.NewPage(c, model.SectionRecords))
}

func (h *Handler) DetailPage(c *gin.Context) {
	id, err := handler.ParseID(c)
	if err != nil {
		handler.RenderError(c, model.SectionRecords, err)
		return
	}

	rec, err := h.service.Get(c, id)
	if err != nil {
		handler.RenderError(c, model.SectionRecords, err)
		return
	}

	page := handler.NewPage(c, model.SectionRecords)
	page.Data = rec
	handler.RenderPage(c, http.StatusOK, view.PageRecord, page)
}

func (h *Handler) SubmitPage(c *gin.Context) {
	var req model.CreateRecordRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		page := handler.NewPage(c, model.SectionRecords)
		page.Dialog = true
		page.Errors = validator.ByField(errs)
		page.Values = handler.FormValues(c)
		h.render(c, http.StatusBadRequest, page)
		return
	}

	h.service.SubmitForm(c, req)
	c.Redirect(http.StatusSeeOther, "/records")
}

func (h *Handler) render(c *gin.Context, status int, page view.Page) {
	var data view.RecordsData
	var err error
	if page.Tab == TabHistory {
		data.History, err = h.service.History(c, c.Query(QueryPatientID))
	} else {
		data.Result, err = h.service.List(c, page.Filter)
	}
	if err != nil {
		handler.RenderError(c, model.SectionRecords, err)
		return
	}

	page.Data = data
	handler.RenderPage(c, status, view.PageRecords, page)
}
