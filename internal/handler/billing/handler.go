package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/noill-admin/internal/handler"
	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/service/billing"
	"github.com/jwalitptl/noill-admin/internal/view"
	"github.com/jwalitptl/noill-admin/pkg/httputil"
	"github.com/jwalitptl/noill-admin/pkg/validator"
)

const TabPayments = "payments"

type Handler struct {
	service billing.BillingService
}

func NewHandler(service billing.BillingService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/billing/stats", h.GetStats)
	r.GET("/payments", h.ListPayments)

	invoices := r.Group("/invoices")
	{
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:id", h.GetInvoice)
		invoices.POST("", h.CreateInvoice)
	}
}

func (h *Handler) RegisterPages(r *gin.RouterGroup) {
	r.GET("/billing", h.Page)
	r.GET("/billing/invoices/:id", h.DetailPage)
	r.POST("/billing/invoices", h.SubmitPage)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, stats)
}

func (h *Handler) ListInvoices(c *gin.Context) {
	result, err := h.service.Invoices(c, handler.ParseFilter(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}

// GetInvoice returns the invoice with the total of its service lines.
func (h *Handler) GetInvoice(c *gin.Context) {
	detail, err := h.service.Invoice(c, c.Param("id"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, detail)
}

func (h *Handler) ListPayments(c *gin.Context) {
	result, err := h.service.Payments(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, result)
}

func (h *Handler) CreateInvoice(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		httputil.RespondWithValidation(c, errs)
		return
	}
	httputil.RespondWithStatus(c, http.StatusAccepted, h.service.SubmitForm(c, req))
}

func (h *Handler) Page(c *gin.Context) {
	h.render(c, http.StatusOK, handler.NewPage(c, model.SectionBilling))
}

func (h *Handler) DetailPage(c *gin.Context) {
	detail, err := h.service.Invoice(c, c.Param("id"))
	if err != nil {
		handler.RenderError(c, model.SectionBilling, err)
		return
	}

	page := handler.NewPage(c, model.SectionBilling)
	page.Data = detail
	handler.RenderPage(c, http.StatusOK, view.PageInvoice, page)
}

func (h *Handler) SubmitPage(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if errs := handler.BindForm(c, &req); errs != nil {
		h.service.RejectForm(c, errs)
		page := handler.NewPage(c, model.SectionBilling)
		page.Dialog = true
		page.Errors = validator.ByField(errs)
		page.Values = handler.FormValues(c)
		h.render(c, http.StatusBadRequest, page)
		return
	}

	h.service.SubmitForm(c, req)
	c.Redirect(http.StatusSeeOther, "/billing")
}

func (h *Handler) render(c *gin.Context, status int, page view.Page) {
	stats, err := h.service.Stats(c)
	if err != nil {
		handler.RenderError(c, model.SectionBilling, err)
		return
	}

	data := view.BillingData{Stats: stats, Statuses: model.InvoiceStatuses}
	if page.Tab == TabPayments {
		data.Payments, err = h.service.Payments(c)
	} else {
		data.Invoices, err = h.service.Invoices(c, page.Filter)
	}
	if err != nil {
		handler.RenderError(c, model.SectionBilling, err)
		return
	}

	page.Data = data
	handler.RenderPage(c, status, view.PageBilling, page)
}
