package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/noill-admin/internal/handler"
	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/service/dashboard"
	"github.com/jwalitptl/noill-admin/internal/view"
	"github.com/jwalitptl/noill-admin/pkg/httputil"
)

type Handler struct {
	service dashboard.DashboardService
}

func NewHandler(service dashboard.DashboardService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.GetDashboard)
}

func (h *Handler) RegisterPages(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Page)
}

func (h *Handler) GetDashboard(c *gin.Context) {
	d, err := h.service.Get(c)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, d)
}

func (h *Handler) Page(c *gin.Context) {
	d, err := h.service.Get(c)
	if err != nil {
		handler.RenderError(c, model.SectionDashboard, err)
		return
	}

	page := handler.NewPage(c, model.SectionDashboard)
	page.Data = d
	handler.RenderPage(c, http.StatusOK, view.PageDashboard, page)
}
