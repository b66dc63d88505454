package alerts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renta-autos-backend/internal/platform/auth"
	"renta-autos-backend/internal/platform/httpapi"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRouter, svc *Service, sm *auth.SessionManager) {
	h := &Handler{svc: svc}

	anyRole := auth.RequireRole(auth.RoleClerk, auth.RoleManager, auth.RoleOwner)

	g := r.Group("/alertas", auth.RequireSession(sm))
	g.GET("", anyRole, h.List)
	g.GET("/lista", anyRole, h.ListPage)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) ListPage(c *gin.Context) {
	items, err := h.svc.ListDecorated(c.Request.Context())
	if err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.HTML(http.StatusOK, "alertas.html", gin.H{"alertas": items})
}
