package customers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renta-autos-backend/internal/platform/auth"
	"renta-autos-backend/internal/platform/httpapi"
)

// RegisterPageRoutes wires the HTML mirror of the JSON surface:
// /clientes/lista, /clientes/nuevo, /clientes/:id/editar and a form
// POST for deletion. Same guards as the JSON routes.
func RegisterPageRoutes(r gin.IRouter, svc *Service, sm *auth.SessionManager) {
	h := &Handler{svc: svc}

	anyRole := auth.RequireRole(auth.RoleClerk, auth.RoleManager, auth.RoleOwner)
	writeRole := auth.RequireRole(auth.RoleClerk, auth.RoleOwner)

	g := r.Group("/clientes", auth.RequireSession(sm))
	g.GET("/lista", anyRole, h.ListPage)
	g.GET("/nuevo", writeRole, h.NewPage)
	g.POST("/nuevo", writeRole, h.CreateForm)
	g.GET("/:id/editar", writeRole, h.EditPage)
	g.POST("/:id/editar", writeRole, h.UpdateForm)
	g.POST("/:id/eliminar", writeRole, h.DeleteForm)
}

func (h *Handler) ListPage(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.HTML(http.StatusOK, "clientes.html", gin.H{"clientes": items})
}

func (h *Handler) NewPage(c *gin.Context) {
	c.HTML(http.StatusOK, "cliente_form.html", gin.H{"cliente": nil, "error": nil})
}

func (h *Handler) CreateForm(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "cliente_form.html", gin.H{"cliente": nil, "error": "Nombre y apellido son obligatorios"})
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		c.HTML(httpapi.ToHTTPStatus(err), "cliente_form.html", gin.H{"cliente": nil, "error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/clientes/lista")
}

func (h *Handler) EditPage(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.HTML(http.StatusOK, "cliente_form.html", gin.H{"cliente": res, "error": nil})
}

func (h *Handler) UpdateForm(c *gin.Context) {
	var req UpdateClienteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "datos inválidos")
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/clientes/lista")
}

// DeleteForm mirrors the JSON delete for plain HTML forms, which can
// only POST, and redirects back to the listing.
func (h *Handler) DeleteForm(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/clientes/lista")
}
