package customers

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
	writeRole := auth.RequireRole(auth.RoleClerk, auth.RoleOwner)

	g := r.Group("/clientes", auth.RequireSession(sm))
	g.GET("", anyRole, h.List)
	g.POST("", writeRole, h.Create)
	g.PUT("/:id", writeRole, h.Update)
	g.DELETE("/:id", writeRole, h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Body(httpapi.CodeInvalidArgument, "Datos de cliente no proporcionados"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Body(httpapi.CodeInvalidArgument, "JSON inválido"))
		return
	}
	res, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Cliente eliminado"})
}
