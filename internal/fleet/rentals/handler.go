package rentals

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

	g := r.Group("/rentas", auth.RequireSession(sm))
	g.POST("", writeRole, h.Create)
	g.PUT("/:id", writeRole, h.Update)
	g.GET("/ultimos", anyRole, h.Recent)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Body(httpapi.CodeInvalidArgument, "Faltan campos obligatorios en la renta"))
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
	var req UpdateRentaRequest
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

// GET /rentas/ultimos: rentals started in the last two months.
func (h *Handler) Recent(c *gin.Context) {
	items, err := h.svc.Recent(c.Request.Context())
	if err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, items)
}
