package repairs

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
	writeRole := auth.RequireRole(auth.RoleManager, auth.RoleOwner)

	g := r.Group("/reparaciones", auth.RequireSession(sm))
	g.POST("", writeRole, h.Create)
	g.GET("/consulta", anyRole, h.Query)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReparacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Body(httpapi.CodeInvalidArgument, "Faltan campos obligatorios en la reparación"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /reparaciones/consulta?inicio&fin&costo_max
func (h *Handler) Query(c *gin.Context) {
	items, err := h.svc.Query(c.Request.Context(), c.Query("inicio"), c.Query("fin"), c.Query("costo_max"))
	if err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusOK, items)
}
