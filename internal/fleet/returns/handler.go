package returns

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renta-autos-backend/internal/platform/auth"
	"renta-autos-backend/internal/platform/httpapi"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRouter, svc *Service, sm *auth.SessionManager) {
	h := &Handler{svc: svc}

	writeRole := auth.RequireRole(auth.RoleClerk, auth.RoleOwner)

	g := r.Group("/devoluciones", auth.RequireSession(sm))
	g.POST("", writeRole, h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDevolucionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Body(httpapi.CodeInvalidArgument, "Se requiere renta_id y condicion"))
		return
	}
	res, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}
