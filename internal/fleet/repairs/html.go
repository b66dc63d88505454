package repairs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"renta-autos-backend/internal/platform/auth"
	"renta-autos-backend/internal/platform/httpapi"
)

func RegisterPageRoutes(r gin.IRouter, svc *Service, sm *auth.SessionManager) {
	h := &Handler{svc: svc}

	anyRole := auth.RequireRole(auth.RoleClerk, auth.RoleManager, auth.RoleOwner)
	writeRole := auth.RequireRole(auth.RoleManager, auth.RoleOwner)

	g := r.Group("/reparaciones", auth.RequireSession(sm))
	g.GET("/lista", anyRole, h.ListPage)
	g.GET("/nueva", writeRole, h.NewPage)
	g.POST("/nueva", writeRole, h.CreateForm)
}

func (h *Handler) ListPage(c *gin.Context) {
	items, err := h.svc.ListDecorated(c.Request.Context())
	if err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.HTML(http.StatusOK, "reparaciones.html", gin.H{"reparaciones": items})
}

func (h *Handler) NewPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "")
}

func (h *Handler) CreateForm(c *gin.Context) {
	autoID := c.PostForm("auto_id")
	descripcion := c.PostForm("descripcion")
	fecha := c.PostForm("fecha")
	costoStr := c.PostForm("costo")
	if autoID == "" || descripcion == "" || fecha == "" || costoStr == "" {
		h.renderForm(c, http.StatusBadRequest, "Todos los campos son obligatorios")
		return
	}
	costo, err := strconv.ParseFloat(costoStr, 64)
	if err != nil {
		h.renderForm(c, http.StatusBadRequest, "Costo debe ser numérico")
		return
	}

	req := CreateReparacionRequest{AutoID: autoID, Descripcion: descripcion, Fecha: fecha, Costo: &costo}
	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		h.renderForm(c, httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/reparaciones/lista")
}

func (h *Handler) renderForm(c *gin.Context, status int, errMsg string) {
	autos, err := h.svc.VehicleOptions(c.Request.Context())
	if err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	var msg any
	if errMsg != "" {
		msg = errMsg
	}
	c.HTML(status, "reparacion_form.html", gin.H{"autos": autos, "error": msg})
}
