package rentals

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
	writeRole := auth.RequireRole(auth.RoleClerk, auth.RoleOwner)

	g := r.Group("/rentas", auth.RequireSession(sm))
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
	c.HTML(http.StatusOK, "rentas.html", gin.H{"rentas": items})
}

func (h *Handler) NewPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "")
}

func (h *Handler) CreateForm(c *gin.Context) {
	autoID := c.PostForm("auto_id")
	clienteID := c.PostForm("cliente_id")
	fechaInicio := c.PostForm("fecha_inicio")
	costoStr := c.PostForm("costo")
	if autoID == "" || clienteID == "" || fechaInicio == "" || costoStr == "" {
		h.renderForm(c, http.StatusBadRequest, "Todos los campos obligatorios deben completarse")
		return
	}
	costo, err := strconv.ParseFloat(costoStr, 64)
	if err != nil {
		h.renderForm(c, http.StatusBadRequest, "Costo debe ser numérico")
		return
	}

	req := CreateRentaRequest{
		AutoID:      autoID,
		ClienteID:   clienteID,
		FechaInicio: fechaInicio,
		Costo:       &costo,
	}
	if v := c.PostForm("fecha_fin"); v != "" {
		req.FechaFin = &v
	}

	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		h.renderForm(c, httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/rentas/lista")
}

func (h *Handler) renderForm(c *gin.Context, status int, errMsg string) {
	autos, err := h.svc.AvailableVehicleOptions(c.Request.Context())
	if err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	clientes, err := h.svc.CustomerOptions(c.Request.Context())
	if err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	var msg any
	if errMsg != "" {
		msg = errMsg
	}
	c.HTML(status, "renta_form.html", gin.H{"autos": autos, "clientes": clientes, "error": msg})
}
