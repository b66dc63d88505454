package returns

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"renta-autos-backend/internal/platform/auth"
	"renta-autos-backend/internal/platform/httpapi"
)

func RegisterPageRoutes(r gin.IRouter, svc *Service, sm *auth.SessionManager) {
	h := &Handler{svc: svc}

	anyRole := auth.RequireRole(auth.RoleClerk, auth.RoleManager, auth.RoleOwner)
	writeRole := auth.RequireRole(auth.RoleClerk, auth.RoleOwner)

	g := r.Group("/devoluciones", auth.RequireSession(sm))
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
	c.HTML(http.StatusOK, "devoluciones.html", gin.H{"devoluciones": items})
}

func (h *Handler) NewPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "")
}

func (h *Handler) CreateForm(c *gin.Context) {
	rentaID := c.PostForm("renta_id")
	condicion := c.PostForm("condicion")
	if rentaID == "" || condicion == "" {
		h.renderForm(c, http.StatusBadRequest, "Selecciona la renta y la condición")
		return
	}

	req := CreateDevolucionRequest{RentaID: rentaID, Condicion: condicion}
	if v := c.PostForm("observaciones"); v != "" {
		req.Observaciones = &v
	}

	if _, err := h.svc.Create(c.Request.Context(), req); err != nil {
		h.renderForm(c, httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/devoluciones/lista")
}

func (h *Handler) renderForm(c *gin.Context, status int, errMsg string) {
	rentas, err := h.svc.ActiveRentaOptions(c.Request.Context())
	if err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	var msg any
	if errMsg != "" {
		msg = errMsg
	}
	c.HTML(status, "devolucion_form.html", gin.H{"rentas": rentas, "error": msg})
}
