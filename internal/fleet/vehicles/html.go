package vehicles

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

	g := r.Group("/autos", auth.RequireSession(sm))
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
	c.HTML(http.StatusOK, "autos.html", gin.H{"autos": items})
}

func (h *Handler) NewPage(c *gin.Context) {
	c.HTML(http.StatusOK, "auto_form.html", gin.H{"auto": nil, "error": nil})
}

func (h *Handler) CreateForm(c *gin.Context) {
	req, errMsg := autoFormRequest(c)
	if errMsg != "" {
		c.HTML(http.StatusBadRequest, "auto_form.html", gin.H{"auto": nil, "error": errMsg})
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), *req); err != nil {
		c.HTML(httpapi.ToHTTPStatus(err), "auto_form.html", gin.H{"auto": nil, "error": err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/autos/lista")
}

func (h *Handler) EditPage(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.HTML(http.StatusOK, "auto_form.html", gin.H{"auto": res, "error": nil})
}

func (h *Handler) UpdateForm(c *gin.Context) {
	req, errMsg := autoFormRequest(c)
	if errMsg != "" {
		c.String(http.StatusBadRequest, errMsg)
		return
	}
	// checkbox semantics: absent means unchecked, so the form always
	// carries an explicit availability value
	upd := UpdateAutoRequest{
		Marca:      &req.Marca,
		Modelo:     &req.Modelo,
		Anio:       &req.Anio,
		Disponible: req.Disponible,
	}
	if _, err := h.svc.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/autos/lista")
}

func (h *Handler) DeleteForm(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.String(httpapi.ToHTTPStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/autos/lista")
}

func autoFormRequest(c *gin.Context) (*CreateAutoRequest, string) {
	marca := c.PostForm("marca")
	modelo := c.PostForm("modelo")
	anioStr := c.PostForm("anio")
	if marca == "" || modelo == "" || anioStr == "" {
		return nil, "Marca, modelo y año son obligatorios"
	}
	anio, err := strconv.Atoi(anioStr)
	if err != nil {
		return nil, "El año debe ser numérico"
	}
	disponible := c.PostForm("disponible") == "on"
	return &CreateAutoRequest{
		Marca:      marca,
		Modelo:     modelo,
		Anio:       anio,
		Disponible: &disponible,
	}, ""
}
