package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"renta-autos-backend/internal/platform/httpapi"
)

type Handler struct {
	svc *Service
	sm  *SessionManager
}

func RegisterRoutes(r gin.IRouter, svc *Service, sm *SessionManager) {
	h := &Handler{svc: svc, sm: sm}

	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/setup", h.Setup)
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"error": nil})
}

// POST /login: form fields username/password. Sets the session cookie
// on success; browsers get a redirect, API clients a JSON body.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		if wantsHTML(c) {
			c.HTML(http.StatusBadRequest, "login.html", gin.H{"error": "Usuario y contraseña son obligatorios"})
			return
		}
		c.JSON(http.StatusBadRequest, httpapi.Body(httpapi.CodeInvalidArgument, "se requieren username y password"))
		return
	}

	sess, err := h.svc.Login(c.Request.Context(), username, password)
	if err != nil {
		if wantsHTML(c) {
			c.HTML(httpapi.ToHTTPStatus(err), "login.html", gin.H{"error": "Usuario o contraseña incorrectos"})
			return
		}
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}

	maxAge := int(h.sm.TTL().Seconds())
	c.SetCookie(CookieName, sess.Token, maxAge, "/", "", false, true)

	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Sesión iniciada", "rol": sess.Role})
}

func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(CookieName); err == nil && token != "" {
		h.svc.Logout(token)
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)

	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Sesión cerrada"})
}

type SetupRequest struct {
	ClerkPassword   string `json:"clerk_password" binding:"required"`
	ManagerPassword string `json:"manager_password" binding:"required"`
	OwnerPassword   string `json:"owner_password" binding:"required"`
}

// POST /setup: one-time account seed.
func (h *Handler) Setup(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.Body(httpapi.CodeInvalidArgument, "se requieren clerk_password, manager_password y owner_password"))
		return
	}

	if err := h.svc.Seed(c.Request.Context(), req.ClerkPassword, req.ManagerPassword, req.OwnerPassword); err != nil {
		c.JSON(httpapi.ToHTTPStatus(err), httpapi.BodyFrom(err))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mensaje": "Usuarios iniciales creados"})
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
