// Package controller provides the HTTP request handlers of the blog API.
// Each controller registers its own routes on a gin router group and maps
// service results onto the response envelope.
package controller

import (
	"github.com/gin-gonic/gin"

	"blog-api/database/model"
	"blog-api/web/middleware"
	"blog-api/web/service"
)

type registerForm struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type loginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenPayload is the register/login response body.
type tokenPayload struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthController struct {
	authService *service.AuthService
}

// NewAuthController registers the public auth routes and the guarded
// profile route.
func NewAuthController(public, guarded *gin.RouterGroup, authService *service.AuthService) *AuthController {
	ctrl := &AuthController{authService: authService}
	public.POST("/auth/register", ctrl.register)
	public.POST("/auth/login", ctrl.login)
	guarded.GET("/profile", ctrl.profile)
	return ctrl
}

func (ctrl *AuthController) register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		form = registerForm{}
	}

	token, user, err := ctrl.authService.Register(form.Username, form.Password, form.Role)
	if err != nil {
		jsonFailure(c, err, "User not found", "Failed to register user")
		return
	}
	jsonSuccess(c, "User registered successfully", tokenPayload{Token: token, User: user})
}

func (ctrl *AuthController) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		form = loginForm{}
	}

	token, user, err := ctrl.authService.Login(form.Username, form.Password)
	if err != nil {
		jsonFailure(c, err, "User not found", "Failed to log in")
		return
	}
	jsonSuccess(c, "Login successful", tokenPayload{Token: token, User: user})
}

func (ctrl *AuthController) profile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	jsonSuccess(c, "User profile retrieved successfully", user)
}
