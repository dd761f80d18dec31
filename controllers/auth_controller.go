package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/internal/error/code"
	"github.com/aartibhkm/admin2/internal/error/response"
	"github.com/aartibhkm/admin2/middleware"
	"github.com/aartibhkm/admin2/services"
	"github.com/aartibhkm/admin2/services/container"
)

// InterfaceAuthController defines the auth controller interface
type InterfaceAuthController interface {
	Login()
	GetCurrentAdmin()
}

// AuthController handles authentication requests
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// LoginData is returned on successful login
type LoginData struct {
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	AdminID  uint   `json:"adminId" example:"1"`
	Username string `json:"username" example:"admin"`
	Role     string `json:"role" example:"super-admin"`
}

// HandleAuthFunc returns a gin handler dispatching auth requests
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "getCurrentAdmin":
			controller.GetCurrentAdmin()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// Login authenticates an admin account
// @Summary      Admin login
// @Description  Verify credentials and issue a bearer token valid for one day
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  response.Response{data=LoginData}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Identical outcome for unknown user and wrong password
			response.Fail(c.Ctx, code.ErrInvalidCredentials, nil)
			return
		}
		config.Error("login failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		config.Error("token generation failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, LoginData{
		Token:    token,
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	})
}

// GetCurrentAdmin returns the account behind the presented token
// @Summary      Current admin
// @Description  Return the authenticated account, password omitted
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.Response{data=models.Admin}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /auth/admin [get]
// @Security     TokenAuth
func (c *AuthController) GetCurrentAdmin() {
	adminID := c.Ctx.GetUint(middleware.ContextAdminID)

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.GetAdminByID(adminID)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
			return
		}
		config.Error("current admin lookup failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, admin)
}
