package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/internal/error/code"
	"github.com/aartibhkm/admin2/internal/error/response"
	"github.com/aartibhkm/admin2/models"
	"github.com/aartibhkm/admin2/services"
	"github.com/aartibhkm/admin2/services/container"
)

// InterfaceAdminController defines the admin controller interface
type InterfaceAdminController interface {
	GetAdmins()
	CreateAdmin()
	UpdateAdmin()
	UpdatePassword()
	DeleteAdmin()
}

// AdminController handles admin account management requests
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController creates a new admin controller
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateAdminRequest is the admin creation payload
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required" example:"staff1"`
	Password string `json:"password" binding:"required,min=6" example:"Staff@123"`
	Email    string `json:"email" binding:"required,email" example:"staff1@instapark.com"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super-admin" example:"admin"`
}

// UpdateAdminRequest is the partial admin update payload
type UpdateAdminRequest struct {
	Username string `json:"username" example:"staff1"`
	Email    string `json:"email" binding:"omitempty,email" example:"staff1@instapark.com"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super-admin" example:"admin"`
	IsActive *bool  `json:"isActive" example:"true"`
}

// UpdatePasswordRequest is the standalone password change payload
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6" example:"NewPassword@123"`
}

// HandleAdminFunc returns a gin handler dispatching admin requests
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "updatePassword":
			controller.UpdatePassword()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// parseIDParam reads the :id path parameter
func parseIDParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(ctx, code.ErrBind, "invalid id parameter", nil)
		return 0, false
	}
	return uint(id), true
}

// 1. GetAdmins lists all admin accounts
// @Summary      List admins
// @Description  All admin accounts sorted by username, passwords omitted
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Admin}
// @Failure      500  {object}  response.Response
// @Router       /admins [get]
// @Security     TokenAuth
func (c *AdminController) GetAdmins() {
	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admins, err := adminService.GetAllAdmins()
	if err != nil {
		config.Error("admin list failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, admins)
}

// 2. CreateAdmin creates a new admin account
// @Summary      Create admin
// @Description  Create an admin account; username and email must be unique
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body CreateAdminRequest true "Account fields"
// @Success      201  {object}  response.Response{data=models.Admin}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /admins [post]
// @Security     TokenAuth
func (c *AdminController) CreateAdmin() {
	var req CreateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	admin := &models.Admin{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password, // hashed by the model hook
		Email:    strings.TrimSpace(req.Email),
		Role:     req.Role,
		IsActive: true,
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.CreateAdmin(admin); err != nil {
		if errors.Is(err, services.ErrAdminAlreadyExists) {
			response.Fail(c.Ctx, code.ErrAdminAlreadyExists, nil)
			return
		}
		config.Error("admin creation failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, admin)
}

// 3. UpdateAdmin partially updates an admin account
// @Summary      Update admin
// @Description  Merge the provided fields into an existing account
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Admin ID"
// @Param        request body UpdateAdminRequest true "Fields to update"
// @Success      200  {object}  response.Response{data=models.Admin}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /admins/{id} [put]
// @Security     TokenAuth
func (c *AdminController) UpdateAdmin() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Username != "" {
		updates["username"] = strings.TrimSpace(req.Username)
	}
	if req.Email != "" {
		updates["email"] = strings.TrimSpace(req.Email)
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.UpdateAdmin(id, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
		case errors.Is(err, services.ErrAdminAlreadyExists):
			response.Fail(c.Ctx, code.ErrAdminAlreadyExists, nil)
		default:
			config.Error("admin update failed: %v", err)
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Success(c.Ctx, admin)
}

// 4. UpdatePassword changes an account's password
// @Summary      Change admin password
// @Description  Rehash and store a new password for the account
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Admin ID"
// @Param        request body UpdatePasswordRequest true "New password"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /admins/{id}/password [put]
// @Security     TokenAuth
func (c *AdminController) UpdatePassword() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.UpdatePassword(id, req.Password); err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
			return
		}
		config.Error("password update failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Password updated successfully"})
}

// 5. DeleteAdmin deletes an admin account
// @Summary      Delete admin
// @Description  Remove an account; contact assignments are left dangling
// @Tags         Admin
// @Produce      json
// @Param        id path int true "Admin ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /admins/{id} [delete]
// @Security     TokenAuth
func (c *AdminController) DeleteAdmin() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.DeleteAdmin(id); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
		case errors.Is(err, services.ErrLastAdmin):
			response.Fail(c.Ctx, code.ErrLastAdmin, nil)
		default:
			config.Error("admin deletion failed: %v", err)
			response.ServerError(c.Ctx)
		}
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Admin removed"})
}
