package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/internal/error/code"
	"github.com/aartibhkm/admin2/internal/error/response"
	"github.com/aartibhkm/admin2/models"
	"github.com/aartibhkm/admin2/services"
	"github.com/aartibhkm/admin2/services/container"
)

// InterfaceContactController defines the contact controller interface
type InterfaceContactController interface {
	GetContacts()
	GetContact()
	CreateContact()
	UpdateContact()
	ResolveContact()
	AssignContact()
	GetContactStats()
}

// ContactController handles contact message requests
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController creates a new contact controller
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateContactRequest is the explicit allow-list for contact creation
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required" example:"John Smith"`
	Email   string `json:"email" binding:"required,email" example:"john@example.com"`
	Subject string `json:"subject" binding:"required" example:"Refund request"`
	Message string `json:"message" binding:"required" example:"I was charged twice."`
}

// UpdateContactRequest is the partial contact update payload
type UpdateContactRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email" binding:"omitempty,email"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	IsResolved *bool  `json:"isResolved"`
	Response   string `json:"response"`
}

// ResolveContactRequest is the resolution-only mutation payload.
// IsResolved defaults to true when absent.
type ResolveContactRequest struct {
	IsResolved *bool  `json:"isResolved"`
	Response   string `json:"response"`
}

// AssignContactRequest is the assignment-only mutation payload.
// A missing adminId clears the assignment.
type AssignContactRequest struct {
	AdminID *uint `json:"adminId"`
}

// HandleContactFunc returns a gin handler dispatching contact requests
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "getContacts":
			controller.GetContacts()
		case "getContact":
			controller.GetContact()
		case "createContact":
			controller.CreateContact()
		case "updateContact":
			controller.UpdateContact()
		case "resolveContact":
			controller.ResolveContact()
		case "assignContact":
			controller.AssignContact()
		case "getContactStats":
			controller.GetContactStats()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetContacts lists contact messages with optional filters
// @Summary      List contacts
// @Description  Contacts filtered by resolution state and assignee, newest first. assignedTo=unassigned selects contacts with no assignee.
// @Tags         Contact
// @Produce      json
// @Param        isResolved query bool false "Resolution state"
// @Param        assignedTo query string false "Admin id or the value 'unassigned'"
// @Success      200  {object}  response.Response{data=[]models.ContactWithAssignee}
// @Failure      500  {object}  response.Response
// @Router       /contacts [get]
// @Security     TokenAuth
func (c *ContactController) GetContacts() {
	filter := services.ContactFilter{
		IsResolved: c.Ctx.Query("isResolved"),
		AssignedTo: c.Ctx.Query("assignedTo"),
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	contacts, err := contactService.GetContacts(filter)
	if err != nil {
		config.Error("contact list failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, contacts)
}

// 2. GetContact fetches one contact message
// @Summary      Get contact
// @Tags         Contact
// @Produce      json
// @Param        id path int true "Contact ID"
// @Success      200  {object}  response.Response{data=models.ContactWithAssignee}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contacts/{id} [get]
// @Security     TokenAuth
func (c *ContactController) GetContact() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	contact, err := contactService.GetContactByID(id)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			response.Fail(c.Ctx, code.ErrContactNotFound, nil)
			return
		}
		config.Error("contact lookup failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, contact)
}

// 3. CreateContact stores a new inbound message
// @Summary      Create contact
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        request body CreateContactRequest true "Message fields"
// @Success      201  {object}  response.Response{data=models.Contact}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contacts [post]
// @Security     TokenAuth
func (c *ContactController) CreateContact() {
	var req CreateContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.CreateContact(contact); err != nil {
		config.Error("contact creation failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, contact)
}

// 4. UpdateContact partially updates a contact message
// @Summary      Update contact
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        id path int true "Contact ID"
// @Param        request body UpdateContactRequest true "Fields to update"
// @Success      200  {object}  response.Response{data=models.ContactWithAssignee}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contacts/{id} [put]
// @Security     TokenAuth
func (c *ContactController) UpdateContact() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Subject != "" {
		updates["subject"] = req.Subject
	}
	if req.Message != "" {
		updates["message"] = req.Message
	}
	if req.IsResolved != nil {
		updates["is_resolved"] = *req.IsResolved
	}
	if req.Response != "" {
		updates["response"] = req.Response
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	contact, err := contactService.UpdateContact(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			response.Fail(c.Ctx, code.ErrContactNotFound, nil)
			return
		}
		config.Error("contact update failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, contact)
}

// 5. ResolveContact marks a contact resolved (or un-resolved)
// @Summary      Resolve contact
// @Description  Set the resolution flag, defaulting to resolved, optionally recording a response
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        id path int true "Contact ID"
// @Param        request body ResolveContactRequest true "Resolution fields"
// @Success      200  {object}  response.Response{data=models.ContactWithAssignee}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contacts/{id}/resolve [put]
// @Security     TokenAuth
func (c *ContactController) ResolveContact() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req ResolveContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	isResolved := true
	if req.IsResolved != nil {
		isResolved = *req.IsResolved
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	contact, err := contactService.ResolveContact(id, isResolved, req.Response)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			response.Fail(c.Ctx, code.ErrContactNotFound, nil)
			return
		}
		config.Error("contact resolve failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, contact)
}

// 6. AssignContact points a contact at an admin account
// @Summary      Assign contact
// @Description  Assign the message to an admin, or clear the assignment when adminId is absent
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        id path int true "Contact ID"
// @Param        request body AssignContactRequest true "Assignment"
// @Success      200  {object}  response.Response{data=models.ContactWithAssignee}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contacts/{id}/assign [put]
// @Security     TokenAuth
func (c *ContactController) AssignContact() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req AssignContactRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	contact, err := contactService.AssignContact(id, req.AdminID)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			response.Fail(c.Ctx, code.ErrContactNotFound, nil)
			return
		}
		config.Error("contact assign failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, contact)
}

// 7. GetContactStats counts contacts by resolution and assignment state
// @Summary      Contact counts
// @Tags         Contact
// @Produce      json
// @Success      200  {object}  response.Response{data=services.ContactCounts}
// @Failure      500  {object}  response.Response
// @Router       /contacts/stats/counts [get]
// @Security     TokenAuth
func (c *ContactController) GetContactStats() {
	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	counts, err := contactService.GetCounts()
	if err != nil {
		config.Error("contact stats failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, counts)
}
