package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/internal/error/code"
	"github.com/aartibhkm/admin2/internal/error/response"
	"github.com/aartibhkm/admin2/models"
	"github.com/aartibhkm/admin2/services"
	"github.com/aartibhkm/admin2/services/container"
)

// InterfaceBookingController defines the booking controller interface
type InterfaceBookingController interface {
	GetBookings()
	GetBooking()
	CreateBooking()
	UpdateBooking()
	UpdateBookingStatus()
	GetBookingStats()
}

// BookingController handles parking reservation requests
type BookingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBookingController creates a new booking controller
func NewBookingController(ctx *gin.Context, container *container.ServiceContainer) *BookingController {
	return &BookingController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateBookingRequest is the explicit allow-list for booking creation.
// Unknown payload fields are dropped at bind time.
type CreateBookingRequest struct {
	Location      string `json:"location" binding:"required" example:"Downtown Parking"`
	Date          string `json:"date" binding:"required,datetime=2006-01-02" example:"2025-07-01"`
	StartTime     string `json:"startTime" binding:"required" example:"09:00"`
	EndTime       string `json:"endTime" binding:"required" example:"12:00"`
	VehicleType   string `json:"vehicleType" binding:"required,oneof=compact sedan suv truck motorcycle other" example:"sedan"`
	Slots         int    `json:"slots" binding:"required,min=1" example:"1"`
	CustomerName  string `json:"customerName" binding:"required" example:"Jane Doe"`
	Email         string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone         string `json:"phone" binding:"required" example:"555-0100"`
	Status        string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed" example:"pending"`
	PaymentStatus string `json:"paymentStatus" binding:"omitempty,oneof=pending paid refunded failed" example:"pending"`
	Notes         string `json:"notes" example:"near the elevator"`
}

// UpdateBookingRequest is the partial booking update payload
type UpdateBookingRequest struct {
	Location      string `json:"location"`
	Date          string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	VehicleType   string `json:"vehicleType" binding:"omitempty,oneof=compact sedan suv truck motorcycle other"`
	Slots         int    `json:"slots" binding:"omitempty,min=1"`
	CustomerName  string `json:"customerName"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	Status        string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus string `json:"paymentStatus" binding:"omitempty,oneof=pending paid refunded failed"`
	Notes         string `json:"notes"`
}

// UpdateBookingStatusRequest is the status-only mutation payload
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed" example:"confirmed"`
}

// HandleBookingFunc returns a gin handler dispatching booking requests
func HandleBookingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBookingController(ctx, container)

		switch method {
		case "getBookings":
			controller.GetBookings()
		case "getBooking":
			controller.GetBooking()
		case "createBooking":
			controller.CreateBooking()
		case "updateBooking":
			controller.UpdateBooking()
		case "updateBookingStatus":
			controller.UpdateBookingStatus()
		case "getBookingStats":
			controller.GetBookingStats()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetBookings lists bookings with optional equality filters
// @Summary      List bookings
// @Description  Bookings filtered by status, location, date and email, newest date first
// @Tags         Booking
// @Produce      json
// @Param        status query string false "Booking status"
// @Param        location query string false "Location"
// @Param        date query string false "Date (YYYY-MM-DD)"
// @Param        email query string false "Customer email"
// @Success      200  {object}  response.Response{data=[]models.Booking}
// @Failure      500  {object}  response.Response
// @Router       /bookings [get]
// @Security     TokenAuth
func (c *BookingController) GetBookings() {
	filter := services.BookingFilter{
		Status:   c.Ctx.Query("status"),
		Location: c.Ctx.Query("location"),
		Date:     c.Ctx.Query("date"),
		Email:    c.Ctx.Query("email"),
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	bookings, err := bookingService.GetBookings(filter)
	if err != nil {
		config.Error("booking list failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, bookings)
}

// 2. GetBooking fetches one booking
// @Summary      Get booking
// @Tags         Booking
// @Produce      json
// @Param        id path int true "Booking ID"
// @Success      200  {object}  response.Response{data=models.Booking}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /bookings/{id} [get]
// @Security     TokenAuth
func (c *BookingController) GetBooking() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	booking, err := bookingService.GetBookingByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			response.Fail(c.Ctx, code.ErrBookingNotFound, nil)
			return
		}
		config.Error("booking lookup failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, booking)
}

// 3. CreateBooking creates a new reservation
// @Summary      Create booking
// @Description  Validate and store a reservation; slots must be at least 1 and vehicleType must be a known type
// @Tags         Booking
// @Accept       json
// @Produce      json
// @Param        request body CreateBookingRequest true "Booking fields"
// @Success      201  {object}  response.Response{data=models.Booking}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /bookings [post]
// @Security     TokenAuth
func (c *BookingController) CreateBooking() {
	var req CreateBookingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	booking := &models.Booking{
		Location:      req.Location,
		Date:          date,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		VehicleType:   req.VehicleType,
		Slots:         req.Slots,
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
	}
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	if booking.PaymentStatus == "" {
		booking.PaymentStatus = models.PaymentPending
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	if err := bookingService.CreateBooking(booking); err != nil {
		config.Error("booking creation failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Created(c.Ctx, booking)
}

// 4. UpdateBooking partially updates a booking
// @Summary      Update booking
// @Tags         Booking
// @Accept       json
// @Produce      json
// @Param        id path int true "Booking ID"
// @Param        request body UpdateBookingRequest true "Fields to update"
// @Success      200  {object}  response.Response{data=models.Booking}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /bookings/{id} [put]
// @Security     TokenAuth
func (c *BookingController) UpdateBooking() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Date != "" {
		date, _ := time.Parse("2006-01-02", req.Date)
		updates["date"] = date
	}
	if req.StartTime != "" {
		updates["start_time"] = req.StartTime
	}
	if req.EndTime != "" {
		updates["end_time"] = req.EndTime
	}
	if req.VehicleType != "" {
		updates["vehicle_type"] = req.VehicleType
	}
	if req.Slots > 0 {
		updates["slots"] = req.Slots
	}
	if req.CustomerName != "" {
		updates["customer_name"] = req.CustomerName
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.PaymentStatus != "" {
		updates["payment_status"] = req.PaymentStatus
	}
	if req.Notes != "" {
		updates["notes"] = req.Notes
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	booking, err := bookingService.UpdateBooking(id, updates)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			response.Fail(c.Ctx, code.ErrBookingNotFound, nil)
			return
		}
		config.Error("booking update failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, booking)
}

// 5. UpdateBookingStatus mutates only the status field
// @Summary      Update booking status
// @Tags         Booking
// @Accept       json
// @Produce      json
// @Param        id path int true "Booking ID"
// @Param        request body UpdateBookingStatusRequest true "New status"
// @Success      200  {object}  response.Response{data=models.Booking}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /bookings/{id}/status [put]
// @Security     TokenAuth
func (c *BookingController) UpdateBookingStatus() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.BindError(c.Ctx, err)
		return
	}

	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	booking, err := bookingService.UpdateBookingStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			response.Fail(c.Ctx, code.ErrBookingNotFound, nil)
			return
		}
		config.Error("booking status update failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, booking)
}

// 6. GetBookingStats counts bookings per status
// @Summary      Booking status counts
// @Tags         Booking
// @Produce      json
// @Success      200  {object}  response.Response{data=services.BookingStatusCounts}
// @Failure      500  {object}  response.Response
// @Router       /bookings/stats/counts [get]
// @Security     TokenAuth
func (c *BookingController) GetBookingStats() {
	bookingService := c.Container.GetService("booking").(services.InterfaceBookingService)
	counts, err := bookingService.GetStatusCounts()
	if err != nil {
		config.Error("booking stats failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, counts)
}
