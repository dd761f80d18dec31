package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/models"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingFilter holds the optional equality filters of the list endpoint
type BookingFilter struct {
	Status   string
	Location string
	Date     string // YYYY-MM-DD
	Email    string
}

// BookingStatusCounts is the payload of the booking stats endpoint
type BookingStatusCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

// InterfaceBookingService defines the booking service contract
type InterfaceBookingService interface {
	GetBookings(filter BookingFilter) ([]models.Booking, error)
	GetBookingByID(id uint) (*models.Booking, error)
	CreateBooking(booking *models.Booking) error
	UpdateBooking(id uint, updates map[string]interface{}) (*models.Booking, error)
	UpdateBookingStatus(id uint, status string) (*models.Booking, error)
	GetStatusCounts() (*BookingStatusCounts, error)
}

// BookingService provides parking reservation operations
type BookingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewBookingService creates a new booking service
func NewBookingService(db *gorm.DB, cfg *config.Config) *BookingService {
	return &BookingService{
		DB:     db,
		Config: cfg,
	}
}

// GetBookings returns bookings matching the filter, newest date first
func (s *BookingService) GetBookings(filter BookingFilter) ([]models.Booking, error) {
	query := s.DB.Model(&models.Booking{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Location != "" {
		query = query.Where("location = ?", filter.Location)
	}
	if filter.Date != "" {
		day, err := time.Parse("2006-01-02", filter.Date)
		if err != nil {
			return nil, err
		}
		query = query.Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1))
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	var bookings []models.Booking
	if err := query.Order("date desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBookingByID returns one booking by id
func (s *BookingService) GetBookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// CreateBooking stores a new reservation
func (s *BookingService) CreateBooking(booking *models.Booking) error {
	return s.DB.Create(booking).Error
}

// UpdateBooking applies a partial field merge to a booking
func (s *BookingService) UpdateBooking(id uint, updates map[string]interface{}) (*models.Booking, error) {
	booking, err := s.GetBookingByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(booking).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetBookingByID(id)
}

// UpdateBookingStatus sets only the status field. Setting the current value
// again is a no-op apart from the timestamp.
func (s *BookingService) UpdateBookingStatus(id uint, status string) (*models.Booking, error) {
	booking, err := s.GetBookingByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(booking).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.GetBookingByID(id)
}

// GetStatusCounts counts bookings overall and per status
func (s *BookingService) GetStatusCounts() (*BookingStatusCounts, error) {
	counts := &BookingStatusCounts{}

	targets := []struct {
		status string
		dest   *int64
	}{
		{"", &counts.Total},
		{models.BookingPending, &counts.Pending},
		{models.BookingConfirmed, &counts.Confirmed},
		{models.BookingCancelled, &counts.Cancelled},
		{models.BookingCompleted, &counts.Completed},
	}

	for _, t := range targets {
		query := s.DB.Model(&models.Booking{})
		if t.status != "" {
			query = query.Where("status = ?", t.status)
		}
		if err := query.Count(t.dest).Error; err != nil {
			return nil, err
		}
	}

	return counts, nil
}
