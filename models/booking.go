package models

import "time"

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Payment statuses
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
	PaymentFailed   = "failed"
)

// Vehicle types accepted on a booking
var VehicleTypes = []string{"compact", "sedan", "suv", "truck", "motorcycle", "other"}

// Booking represents a parking reservation
type Booking struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Location      string    `gorm:"type:varchar(100);not null;index:idx_date_location,priority:2" json:"location"`
	Date          time.Time `gorm:"not null;index:idx_date_location,priority:1" json:"date"`
	StartTime     string    `gorm:"type:varchar(5);not null" json:"startTime"`
	EndTime       string    `gorm:"type:varchar(5);not null" json:"endTime"`
	VehicleType   string    `gorm:"type:varchar(20);not null" json:"vehicleType"`
	Slots         int       `gorm:"not null;default:1" json:"slots"`
	CustomerName  string    `gorm:"type:varchar(100);not null" json:"customerName"`
	Email         string    `gorm:"type:varchar(100);not null;index" json:"email"`
	Phone         string    `gorm:"type:varchar(20);not null" json:"phone"`
	Status        string    `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	PaymentStatus string    `gorm:"type:varchar(20);not null;default:pending" json:"paymentStatus"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
