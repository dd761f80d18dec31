package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/models"
)

// DashboardCounts is the counts block of the composite dashboard payload
type DashboardCounts struct {
	TotalBookings     int64 `json:"totalBookings"`
	TotalContacts     int64 `json:"totalContacts"`
	TotalAdmins       int64 `json:"totalAdmins"`
	PendingBookings   int64 `json:"pendingBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	CancelledBookings int64 `json:"cancelledBookings"`
	UnresolvedContacts int64 `json:"unresolvedContacts"`
}

// DashboardRecent carries the five most recently created records of each kind
type DashboardRecent struct {
	Bookings []models.Booking `json:"bookings"`
	Contacts []models.Contact `json:"contacts"`
}

// DashboardStats is the composite dashboard payload
type DashboardStats struct {
	Counts DashboardCounts `json:"counts"`
	Recent DashboardRecent `json:"recent"`
}

// DailyBookingCount is one day's booking count
type DailyBookingCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// LocationBookingCount is one location's booking count
type LocationBookingCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// InterfaceDashboardService defines the dashboard aggregator contract
type InterfaceDashboardService interface {
	GetStats() (*DashboardStats, error)
	GetDailyBookings() ([]DailyBookingCount, error)
	GetLocationBookings() ([]LocationBookingCount, error)
}

// DashboardService computes read-only aggregates across bookings, contacts
// and admins. Nothing is cached; every call recomputes from the live store.
type DashboardService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB, cfg *config.Config) *DashboardService {
	return &DashboardService{
		DB:     db,
		Config: cfg,
	}
}

// GetStats returns the seven counts plus the five most recent bookings and
// contacts in one composite response
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{s.DB.Model(&models.Booking{}), &stats.Counts.TotalBookings},
		{s.DB.Model(&models.Contact{}), &stats.Counts.TotalContacts},
		{s.DB.Model(&models.Admin{}), &stats.Counts.TotalAdmins},
		{s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingPending), &stats.Counts.PendingBookings},
		{s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingConfirmed), &stats.Counts.ConfirmedBookings},
		{s.DB.Model(&models.Booking{}).Where("status = ?", models.BookingCancelled), &stats.Counts.CancelledBookings},
		{s.DB.Model(&models.Contact{}).Where("is_resolved = ?", false), &stats.Counts.UnresolvedContacts},
	}

	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := s.DB.Order("created_at desc").Limit(5).Find(&stats.Recent.Bookings).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Order("created_at desc").Limit(5).Find(&stats.Recent.Contacts).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// dateBucketExpr returns the SQL expression grouping created_at into a
// YYYY-MM-DD string for the connected dialect.
func (s *DashboardService) dateBucketExpr() string {
	if s.DB.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m-%d', created_at)"
	}
	return "DATE_FORMAT(created_at, '%Y-%m-%d')"
}

// GetDailyBookings groups bookings created in the trailing 30 days by
// calendar day, day ascending
func (s *DashboardService) GetDailyBookings() ([]DailyBookingCount, error) {
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	bucket := s.dateBucketExpr()

	var results []DailyBookingCount
	err := s.DB.Model(&models.Booking{}).
		Select(bucket+" AS day, COUNT(*) AS count").
		Where("created_at >= ?", thirtyDaysAgo).
		Group(bucket).
		Order("day asc").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetLocationBookings groups all bookings by location, busiest first
func (s *DashboardService) GetLocationBookings() ([]LocationBookingCount, error) {
	var results []LocationBookingCount
	err := s.DB.Model(&models.Booking{}).
		Select("location, COUNT(*) AS count").
		Group("location").
		Order("count desc").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
