package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/models"
)

var ErrContactNotFound = errors.New("contact not found")

// AssignedToUnassigned is the reserved filter value selecting contacts with
// no assignee. It never matches a literal admin identifier.
const AssignedToUnassigned = "unassigned"

// ContactFilter holds the optional filters of the contact list endpoint.
// IsResolved is a raw query value ("true"/"false"); AssignedTo is an admin id
// or the "unassigned" sentinel.
type ContactFilter struct {
	IsResolved string
	AssignedTo string
}

// ContactCounts is the payload of the contact stats endpoint
type ContactCounts struct {
	Total      int64 `json:"total"`
	Resolved   int64 `json:"resolved"`
	Unresolved int64 `json:"unresolved"`
	Unassigned int64 `json:"unassigned"`
}

// InterfaceContactService defines the contact service contract
type InterfaceContactService interface {
	GetContacts(filter ContactFilter) ([]models.ContactWithAssignee, error)
	GetContactByID(id uint) (*models.ContactWithAssignee, error)
	CreateContact(contact *models.Contact) error
	UpdateContact(id uint, updates map[string]interface{}) (*models.ContactWithAssignee, error)
	ResolveContact(id uint, isResolved bool, responseText string) (*models.ContactWithAssignee, error)
	AssignContact(id uint, adminID *uint) (*models.ContactWithAssignee, error)
	GetCounts() (*ContactCounts, error)
}

// ContactService provides contact message operations
type ContactService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContactService creates a new contact service
func NewContactService(db *gorm.DB, cfg *config.Config) *ContactService {
	return &ContactService{
		DB:     db,
		Config: cfg,
	}
}

// withAssignee joins the assignee's username into the result set. A dangling
// assigned_to id simply yields an empty username.
func (s *ContactService) withAssignee() *gorm.DB {
	return s.DB.Model(&models.Contact{}).
		Select("contacts.*, admins.username AS assigned_to_username").
		Joins("LEFT JOIN admins ON admins.id = contacts.assigned_to")
}

// GetContacts returns contacts matching the filter, newest first
func (s *ContactService) GetContacts(filter ContactFilter) ([]models.ContactWithAssignee, error) {
	query := s.withAssignee()

	if filter.IsResolved != "" {
		query = query.Where("contacts.is_resolved = ?", filter.IsResolved == "true")
	}
	if filter.AssignedTo != "" {
		if filter.AssignedTo == AssignedToUnassigned {
			query = query.Where("contacts.assigned_to IS NULL")
		} else {
			query = query.Where("contacts.assigned_to = ?", filter.AssignedTo)
		}
	}

	var contacts []models.ContactWithAssignee
	if err := query.Order("contacts.created_at desc").Scan(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetContactByID returns one contact by id
func (s *ContactService) GetContactByID(id uint) (*models.ContactWithAssignee, error) {
	var contact models.ContactWithAssignee
	result := s.withAssignee().Where("contacts.id = ?", id).Scan(&contact)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrContactNotFound
	}
	return &contact, nil
}

// CreateContact stores a new inbound message
func (s *ContactService) CreateContact(contact *models.Contact) error {
	return s.DB.Create(contact).Error
}

// UpdateContact applies a partial field merge to a contact
func (s *ContactService) UpdateContact(id uint, updates map[string]interface{}) (*models.ContactWithAssignee, error) {
	if _, err := s.GetContactByID(id); err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.Contact{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetContactByID(id)
}

// ResolveContact sets the resolution flag and optionally records a response
func (s *ContactService) ResolveContact(id uint, isResolved bool, responseText string) (*models.ContactWithAssignee, error) {
	updates := map[string]interface{}{"is_resolved": isResolved}
	if responseText != "" {
		updates["response"] = responseText
	}
	return s.UpdateContact(id, updates)
}

// AssignContact points a contact at an admin account, or clears the
// assignment when adminID is nil
func (s *ContactService) AssignContact(id uint, adminID *uint) (*models.ContactWithAssignee, error) {
	return s.UpdateContact(id, map[string]interface{}{"assigned_to": adminID})
}

// GetCounts counts contacts overall and by resolution/assignment state
func (s *ContactService) GetCounts() (*ContactCounts, error) {
	counts := &ContactCounts{}

	if err := s.DB.Model(&models.Contact{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Contact{}).Where("is_resolved = ?", true).Count(&counts.Resolved).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Contact{}).Where("is_resolved = ?", false).Count(&counts.Unresolved).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Contact{}).Where("assigned_to IS NULL").Count(&counts.Unassigned).Error; err != nil {
		return nil, err
	}

	return counts, nil
}
