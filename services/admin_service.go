package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/models"
	"github.com/aartibhkm/admin2/utils"
)

// Sentinel errors surfaced to controllers for status mapping
var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminAlreadyExists = errors.New("admin already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLastAdmin          = errors.New("cannot delete the last admin account")
)

// InterfaceAdminService defines the admin account service contract
type InterfaceAdminService interface {
	Authenticate(username, password string) (*models.Admin, error)
	GetAllAdmins() ([]models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	CreateAdmin(admin *models.Admin) error
	UpdateAdmin(id uint, updates map[string]interface{}) (*models.Admin, error)
	UpdatePassword(id uint, password string) error
	DeleteAdmin(id uint) error
}

// AdminService provides admin account operations
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) *AdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// Authenticate verifies login credentials and records the login time.
// Unknown username, wrong password and deactivated account all collapse into
// ErrInvalidCredentials so callers cannot enumerate usernames.
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.IsActive || !admin.ComparePassword(password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.DB.Model(&admin).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	admin.LastLogin = &now

	return &admin, nil
}

// GetAllAdmins returns all accounts sorted by username
func (s *AdminService) GetAllAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.Order("username asc").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// GetAdminByID returns one account by id
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin creates a new account. Username and email must be unique.
// Hashing happens in the model's BeforeCreate hook.
func (s *AdminService) CreateAdmin(admin *models.Admin) error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).
		Where("username = ? OR email = ?", admin.Username, admin.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAdminAlreadyExists
	}

	if admin.Role == "" {
		admin.Role = models.RoleAdmin
	}

	return s.DB.Create(admin).Error
}

// UpdateAdmin applies a partial field merge to an account
func (s *AdminService) UpdateAdmin(id uint, updates map[string]interface{}) (*models.Admin, error) {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	if username, ok := updates["username"].(string); ok && username != admin.Username {
		var count int64
		if err := s.DB.Model(&models.Admin{}).
			Where("username = ? AND id != ?", username, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAdminAlreadyExists
		}
	}
	if email, ok := updates["email"].(string); ok && email != admin.Email {
		var count int64
		if err := s.DB.Model(&models.Admin{}).
			Where("email = ? AND id != ?", email, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrAdminAlreadyExists
		}
	}

	if err := s.DB.Model(admin).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetAdminByID(id)
}

// UpdatePassword rehashes and stores a new password for an account
func (s *AdminService) UpdatePassword(id uint, password string) error {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return s.DB.Model(admin).Update("password", hashed).Error
}

// DeleteAdmin removes an account. Contacts assigned to it are left pointing
// at the deleted id; no cascade. The last remaining account cannot be
// deleted.
func (s *AdminService) DeleteAdmin(id uint) error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count <= 1 {
		return ErrLastAdmin
	}

	admin, err := s.GetAdminByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(admin).Error
}

// EnsureDefaultAdmin seeds the configured default account when the table is
// empty, so a fresh deployment is never locked out.
func (s *AdminService) EnsureDefaultAdmin() error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin := &models.Admin{
		Username: s.Config.DefaultAdminUsername,
		Password: s.Config.DefaultAdminPassword,
		Email:    s.Config.DefaultAdminEmail,
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}
	return s.DB.Create(admin).Error
}
