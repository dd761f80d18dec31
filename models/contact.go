package models

import "time"

// Contact represents an inbound customer message. AssignedTo is a weak
// reference to an Admin: deleting the admin leaves the id dangling.
type Contact struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Email      string    `gorm:"type:varchar(100);not null" json:"email"`
	Subject    string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsResolved bool      `gorm:"not null;default:false;index" json:"isResolved"`
	AssignedTo *uint     `gorm:"index" json:"assignedTo"`
	Response   string    `gorm:"type:text" json:"response,omitempty"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ContactWithAssignee carries the assignee's username alongside the message
// for list and detail responses.
type ContactWithAssignee struct {
	Contact
	AssignedToUsername string `json:"assignedToUsername,omitempty"`
}
