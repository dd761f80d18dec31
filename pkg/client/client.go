// Package client is a typed HTTP client for the admin service. There is no
// ambient auth state: a Session is created by Login and passed explicitly to
// every call that needs one.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/aartibhkm/admin2/models"
	"github.com/aartibhkm/admin2/services"
)

// TokenHeader must match the header the auth gate reads
const TokenHeader = "x-auth-token"

// Identity is the decoded account identity mirrored from the token
type Identity struct {
	AdminID  uint   `json:"adminId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session carries the bearer token and its identity through every
// authenticated call
type Session struct {
	Token    string
	Identity Identity
}

// Client issues requests against the admin service
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// envelope mirrors the server's response format
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is a non-2xx response from the service
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (code %d): %s", e.StatusCode, e.Code, e.Message)
}

// New creates a client for the given base URL (e.g. http://localhost:3001)
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// do issues a request and decodes the envelope's data into out. A nil
// session sends no token.
func (c *Client) do(session *Session, method, path string, payload, out interface{}) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req.Header.Set(TokenHeader, session.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       env.Code,
			Message:    env.Message,
		}
	}

	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// loginData mirrors the login response payload
type loginData struct {
	Token    string `json:"token"`
	AdminID  uint   `json:"adminId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login authenticates and returns a session for subsequent calls
func (c *Client) Login(username, password string) (*Session, error) {
	var data loginData
	err := c.do(nil, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &data)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token: data.Token,
		Identity: Identity{
			AdminID:  data.AdminID,
			Username: data.Username,
			Role:     data.Role,
		},
	}, nil
}

// CurrentAdmin returns the account behind the session token
func (c *Client) CurrentAdmin(session *Session) (*models.Admin, error) {
	var admin models.Admin
	if err := c.do(session, http.MethodGet, "/api/auth/admin", nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListAdmins returns all admin accounts
func (c *Client) ListAdmins(session *Session) ([]models.Admin, error) {
	var admins []models.Admin
	if err := c.do(session, http.MethodGet, "/api/admins", nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// BookingFilter narrows ListBookings; zero values are omitted
type BookingFilter struct {
	Status   string
	Location string
	Date     string
	Email    string
}

func (f BookingFilter) encode() string {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.Email != "" {
		q.Set("email", f.Email)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListBookings returns bookings matching the filter
func (c *Client) ListBookings(session *Session, filter BookingFilter) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(session, http.MethodGet, "/api/bookings"+filter.encode(), nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking returns one booking by id
func (c *Client) GetBooking(session *Session, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(session, http.MethodGet, fmt.Sprintf("/api/bookings/%d", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus sets a booking's status
func (c *Client) UpdateBookingStatus(session *Session, id uint, status string) (*models.Booking, error) {
	var booking models.Booking
	err := c.do(session, http.MethodPut, fmt.Sprintf("/api/bookings/%d/status", id),
		map[string]string{"status": status}, &booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookingStats returns the per-status booking counts
func (c *Client) BookingStats(session *Session) (*services.BookingStatusCounts, error) {
	var counts services.BookingStatusCounts
	if err := c.do(session, http.MethodGet, "/api/bookings/stats/counts", nil, &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}

// ContactFilter narrows ListContacts. AssignedTo may be an admin id or the
// value "unassigned".
type ContactFilter struct {
	IsResolved string
	AssignedTo string
}

func (f ContactFilter) encode() string {
	q := url.Values{}
	if f.IsResolved != "" {
		q.Set("isResolved", f.IsResolved)
	}
	if f.AssignedTo != "" {
		q.Set("assignedTo", f.AssignedTo)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListContacts returns contact messages matching the filter
func (c *Client) ListContacts(session *Session, filter ContactFilter) ([]models.ContactWithAssignee, error) {
	var contacts []models.ContactWithAssignee
	if err := c.do(session, http.MethodGet, "/api/contacts"+filter.encode(), nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// AssignContact assigns a contact to an admin; nil clears the assignment
func (c *Client) AssignContact(session *Session, id uint, adminID *uint) (*models.ContactWithAssignee, error) {
	var contact models.ContactWithAssignee
	err := c.do(session, http.MethodPut, fmt.Sprintf("/api/contacts/%d/assign", id),
		map[string]interface{}{"adminId": adminID}, &contact)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// ResolveContact marks a contact resolved with an optional response text
func (c *Client) ResolveContact(session *Session, id uint, responseText string) (*models.ContactWithAssignee, error) {
	var contact models.ContactWithAssignee
	err := c.do(session, http.MethodPut, fmt.Sprintf("/api/contacts/%d/resolve", id),
		map[string]interface{}{"response": responseText}, &contact)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// DashboardStats returns the composite dashboard payload
func (c *Client) DashboardStats(session *Session) (*services.DashboardStats, error) {
	var stats services.DashboardStats
	if err := c.do(session, http.MethodGet, "/api/dashboard/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
