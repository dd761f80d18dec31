package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/middleware"
	"github.com/aartibhkm/admin2/models"
	"github.com/aartibhkm/admin2/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// envelope mirrors the unified response shape with the data left raw so
// each test can decode its own payload type.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Admin{}, &models.Booking{}, &models.Contact{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		JWTSecretKey:         "test-secret",
		ConsoleOrigin:        "http://localhost:5173",
		DefaultAdminUsername: "admin",
		DefaultAdminPassword: "admin123",
		DefaultAdminEmail:    "admin@instapark.com",
	}

	return SetupRouter(db, cfg), db, cfg
}

func seedRouterAdmin(t *testing.T, db *gorm.DB, cfg *config.Config, username, password string) *models.Admin {
	t.Helper()
	admin := &models.Admin{
		Username: username,
		Password: password,
		Email:    username + "@instapark.com",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := services.NewAdminService(db, cfg).CreateAdmin(admin); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}
	return admin
}

func mintToken(t *testing.T, cfg *config.Config, admin *models.Admin) string {
	t.Helper()
	token, err := services.NewJWTService(cfg).GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		t.Fatalf("failed to mint token: %v", err)
	}
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func TestHealthEndpoint(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}
}

func TestLoginIssuesUsableToken(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	seedRouterAdmin(t, db, cfg, "alice", "str0ngpass")

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "alice",
		"password": "str0ngpass",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	var data struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode login data: %v", err)
	}
	if data.Token == "" {
		t.Fatal("login returned empty token")
	}
	if data.Username != "alice" || data.Role != models.RoleAdmin {
		t.Errorf("login identity = %s/%s, want alice/%s", data.Username, data.Role, models.RoleAdmin)
	}

	// The issued token opens the gate on a protected route
	w = doJSON(r, http.MethodGet, "/api/auth/admin", data.Token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("current-admin status with fresh token = %d, want 200", w.Code)
	}
}

func TestLoginFailureBodiesAreIdentical(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	seedRouterAdmin(t, db, cfg, "bob", "correct-pass")

	unknown := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "nobody",
		"password": "whatever",
	})
	wrongPass := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "bob",
		"password": "wrong-pass",
	})

	if unknown.Code != http.StatusUnauthorized {
		t.Errorf("unknown-user status = %d, want 401", unknown.Code)
	}
	if wrongPass.Code != http.StatusUnauthorized {
		t.Errorf("wrong-password status = %d, want 401", wrongPass.Code)
	}

	// A caller must not be able to probe which accounts exist
	if unknown.Body.String() != wrongPass.Body.String() {
		t.Errorf("failure bodies differ: %q vs %q", unknown.Body.String(), wrongPass.Body.String())
	}
}

func TestAuthGateRejectsMissingAndBadTokens(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/bookings", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("missing-token status = %d, want 401", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/bookings", "not-a-jwt", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("garbage-token status = %d, want 401", w.Code)
	}

	// Well-formed token signed with a different secret
	forged, err := services.NewJWTService(&config.Config{JWTSecretKey: "other-secret"}).
		GenerateToken(1, "alice", models.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to forge token: %v", err)
	}
	w = doJSON(r, http.MethodGet, "/api/bookings", forged, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("forged-token status = %d, want 401", w.Code)
	}
}

func TestCreateBookingReportsFieldViolations(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	admin := seedRouterAdmin(t, db, cfg, "carol", "str0ngpass")
	token := mintToken(t, cfg, admin)

	w := doJSON(r, http.MethodPost, "/api/bookings", token, gin.H{
		"location":     "Downtown Parking",
		"date":         "2026-09-01",
		"startTime":    "09:00",
		"endTime":      "12:00",
		"vehicleType":  "spaceship",
		"slots":        0,
		"customerName": "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "555-0100",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid-booking status = %d, body %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	var violations []struct {
		Field string `json:"field"`
		Rule  string `json:"rule"`
	}
	if err := json.Unmarshal(env.Data, &violations); err != nil {
		t.Fatalf("failed to decode violations: %v", err)
	}

	fields := make(map[string]string, len(violations))
	for _, v := range violations {
		fields[v.Field] = v.Rule
	}
	if _, ok := fields["Slots"]; !ok {
		t.Errorf("no violation reported for Slots, got %v", fields)
	}
	if rule := fields["VehicleType"]; rule != "oneof" {
		t.Errorf("VehicleType rule = %q, want oneof", rule)
	}
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	admin := seedRouterAdmin(t, db, cfg, "dave", "str0ngpass")
	token := mintToken(t, cfg, admin)

	w := doJSON(r, http.MethodPost, "/api/bookings", token, gin.H{
		"location":     "Airport Parking",
		"date":         "2026-09-01",
		"startTime":    "09:00",
		"endTime":      "12:00",
		"vehicleType":  "suv",
		"slots":        2,
		"customerName": "Jane Doe",
		"email":        "jane@example.com",
		"phone":        "555-0100",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	var created models.Booking
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("failed to decode created booking: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("created booking has no id")
	}
	if created.Status != models.BookingPending || created.PaymentStatus != models.PaymentPending {
		t.Errorf("defaults not applied: status=%s paymentStatus=%s", created.Status, created.PaymentStatus)
	}

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/bookings/%d/status", created.ID), token, gin.H{
		"status": models.BookingConfirmed,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status update = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/bookings/stats/counts", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d", w.Code)
	}
	env = decodeEnvelope(t, w)
	var counts services.BookingStatusCounts
	if err := json.Unmarshal(env.Data, &counts); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if counts.Total != 1 || counts.Confirmed != 1 || counts.Pending != 0 {
		t.Errorf("stats = %+v, want total=1 confirmed=1", counts)
	}

	// The dashboard sees the same snapshot
	w = doJSON(r, http.MethodGet, "/api/dashboard/stats", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", w.Code)
	}
	env = decodeEnvelope(t, w)
	var stats services.DashboardStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("failed to decode dashboard stats: %v", err)
	}
	if stats.Counts.TotalBookings != counts.Total || stats.Counts.ConfirmedBookings != counts.Confirmed {
		t.Errorf("dashboard counts %+v disagree with booking stats %+v", stats.Counts, counts)
	}
}

func TestContactUnassignedFilterOverHTTP(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	admin := seedRouterAdmin(t, db, cfg, "erin", "str0ngpass")
	token := mintToken(t, cfg, admin)

	createContact := func(name string) models.Contact {
		w := doJSON(r, http.MethodPost, "/api/contacts", token, gin.H{
			"name":    name,
			"email":   name + "@example.com",
			"subject": "Refund",
			"message": "I was charged twice.",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("contact create status = %d, body %s", w.Code, w.Body.String())
		}
		var c models.Contact
		if err := json.Unmarshal(decodeEnvelope(t, w).Data, &c); err != nil {
			t.Fatalf("failed to decode contact: %v", err)
		}
		return c
	}

	assigned := createContact("assigned-one")
	free := createContact("free-one")

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/contacts/%d/assign", assigned.ID), token, gin.H{
		"adminId": admin.ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("assign status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/contacts?assignedTo=unassigned", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var contacts []models.ContactWithAssignee
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &contacts); err != nil {
		t.Fatalf("failed to decode contacts: %v", err)
	}
	if len(contacts) != 1 || contacts[0].ID != free.ID {
		t.Errorf("unassigned filter returned %d contacts, want only id %d", len(contacts), free.ID)
	}

	// The assigned contact carries its assignee's username in list form
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/contacts/%d", assigned.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var withAssignee models.ContactWithAssignee
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &withAssignee); err != nil {
		t.Fatalf("failed to decode contact: %v", err)
	}
	if withAssignee.AssignedToUsername != "erin" {
		t.Errorf("assignedToUsername = %q, want erin", withAssignee.AssignedToUsername)
	}
}
