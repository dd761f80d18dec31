package services

import (
	"errors"
	"testing"

	"github.com/aartibhkm/admin2/models"
)

func seedContact(t *testing.T, svc *ContactService, name string, assignedTo *uint) *models.Contact {
	t.Helper()

	contact := &models.Contact{
		Name:       name,
		Email:      "someone@example.com",
		Subject:    "Parking question",
		Message:    "Is the lot open on Sundays?",
		AssignedTo: assignedTo,
	}
	if err := svc.CreateContact(contact); err != nil {
		t.Fatalf("failed to seed contact: %v", err)
	}
	return contact
}

func TestUnassignedSentinelSelectsNullOnly(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	adminSvc := NewAdminService(db, cfg)
	svc := NewContactService(db, cfg)

	// An account literally named "unassigned" must never be confused with
	// the sentinel filter value.
	decoy := seedAdmin(t, adminSvc, "unassigned", "pw123456")

	seedContact(t, svc, "floating", nil)
	seedContact(t, svc, "decoy-assigned", &decoy.ID)

	unassigned, err := svc.GetContacts(ContactFilter{AssignedTo: AssignedToUnassigned})
	if err != nil {
		t.Fatalf("GetContacts(unassigned): %v", err)
	}
	if len(unassigned) != 1 {
		t.Fatalf("unassigned contacts = %d, want 1", len(unassigned))
	}
	if unassigned[0].Name != "floating" {
		t.Errorf("sentinel filter matched %q instead of the unassigned contact", unassigned[0].Name)
	}
	if unassigned[0].AssignedTo != nil {
		t.Error("sentinel filter returned a contact with a real assignee")
	}
}

func TestGetContactsJoinsAssigneeUsername(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	adminSvc := NewAdminService(db, cfg)
	svc := NewContactService(db, cfg)

	admin := seedAdmin(t, adminSvc, "alice", "pw123456")
	seedContact(t, svc, "assigned", &admin.ID)

	contacts, err := svc.GetContacts(ContactFilter{})
	if err != nil {
		t.Fatalf("GetContacts: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("contacts = %d, want 1", len(contacts))
	}
	if contacts[0].AssignedToUsername != "alice" {
		t.Errorf("AssignedToUsername = %q, want alice", contacts[0].AssignedToUsername)
	}
}

func TestAdminDeletionLeavesDanglingAssignment(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	adminSvc := NewAdminService(db, cfg)
	svc := NewContactService(db, cfg)

	keeper := seedAdmin(t, adminSvc, "keeper", "pw123456")
	_ = keeper
	doomed := seedAdmin(t, adminSvc, "doomed", "pw123456")
	contact := seedContact(t, svc, "orphaned", &doomed.ID)

	if err := adminSvc.DeleteAdmin(doomed.ID); err != nil {
		t.Fatalf("DeleteAdmin: %v", err)
	}

	// No cascade: the reference dangles and the join yields no username
	after, err := svc.GetContactByID(contact.ID)
	if err != nil {
		t.Fatalf("GetContactByID: %v", err)
	}
	if after.AssignedTo == nil || *after.AssignedTo != doomed.ID {
		t.Error("assignment was cleared; expected the dangling id to remain")
	}
	if after.AssignedToUsername != "" {
		t.Errorf("AssignedToUsername = %q for a deleted admin, want empty", after.AssignedToUsername)
	}
}

func TestResolveContactDefaultsAndResponse(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db, newTestConfig())

	contact := seedContact(t, svc, "pending", nil)

	resolved, err := svc.ResolveContact(contact.ID, true, "refund issued")
	if err != nil {
		t.Fatalf("ResolveContact: %v", err)
	}
	if !resolved.IsResolved {
		t.Error("contact not marked resolved")
	}
	if resolved.Response != "refund issued" {
		t.Errorf("Response = %q", resolved.Response)
	}
}

func TestAssignAndClearAssignment(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	adminSvc := NewAdminService(db, cfg)
	svc := NewContactService(db, cfg)

	admin := seedAdmin(t, adminSvc, "alice", "pw123456")
	contact := seedContact(t, svc, "ticket", nil)

	assigned, err := svc.AssignContact(contact.ID, &admin.ID)
	if err != nil {
		t.Fatalf("AssignContact: %v", err)
	}
	if assigned.AssignedTo == nil || *assigned.AssignedTo != admin.ID {
		t.Error("assignment not stored")
	}

	cleared, err := svc.AssignContact(contact.ID, nil)
	if err != nil {
		t.Fatalf("AssignContact(nil): %v", err)
	}
	if cleared.AssignedTo != nil {
		t.Error("assignment not cleared by nil adminID")
	}
}

func TestContactCounts(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	adminSvc := NewAdminService(db, cfg)
	svc := NewContactService(db, cfg)

	admin := seedAdmin(t, adminSvc, "alice", "pw123456")

	seedContact(t, svc, "one", nil)
	seedContact(t, svc, "two", &admin.ID)
	c3 := seedContact(t, svc, "three", nil)
	if _, err := svc.ResolveContact(c3.ID, true, ""); err != nil {
		t.Fatalf("ResolveContact: %v", err)
	}

	counts, err := svc.GetCounts()
	if err != nil {
		t.Fatalf("GetCounts: %v", err)
	}
	if counts.Total != 3 || counts.Resolved != 1 || counts.Unresolved != 2 || counts.Unassigned != 2 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestGetContactByIDNotFound(t *testing.T) {
	svc := NewContactService(newTestDB(t), newTestConfig())

	if _, err := svc.GetContactByID(12345); !errors.Is(err, ErrContactNotFound) {
		t.Errorf("got %v, want ErrContactNotFound", err)
	}
}
