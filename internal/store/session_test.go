package store

import "testing"

func setupSessionTest(t *testing.T) (*SessionStore, string, string) {
	t.Helper()
	db := setupTestDB(t)
	us := NewUserStore(db)
	hs := NewHouseholdStore(db)

	u, err := us.Create("alice@example.com", "Alice", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	h, err := hs.Create("Bag End")
	if err != nil {
		t.Fatalf("create household: %v", err)
	}
	return NewSessionStore(db), u.ID, h.ID
}

func TestSessionCreate(t *testing.T) {
	ss, userID, householdID := setupSessionTest(t)

	sess, err := ss.Create(userID, householdID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if sess.Token == "" {
		t.Error("expected non-empty token")
	}
	if len(sess.Token) != 64 { // 32 bytes hex-encoded
		t.Errorf("token length = %d, want 64", len(sess.Token))
	}
	if sess.UserID != userID {
		t.Errorf("user_id = %q, want %q", sess.UserID, userID)
	}
	if sess.HouseholdID != householdID {
		t.Errorf("household_id = %q, want %q", sess.HouseholdID, householdID)
	}
}

func TestSessionGetByToken(t *testing.T) {
	ss, userID, householdID := setupSessionTest(t)

	created, err := ss.Create(userID, householdID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	sess, err := ss.GetByToken(created.Token)
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if sess == nil {
		t.Fatal("expected session, got nil")
	}
	if sess.ID != created.ID {
		t.Errorf("id = %q, want %q", sess.ID, created.ID)
	}

	missing, err := ss.GetByToken("deadbeef")
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown token, got %+v", missing)
	}
}

func TestSessionDelete(t *testing.T) {
	ss, userID, householdID := setupSessionTest(t)

	created, _ := ss.Create(userID, householdID)
	if err := ss.Delete(created.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	sess, err := ss.GetByToken(created.Token)
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if sess != nil {
		t.Errorf("expected nil after delete, got %+v", sess)
	}
}
