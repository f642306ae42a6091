package shareservice

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/starford/brainbox/internal/apperr"
	"github.com/starford/brainbox/internal/models"
	"github.com/starford/brainbox/internal/store"
	"github.com/starford/brainbox/internal/testutil"
)

func testService(t *testing.T) (*Service, *store.DB) {
	t.Helper()
	db := testutil.TestStore(t)
	return NewService(db, 0), db
}

func addUser(t *testing.T, db *store.DB, id, username string) {
	t.Helper()
	if _, err := db.CreateUser(context.Background(), models.User{ID: id, Username: username, PasswordHash: "x"}); err != nil {
		t.Fatal(err)
	}
}

var hexToken = regexp.MustCompile(`^[0-9a-f]+$`)

func TestEnableGeneratesHexToken(t *testing.T) {
	svc, db := testService(t)
	addUser(t, db, "u1", "alice")

	res, err := svc.SetSharing(context.Background(), "u1", true)
	if err != nil {
		t.Fatalf("SetSharing: %v", err)
	}
	if !res.Created {
		t.Error("first enable should report created")
	}
	if len(res.Hash) != DefaultTokenLength {
		t.Errorf("hash length = %d, want %d", len(res.Hash), DefaultTokenLength)
	}
	if !hexToken.MatchString(res.Hash) {
		t.Errorf("hash %q is not lowercase hex", res.Hash)
	}
}

func TestEnableIsIdempotent(t *testing.T) {
	svc, db := testService(t)
	addUser(t, db, "u1", "alice")
	ctx := context.Background()

	first, err := svc.SetSharing(ctx, "u1", true)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.SetSharing(ctx, "u1", true)
	if err != nil {
		t.Fatal(err)
	}
	if second.Hash != first.Hash {
		t.Errorf("second enable rotated the hash: %q != %q", second.Hash, first.Hash)
	}
	if second.Created {
		t.Error("second enable should not report created")
	}

	// Exactly one row for the owner either way.
	if _, err := db.GetShareLinkByUser(ctx, "u1"); err != nil {
		t.Fatal(err)
	}
}

func TestDisableWithoutEnableIsNoop(t *testing.T) {
	svc, db := testService(t)
	addUser(t, db, "u1", "alice")

	if _, err := svc.SetSharing(context.Background(), "u1", false); err != nil {
		t.Fatalf("disable without prior enable: %v", err)
	}
}

func TestResolveAfterDisable(t *testing.T) {
	svc, db := testService(t)
	addUser(t, db, "u1", "alice")
	ctx := context.Background()

	res, err := svc.SetSharing(ctx, "u1", true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SetSharing(ctx, "u1", false); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ResolvePublic(ctx, res.Hash); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("revoked hash resolved: %v", err)
	}
}

func TestResolvePublic(t *testing.T) {
	svc, db := testService(t)
	addUser(t, db, "u1", "alice")
	ctx := context.Background()

	if _, err := db.CreateContent(ctx, models.Content{
		ID: "c1", Title: "Note1", Body: models.TextBody("hi"), Type: "Note", UserID: "u1",
	}); err != nil {
		t.Fatal(err)
	}

	res, err := svc.SetSharing(ctx, "u1", true)
	if err != nil {
		t.Fatal(err)
	}

	brain, err := svc.ResolvePublic(ctx, res.Hash)
	if err != nil {
		t.Fatalf("ResolvePublic: %v", err)
	}
	if brain.Username != "alice" {
		t.Errorf("username = %q, want alice", brain.Username)
	}
	if len(brain.Content) != 1 || brain.Content[0].Title != "Note1" {
		t.Errorf("content = %+v", brain.Content)
	}
}

func TestResolveUnknownHash(t *testing.T) {
	svc, _ := testService(t)
	if _, err := svc.ResolvePublic(context.Background(), "doesnotexist"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("unknown hash error = %v, want ErrNotFound", err)
	}
}

func TestCustomTokenLength(t *testing.T) {
	db := testutil.TestStore(t)
	svc := NewService(db, 16)
	addUser(t, db, "u1", "alice")

	res, err := svc.SetSharing(context.Background(), "u1", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Hash) != 16 {
		t.Errorf("hash length = %d, want 16", len(res.Hash))
	}
}
