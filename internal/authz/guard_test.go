package authz

import (
	"errors"
	"testing"

	"github.com/avolchek/gamevault/internal/auth"
	"github.com/avolchek/gamevault/internal/errs"
	"github.com/avolchek/gamevault/internal/model"
	"github.com/gofrs/uuid/v5"
)

func subjectFor(id uuid.UUID) auth.Subject {
	return auth.Authenticated(model.Identity{ID: id, Email: id.String() + "@x.com"})
}

func TestAuthorize_AnonymousAlwaysUnauthenticated(t *testing.T) {
	t.Parallel()

	owner := uuid.Must(uuid.NewV4())
	for _, action := range []Action{ActionRead, ActionList, ActionCreate, ActionModify, ActionDelete} {
		for _, res := range []Resource{Unowned(), OwnedBy(owner)} {
			if err := Authorize(auth.Anonymous(), action, res); !errors.Is(err, errs.ErrUnauthenticated) {
				t.Fatalf("action=%d res=%+v: want ErrUnauthenticated, got %v", action, res, err)
			}
		}
	}
}

func TestAuthorize_ReadListCreate_AnyAuthenticated(t *testing.T) {
	t.Parallel()

	sub := subjectFor(uuid.Must(uuid.NewV4()))
	other := uuid.Must(uuid.NewV4())

	for _, action := range []Action{ActionRead, ActionList, ActionCreate} {
		// no ownership check even on resources owned by someone else
		if err := Authorize(sub, action, OwnedBy(other)); err != nil {
			t.Fatalf("action=%d: want allow, got %v", action, err)
		}
	}
}

func TestAuthorize_DeleteOwned_OwnerOnly(t *testing.T) {
	t.Parallel()

	ownerID := uuid.Must(uuid.NewV4())
	strangerID := uuid.Must(uuid.NewV4())
	res := OwnedBy(ownerID)

	if err := Authorize(subjectFor(ownerID), ActionDelete, res); err != nil {
		t.Fatalf("owner delete: want allow, got %v", err)
	}
	if err := Authorize(subjectFor(strangerID), ActionDelete, res); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("stranger delete: want ErrForbidden, got %v", err)
	}
	if err := Authorize(subjectFor(strangerID), ActionModify, res); !errors.Is(err, errs.ErrForbidden) {
		t.Fatalf("stranger modify: want ErrForbidden, got %v", err)
	}
}

func TestAuthorize_DeleteUnowned_AuthenticatedSuffices(t *testing.T) {
	t.Parallel()

	if err := Authorize(subjectFor(uuid.Must(uuid.NewV4())), ActionDelete, Unowned()); err != nil {
		t.Fatalf("delete un-owned: want allow, got %v", err)
	}
}

func TestAuthorize_DenialsAreDistinguishable(t *testing.T) {
	t.Parallel()

	res := OwnedBy(uuid.Must(uuid.NewV4()))

	anon := Authorize(auth.Anonymous(), ActionDelete, res)
	stranger := Authorize(subjectFor(uuid.Must(uuid.NewV4())), ActionDelete, res)

	if errors.Is(anon, errs.ErrForbidden) || errors.Is(stranger, errs.ErrUnauthenticated) {
		t.Fatalf("401-class and 403-class denials must not overlap: anon=%v stranger=%v", anon, stranger)
	}
}
