// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Identity is the user-facing representation of an account.
// It is derived from a stored credential and never carries secret material.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// User is an account row as stored by the credential store.
// PwdHash/SaltAuth never leave the repository/crypto boundary.
type User struct {
	ID        uuid.UUID // PK
	Email     string    // unique
	PwdHash   []byte    // Argon2id(password, SaltAuth)
	SaltAuth  []byte    // per-user auth salt
	CreatedAt time.Time
}

// Identity projects the public part of a user row.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email}
}

// Game is an un-owned aggregate; deleting it cascades over its reviews.
type Game struct {
	ID      int64    `json:"id"`
	Title   string   `json:"title"`
	Reviews []Review `json:"reviews"`
}

// Review is owned by the identity that wrote it; only the owner may delete it.
type Review struct {
	ID          int64     `json:"id"`
	GameID      int64     `json:"game_id"`
	UserID      uuid.UUID `json:"user_id"`
	AuthorEmail string    `json:"author_email"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session is the client-held pairing of a token and its identity,
// persisted across restarts by the session store.
type Session struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`
}
