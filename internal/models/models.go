// Package models defines the domain types for Brainbox.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Body holds content text in either of the two accepted shapes: a plain
// string or an ordered list of strings. It marshals back in the same
// shape it was supplied in.
type Body struct {
	Text   string
	List   []string
	IsList bool
}

// TextBody builds a plain-string body.
func TextBody(s string) Body {
	return Body{Text: s}
}

// ListBody builds a list-format body.
func ListBody(items ...string) Body {
	return Body{List: items, IsList: true}
}

// Empty reports whether the body carries no text at all.
func (b Body) Empty() bool {
	if b.IsList {
		return len(b.List) == 0
	}
	return b.Text == ""
}

// MarshalJSON emits either a JSON string or a JSON string array.
func (b Body) MarshalJSON() ([]byte, error) {
	if b.IsList {
		return json.Marshal(b.List)
	}
	return json.Marshal(b.Text)
}

// UnmarshalJSON accepts either a JSON string or a JSON string array.
func (b *Body) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Body{Text: s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*b = Body{List: list, IsList: true}
		return nil
	}
	return fmt.Errorf("body must be a string or an array of strings")
}

// Content is a saved item (note, link, tweet, ...) owned by one user.
// Items are immutable after creation; the only mutation is deletion.
type Content struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      Body      `json:"body"`
	Type      string    `json:"type"`
	Tags      []string  `json:"tags"`
	Link      string    `json:"link,omitempty"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShareLink maps one opaque public hash to one owner. At most one row
// exists per owner; the hash stays stable until the owner revokes it.
type ShareLink struct {
	Hash      string    `json:"hash"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
