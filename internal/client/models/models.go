// Package models holds the wire and domain types exchanged with the SkillHub
// backend.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Whatsapp   string `json:"whatsapp,omitempty"`
	Instagram  string `json:"instagram,omitempty"`
	Bio        string `json:"bio,omitempty"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// Profile is a user together with the resources they shared. The backend
// returns it both for /api/users/me and /api/users/{id}/profile; the public
// variant has no email.
type Profile struct {
	User
	Resources []Resource `json:"resources"`
}

// Price is the resource price. The backend emits a number, older records
// and form input carry a string.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return p.Set(s)
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*p = Price(f)
	return nil
}

// Set parses a user-entered price. Blank input means free.
func (p *Price) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*p = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("price %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("price %q: not a number", s)
	}
	if f < 0 {
		return fmt.Errorf("price %q: negative", s)
	}
	*p = Price(f)
	return nil
}

func (p Price) String() string {
	if p == 0 {
		return "Free"
	}
	return "₹" + strconv.FormatFloat(float64(p), 'f', -1, 64)
}

type Resource struct {
	ID              int64  `json:"id,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Platform        string `json:"platform"`
	Price           Price  `json:"price"`
	CourseLink      string `json:"courseLink"`
	ImageURL        string `json:"imageUrl,omitempty"`
	OwnerID         int64  `json:"ownerId,omitempty"`
	OwnerName       string `json:"ownerName,omitempty"`
	OwnerProfilePic string `json:"ownerProfilePic,omitempty"`
	Whatsapp        string `json:"whatsapp,omitempty"`
	Instagram       string `json:"instagram,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Gender   string `json:"gender"`
	Whatsapp string `json:"whatsapp"`
}

// SignupForm is what the user types; ConfirmPassword never leaves the client.
type SignupForm struct {
	Name            string
	Email           string
	Password        []byte
	ConfirmPassword []byte
	Gender          string
	Whatsapp        string
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ProfileUpdate is the "data" part of PUT /api/users/me.
type ProfileUpdate struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Gender     string `json:"gender"`
	Whatsapp   string `json:"whatsapp"`
	Instagram  string `json:"instagram"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// UpdateFrom returns an update prefilled with u's editable fields.
func UpdateFrom(u User) ProfileUpdate {
	return ProfileUpdate{
		Name:       u.Name,
		Bio:        u.Bio,
		Gender:     u.Gender,
		Whatsapp:   u.Whatsapp,
		Instagram:  u.Instagram,
		ProfilePic: u.ProfilePic,
	}
}

// Image is an optional file attached to a multipart upload.
type Image struct {
	Name string
	Data []byte
}

func (i *Image) Empty() bool {
	return i == nil || len(i.Data) == 0
}

// Message is the error body the backend sends, either {"message": ...} or
// {"error": ...}.
type Message struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (m Message) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}
