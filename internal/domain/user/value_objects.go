package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidName     = errors.New("name is required")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email Email, password Password) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email {
	return c.email
}

func (c Credentials) Password() Password {
	return c.password
}
