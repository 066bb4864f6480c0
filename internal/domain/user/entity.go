package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	firstName    Name
	lastName     Name
	phone        string
	role         Role
	lastAccess   *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, firstName, lastName Name, phone string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		phone:        phone,
		role:         role,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) FirstName() Name        { return u.firstName }
func (u *User) LastName() Name         { return u.lastName }
func (u *User) Phone() string          { return u.phone }
func (u *User) Role() Role             { return u.role }
func (u *User) LastAccess() *time.Time { return u.lastAccess }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}
