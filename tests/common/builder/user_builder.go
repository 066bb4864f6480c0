//go:build unit || e2e

package builder

import (
	"bookstore-api/internal/domain/user"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Role         string
	IsActive     bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Test",
		LastName:     "Reader",
		Phone:        "",
		Role:         "user",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	firstName, err := user.NewName(u.FirstName)
	if err != nil {
		return nil, err
	}

	lastName, err := user.NewName(u.LastName)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, firstName, lastName, u.Phone, role), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        uuid.New(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
	}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
