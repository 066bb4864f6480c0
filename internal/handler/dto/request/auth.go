package request

import (
	"bookstore-api/internal/domain/user"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}

// ToDomain returns the user without a password hash; the usecase hashes the
// plain password and builds the persisted entity.
func (r RegisterRequest) ToDomain() (*user.User, user.Password, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, user.Password{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return nil, user.Password{}, err
	}
	firstName, err := user.NewName(r.FirstName)
	if err != nil {
		return nil, user.Password{}, err
	}
	lastName, err := user.NewName(r.LastName)
	if err != nil {
		return nil, user.Password{}, err
	}

	return user.NewUser(email, "", firstName, lastName, r.Phone, user.RoleUser), password, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Credentials{}, err
	}
	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(email, password), nil
}
