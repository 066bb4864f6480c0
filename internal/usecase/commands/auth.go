package commands

import (
	"context"

	"bookstore-api/internal/domain/user"
	reqdto "bookstore-api/internal/handler/dto/request"
	"bookstore-api/internal/infra"
	"bookstore-api/internal/pkg/errs"
	"bookstore-api/internal/pkg/jwt"
	"bookstore-api/internal/pkg/password"
	"bookstore-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken           = errs.New("email is already registered")
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid email or password")
	ErrUserInactive         = errs.New("user account is inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	UpdateLastAccess(ctx context.Context, userID uuid.UUID) error
}

type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
	TokenValidator
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*queries.AuthorizedUserView, error) {
	userEntity, plainPassword, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	passwordHash, err := password.HashPassword(plainPassword.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userEntity = user.NewUser(
		userEntity.Email(),
		passwordHash,
		userEntity.FirstName(),
		userEntity.LastName(),
		userEntity.Phone(),
		user.RoleUser,
	)

	userID, err := a.userRepo.Create(ctx, userEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.userRepo.FindByID(ctx, userID)
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (string, *queries.AuthorizedUserView, error) {
	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(userView.ID, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastAccess(ctx, userView.ID); err != nil {
		return "", nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return token, userView, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}

func (a *authCommandsImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	userView, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	return userView, nil
}

func (a *authCommandsImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
