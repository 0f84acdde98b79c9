package users

import (
	"context"
	"strings"

	"github.com/user/remainders-go/apperror"
	"github.com/user/remainders-go/auth"
	"github.com/user/remainders-go/config"
)

// Service holds the identity business logic on top of a Store.
type Service struct {
	store   Store
	authCfg *config.AuthConfig
}

// NewService creates a new Service.
func NewService(store Store, authCfg *config.AuthConfig) *Service {
	return &Service{store: store, authCfg: authCfg}
}

// Register creates a new account. The email is normalized to lowercase so
// uniqueness is case-insensitive. The returned profile never carries the
// credential.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*ProfileResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, apperror.NewValidationError("password and password_confirm do not match", nil)
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to process password", err)
	}

	user := &User{
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Name:           req.Name,
		HashedPassword: hashed,
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return profileFromUser(created), nil
}

// IssueToken authenticates the credentials and returns a signed bearer token.
// Unknown email, wrong password and empty credentials all map to the same
// 401 so the response does not reveal which part was wrong.
func (s *Service) IssueToken(ctx context.Context, req TokenRequest) (*TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperror.NewAuthError("unable to authenticate with provided credentials", nil)
	}

	user, err := s.store.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError("unable to authenticate with provided credentials", nil)
		}
		return nil, err
	}

	if !auth.CheckPassword(user.HashedPassword, req.Password) {
		return nil, apperror.NewAuthError("unable to authenticate with provided credentials", nil)
	}

	token, err := auth.GenerateToken(user.ID, s.authCfg)
	if err != nil {
		return nil, apperror.NewInternalError("failed to generate token", err)
	}
	return &TokenResponse{Token: token}, nil
}

// GetProfile returns the caller's own profile.
func (s *Service) GetProfile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profileFromUser(user), nil
}

// UpdateProfile applies the whitelisted profile fields. An empty payload is a
// no-op that returns the current profile.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*ProfileResponse, error) {
	if req.Name == nil {
		return s.GetProfile(ctx, userID)
	}

	user, err := s.store.UpdateName(ctx, userID, *req.Name)
	if err != nil {
		return nil, err
	}
	return profileFromUser(user), nil
}

// ChangePassword replaces the caller's credential after checking the
// confirmation and the strength policy.
func (s *Service) ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) (*ProfileResponse, error) {
	if req.Password != req.PasswordConfirm {
		return nil, apperror.NewValidationError("password and password_confirm do not match", nil)
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to process password", err)
	}

	if err := s.store.UpdatePassword(ctx, userID, hashed); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// DeleteAccount removes the caller's account after re-checking the current
// password. An empty password is a validation failure; a wrong one is an
// authentication failure. Either way the account stays intact.
func (s *Service) DeleteAccount(ctx context.Context, userID int64, req DeleteAccountRequest) error {
	if req.Password == "" {
		return apperror.NewValidationError("password is required to delete the account", nil)
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.HashedPassword, req.Password) {
		return apperror.NewAuthError("invalid password", nil)
	}

	return s.store.Delete(ctx, userID)
}
