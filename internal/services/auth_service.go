package services

import (
	"time"

	"spendtrack/internal/auth"
	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/logger"
	"spendtrack/internal/models"
)

// authService composes the credential store, hasher, and token service
// into the register/login/refresh/current-user use cases. It keeps no
// session state: every request is resolved from its own token.
type authService struct {
	users  UserServicer
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(users UserServicer, hasher *auth.PasswordHasher, tokens *auth.TokenService) AuthServicer {
	return &authService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a user with the default role set and a hashed
// password, then issues a fresh token pair.
func (s *authService) Register(email, password, firstName, lastName string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(email, hash, firstName, lastName, models.DefaultRoles())
	if err != nil {
		return nil, err
	}

	logger.Get().Infow("user registered", "user_id", user.ID)
	return s.issueTokens(user)
}

// Login resolves the credentials, stamps lastLoginAt, and issues a fresh
// token pair.
func (s *authService) Login(email, password string) (*AuthResult, error) {
	user, err := s.ResolveCredentials(email, password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	logger.Get().Infow("user logged in", "user_id", user.ID)
	return s.issueTokens(user)
}

// Refresh validates a refresh token and issues a new token pair for the
// same user. The user record is re-read so a disabled or locked account
// cannot keep refreshing.
func (s *authService) Refresh(refreshToken string) (*AuthResult, error) {
	p, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(p.UserID)
	if err != nil {
		return nil, err
	}
	if err := checkAccountFlags(user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// ResolveCredentials bridges raw credentials to a user record. An unknown
// email and a wrong password produce the same error so callers cannot
// probe which emails are registered.
func (s *authService) ResolveCredentials(email, password string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := checkAccountFlags(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResolveToken bridges a bearer token to a principal.
func (s *authService) ResolveToken(token string) (*auth.Principal, error) {
	return s.tokens.ValidateAccessToken(token)
}

// CurrentUser returns the public view of the authenticated user.
func (s *authService) CurrentUser(p *auth.Principal) (*UserView, error) {
	if p == nil {
		return nil, apperrors.ErrUnauthorized
	}
	user, err := s.users.GetUserByID(p.UserID)
	if err != nil {
		return nil, err
	}
	view := NewUserView(user)
	return &view, nil
}

func (s *authService) issueTokens(user *models.User) (*AuthResult, error) {
	p := auth.PrincipalFromUser(user)

	accessToken, err := s.tokens.GenerateAccessToken(p)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(p)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.tokens.AccessTokenTTL().Milliseconds(),
		User:         NewUserView(user),
	}, nil
}

// checkAccountFlags rejects accounts whose flags make them unusable.
func checkAccountFlags(user *models.User) error {
	if !user.Enabled {
		return apperrors.ErrAccountDisabled
	}
	if user.Locked {
		return apperrors.ErrAccountLocked
	}
	if user.CredentialsExpired {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

// NewUserView projects a user record to its public-safe view.
func NewUserView(user *models.User) UserView {
	return UserView{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Roles:       user.Roles,
		CreatedAt:   user.CreatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}
