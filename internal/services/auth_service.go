package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rentora/internal/caching"
	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/repositories"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/gommon/random"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL = 24 * time.Hour
	otpTTL         = 15 * time.Minute

	otpResendLimit  = 3
	otpResendWindow = 15 * time.Minute
)

type SignupInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	Phone    *string     `json:"phone"`
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AuthService interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GoogleSignIn(ctx context.Context, idToken string, role models.Role) (*AuthResult, error)
	VerifyEmailOTP(ctx context.Context, userID uuid.UUID, otp string) error
	ResendOTP(ctx context.Context, userID uuid.UUID) error
	IssueToken(user *models.User) (string, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.TokenRepository
	notifier  NotificationService
	cacheSvc  caching.CacheService
	jwtSecret string
	jwks      jwt.Keyfunc
}

// NewAuthService wires the identity store. jwksURL points at Google's JWKS
// endpoint for verifying ID tokens from the OAuth sign-in path; when the
// endpoint cannot be reached at startup Google sign-in is disabled rather
// than failing the whole process.
func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository,
	notifier NotificationService, cacheSvc caching.CacheService, jwtSecret, jwksURL string) AuthService {
	svc := &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		notifier:  notifier,
		cacheSvc:  cacheSvc,
		jwtSecret: jwtSecret,
	}
	if jwksURL != "" {
		jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
			RefreshInterval:  time.Hour,
			RefreshRateLimit: time.Minute,
			RefreshErrorHandler: func(err error) {
				log.Printf("jwks refresh failed: %v", err)
			},
		})
		if err != nil {
			log.Printf("failed to load JWKS from %s, google sign-in disabled: %v", jwksURL, err)
		} else {
			svc.jwks = jwks.Keyfunc
		}
	}
	return svc
}

func (s *authService) Signup(ctx context.Context, input *SignupInput) (*AuthResult, error) {
	if err := common.ValidateRequiredString(input.Name, "name"); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := common.ValidateRequiredString(email, "email"); err != nil {
		return nil, common.Validationf("%s", err.Error())
	}
	if len(input.Password) < 8 {
		return nil, common.Validationf("password must be at least 8 characters")
	}
	if !input.Role.Valid() {
		return nil, common.Validationf("role must be tenant or landlord")
	}

	if existing, err := s.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, common.Conflict("email already registered")
	} else if err != nil && !errors.Is(err, repositories.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		Phone:        input.Phone,
		AuthProvider: models.AuthProviderLocal,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.issueOTP(ctx, user); err != nil {
		log.Printf("failed to issue signup OTP for %s: %v", user.Email, err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNoRows) {
		return nil, common.Unauthorized("invalid email or password")
	}
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == "" {
		return nil, common.Unauthorized("account uses google sign-in")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.Unauthorized("invalid email or password")
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// GoogleSignIn verifies a Google-issued ID token against the cached JWKS and
// provisions the account on first sign-in.
func (s *authService) GoogleSignIn(ctx context.Context, idToken string, role models.Role) (*AuthResult, error) {
	if s.jwks == nil {
		return nil, common.Upstreamf(nil, "google sign-in is not available")
	}

	parsed, err := jwt.Parse(idToken, s.jwks)
	if err != nil || !parsed.Valid {
		return nil, common.Unauthorized("invalid google token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, common.Unauthorized("invalid google token claims")
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if email == "" {
		return nil, common.Unauthorized("google token missing email")
	}
	email = strings.ToLower(email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNoRows) {
		if !role.Valid() {
			return nil, common.Validationf("role must be tenant or landlord for first sign-in")
		}
		user = &models.User{
			ID:            uuid.New(),
			Name:          name,
			Email:         email,
			Role:          role,
			EmailVerified: true,
			AuthProvider:  models.AuthProviderGoogle,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *authService) issueOTP(ctx context.Context, user *models.User) error {
	otp := random.String(6, random.Numeric)

	// One live verification token per user: replace any previous code.
	if err := s.tokenRepo.DeleteByUserAndType(ctx, user.ID, models.TokenEmailVerification); err != nil {
		return err
	}
	token := &models.Token{
		ID:        uuid.New(),
		UserID:    user.ID,
		Type:      models.TokenEmailVerification,
		Token:     otp,
		ExpiresAt: timeNow().Add(otpTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", otp, int(otpTTL.Minutes()))
	return s.notifier.SendEmail(ctx, user.Email, "Verify your email", body)
}

func (s *authService) VerifyEmailOTP(ctx context.Context, userID uuid.UUID, otp string) error {
	token, err := s.tokenRepo.GetByUserAndType(ctx, userID, models.TokenEmailVerification)
	if errors.Is(err, repositories.ErrNoRows) {
		return common.Validationf("no verification code pending")
	}
	if err != nil {
		return err
	}
	if token.Expired(timeNow()) {
		return common.Validationf("verification code expired")
	}
	if token.Token != otp {
		return common.Validationf("verification code does not match")
	}

	if err := s.userRepo.SetEmailVerified(ctx, userID); err != nil {
		return err
	}
	return s.tokenRepo.DeleteByUserAndType(ctx, userID, models.TokenEmailVerification)
}

func (s *authService) ResendOTP(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return common.Validationf("email already verified")
	}

	if s.cacheSvc != nil {
		key := fmt.Sprintf("otp-resend:%s", userID)
		limited, err := s.cacheSvc.IsRateLimited(ctx, key, otpResendLimit, otpResendWindow)
		if err != nil {
			log.Printf("otp resend rate-limit check failed for %s: %v", userID, err)
		} else if limited {
			return common.Validationf("too many verification codes requested, try again later")
		}
		if err := s.cacheSvc.IncrementRateLimit(ctx, key, otpResendWindow); err != nil {
			log.Printf("otp resend rate-limit increment failed for %s: %v", userID, err)
		}
	}

	return s.issueOTP(ctx, user)
}

// IssueToken mints the bearer token the auth middleware later resolves back
// into a caller identity.
func (s *authService) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"role":  string(user.Role),
		"email": user.Email,
		"exp":   timeNow().Add(accessTokenTTL).Unix(),
		"iat":   timeNow().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
