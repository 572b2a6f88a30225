package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/ritesh23s/task-manager/internal/data/entity"
	"github.com/ritesh23s/task-manager/internal/data/repository"
	"github.com/ritesh23s/task-manager/internal/dto/request"
	"github.com/ritesh23s/task-manager/internal/dto/response"
	"github.com/ritesh23s/task-manager/pkg/mailer"
	"github.com/ritesh23s/task-manager/pkg/otp"
	"github.com/ritesh23s/task-manager/pkg/token"
	"github.com/ritesh23s/task-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	otps   *otp.Store
	tokens *token.Manager
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger

	now func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	otps *otp.Store,
	tokens *token.Manager,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		otps:   otps,
		tokens: tokens,
		mail:   mail,
		config: config,
		log:    log,
		now:    time.Now,
	}
}

// Register starts registration: issues a short-lived OTP for the email
// and dispatches it. No account exists until the code is verified.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	email := utils.NormalizeEmail(req.Email)

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return err
	}
	if existing != nil {
		return ErrUserExists
	}

	code := utils.GenerateOTP()
	s.otps.Set(email, code)

	s.log.Info("Registration OTP issued", zap.String("email", email))

	// Respond before delivery; mail failures are logged only.
	s.dispatchMail(mailer.KindVerifyEmail, email, code)

	return nil
}

// VerifyEmail completes registration: checks the pending OTP, creates
// the account (first account ever becomes admin) and consumes the code.
func (s *authService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error {
	email := utils.NormalizeEmail(req.Email)

	if !s.otps.Verify(email, req.OTP) {
		return ErrInvalidOTP
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return err
	}

	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Email:         email,
		PasswordHash:  hashedPassword,
		Phone:         req.Phone,
		EmailVerified: true,
		IsActive:      true,
	}

	// Role is assigned inside the insert transaction.
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrUserExists
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return err
	}

	s.otps.Delete(email)

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email),
		zap.String("role", string(user.Role)),
	)

	return nil
}

// Login verifies credentials and mints a bearer token. Each check is a
// distinct failure branch, in order: existence, verification, active
// status, password.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", email))
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	if !user.IsActive {
		s.log.Warn("Disabled account tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountDisabled
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	tokenString, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", email),
	)

	return &response.LoginResponse{
		Token: tokenString,
		Role:  user.Role,
		Name:  user.Name,
	}, nil
}

// ForgotPassword issues a reset OTP, persisted on the user record so it
// survives restarts. Resends inside the cooldown window are rejected.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", email))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	now := s.now()
	if user.ResetOTPLastSentAt != nil && now.Sub(*user.ResetOTPLastSentAt) < s.config.OTP.ResendCooldown {
		return ErrTooManyRequests
	}

	code := utils.GenerateOTP()
	expiresAt := now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	// Overwrites any earlier unconsumed code.
	if err := s.repo.User.SetResetOTP(ctx, user.ID, code, expiresAt, now); err != nil {
		s.log.Error("Failed to store reset OTP", zap.Error(err), zap.String("user_id", user.ID.String()))
		return err
	}

	s.log.Info("Reset OTP issued",
		zap.String("user_id", user.ID.String()),
		zap.Time("expires_at", expiresAt),
	)

	s.dispatchMail(mailer.KindResetCode, email, code)

	return nil
}

// ResetPassword verifies the persisted reset OTP and sets the new
// password. Missing, wrong and expired codes are indistinguishable to
// the caller.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	email := utils.NormalizeEmail(req.Email)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", email))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.ResetOTP == nil || *user.ResetOTP != req.OTP ||
		user.ResetOTPExpiresAt == nil || s.now().After(*user.ResetOTPExpiresAt) {
		return ErrInvalidOTP
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return err
	}

	// One statement: stores the hash and nulls the reset-OTP fields.
	if err := s.repo.User.ResetPassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return err
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))

	s.dispatchMail(mailer.KindResetConfirmed, email, "")

	return nil
}

// dispatchMail sends from a detached goroutine with its own timeout so
// the request path never waits on delivery. At-most-once: failures are
// logged, never retried.
func (s *authService) dispatchMail(kind mailer.Kind, to, code string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		msg := mailer.Message{Kind: kind, To: to, Code: code, TTLMinutes: s.config.OTP.ExpiryMinutes}
		if err := s.mail.Send(ctx, msg); err != nil {
			s.log.Error("Failed to send mail",
				zap.Error(err),
				zap.String("kind", string(kind)),
				zap.String("to", to),
			)
		}
	}()
}
