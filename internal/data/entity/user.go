package entity

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Name          string   `db:"name"`
	Email         string   `db:"email"`
	PasswordHash  string   `db:"password"`
	Phone         *string  `db:"phone"`
	EmailVerified bool     `db:"email_verified"`
	Role          UserRole `db:"role"`
	IsActive      bool     `db:"is_active"`

	// Password-reset flow. Persisted so an in-flight reset survives a
	// process restart. All three are nulled after a successful reset.
	ResetOTP           *string    `db:"reset_otp"`
	ResetOTPExpiresAt  *time.Time `db:"reset_otp_expires_at"`
	ResetOTPLastSentAt *time.Time `db:"reset_otp_last_sent_at"`
}
