// Package mailer is the outbound notification adapter. Delivery is
// best-effort: callers dispatch from a detached goroutine and only log
// failures.
package mailer

import (
	"context"
	"fmt"
)

type Kind string

const (
	KindVerifyEmail    Kind = "verify-email"
	KindResetCode      Kind = "reset-code"
	KindResetConfirmed Kind = "reset-confirmed"
)

type Message struct {
	Kind Kind
	To   string
	Code string // OTP code, empty for reset-confirmed
	// code validity window in minutes, from config; zero for
	// reset-confirmed
	TTLMinutes int
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// subject and plaintext body per message kind
func render(msg Message) (string, string, error) {
	switch msg.Kind {
	case KindVerifyEmail:
		return "Verify Your Email - Task Manager",
			fmt.Sprintf("Use the OTP below to verify your email:\n\n%s\n\nThis OTP is valid for %d minutes.", msg.Code, msg.TTLMinutes),
			nil
	case KindResetCode:
		return "Password Reset OTP - Task Manager",
			fmt.Sprintf("We received a request to reset your password. Use the OTP below to proceed:\n\n%s\n\nThis OTP is valid for %d minutes.\nIf you didn't request this password reset, you can safely ignore this email.", msg.Code, msg.TTLMinutes),
			nil
	case KindResetConfirmed:
		return "Password Reset Successful",
			"Your password has been reset successfully.\nIf you did not perform this action, please contact support immediately.",
			nil
	default:
		return "", "", fmt.Errorf("unknown mail kind %q", msg.Kind)
	}
}
