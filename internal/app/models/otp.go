package models

import "time"

// OTP is a pending phone verification code. At most one row exists per
// phone; the row doubles as the resend cooldown marker.
type OTP struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
