package models

import "time"

// ResetToken representa um token de redefinição de senha de uso único.
type ResetToken struct {
	Token     string    `json:"token"`
	UserUID   string    `json:"user_uid"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}
