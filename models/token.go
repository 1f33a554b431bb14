package models

import "time"

// TokenStatus tracks whether a registration invitation has been consumed.
type TokenStatus string

const (
	TokenStatusPending    TokenStatus = "pending"
	TokenStatusRegistered TokenStatus = "registered"
)

// RegistrationToken is a single-use, time-boxed invitation bound to one
// email address. The pending -> registered flip is one-way.
type RegistrationToken struct {
	ID        string      `bson:"id" json:"id"`
	Token     string      `bson:"token" json:"token"`
	Email     string      `bson:"email" json:"email"`
	Name      string      `bson:"name" json:"name"`
	ExpiresAt time.Time   `bson:"expiresAt" json:"expiresAt"`
	Status    TokenStatus `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
}
