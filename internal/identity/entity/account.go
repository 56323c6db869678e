package entity

import "time"

// Account is a registered staff member.
type Account struct {
	ID         int64
	Name       string
	Email      string
	OTPEnabled bool
	CreatedAt  time.Time
}

// AccountAuth carries the credentials needed to authenticate an account.
type AccountAuth struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	OTPSecret    []byte // AES-GCM encrypted TOTP seed
	OTPEnabled   bool
}

// NewAccount is the data required to create an account.
type NewAccount struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	OTPSecret    []byte
	OTPEnabled   bool
}
