// Package otp implements the TOTP side of two-factor login: provisioning a
// secret plus otpauth URI for an authenticator app, and checking the
// six-digit codes it produces.
package otp
