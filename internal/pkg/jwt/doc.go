// Package jwt issues and verifies the HS512 access tokens used for staff
// sessions, and carries verified claims through the request context.
package jwt
