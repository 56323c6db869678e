package inbound

import "net/http"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID    int64  `json:"user_id,string"`
	QRCodeURL string `json:"qr_code_url"`
}

func (RegisterResponse) Message() string {
	return "Registration successful. Scan the QR code with an authenticator app."
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	OTP      string `json:"otp,omitempty"`
}

type LoginUserPayload struct {
	ID    int64  `json:"id,string"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	OtpRequired bool              `json:"otp_required,omitempty"`
	User        *LoginUserPayload `json:"user,omitempty"`
	AccessToken string            `json:"access_token,omitempty"`
}
