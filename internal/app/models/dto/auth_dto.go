package dto

// SendOTPRequest asks for a verification code on a phone number.
type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required,max=20"`
}

// SendOTPResponse reports a dispatched code and its lifetime.
type SendOTPResponse struct {
	Message          string `json:"message"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

// VerifyOTPRequest submits the received code for a phone number.
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required,max=20"`
	Code  string `json:"code" binding:"required,len=4"`
}

// LoginRequest authenticates with phone and password.
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required,max=20"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	ExpiresIn        int    `json:"expires_in"`
	RefreshExpiresIn int    `json:"refresh_expires_in"`
	Role             string `json:"role"`
}
