package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Phone    string `json:"phone"    validate:"required,e164"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type OtpRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
}

type OtpVerifyRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code"  validate:"required,len=6,numeric"`
}

type ResetPasswordRequest struct {
	Phone       string `json:"phone"       validate:"required,e164"`
	Code        string `json:"code"        validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type RefreshRequest struct {
	Refresh string `json:"refreshToken" validate:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refreshToken" validate:"required"`
}

type UnlockRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

type TokenPair struct {
	Access  string `json:"accessToken"`
	Refresh string `json:"refreshToken"`
}

type AuthResponse struct {
	TokenPair
	Username string `json:"username"`
	Role     string `json:"role"`
}

type OtpResponse struct {
	Message   string `json:"message"`
	ExpiresIn int    `json:"expiresInSeconds"`
	Code      string `json:"code,omitempty"`
}
