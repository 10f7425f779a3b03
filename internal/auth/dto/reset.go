package dto

type ResetRequestInput struct {
	Email string `json:"email"`
	IP    string `json:"-"`
}

type ResetPasswordInput struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
	IP          string `json:"-"`
}

type SendVerificationInput struct {
	Email string `json:"email"`
}
