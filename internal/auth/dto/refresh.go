package dto

type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`
	IP           string `json:"-"`
}

type LogoutInput struct {
	RefreshToken string `json:"refresh_token"`
	IP           string `json:"-"`
}
