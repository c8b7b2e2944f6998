package auth

type RegisterRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=30" example:"zura_ge"`
	Email           string `json:"email" binding:"required,email" example:"zura@example.com"`
	DiscordUsername string `json:"discord_username" binding:"required,max=64" example:"zura#1337"`
	Password        string `json:"password" binding:"required,min=8,max=72" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zura@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
