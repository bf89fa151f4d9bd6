package dto

// LoginRequest dữ liệu đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse token trả về sau đăng nhập
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	UserID      uint   `json:"userId"`
	Role        int    `json:"role"`
}
