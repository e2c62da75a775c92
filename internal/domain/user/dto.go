package user

type SignupInput struct {
	Name     string `json:"name" binding:"required,min=1,max=100" example:"Alice Johnson"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"SecurePass123!"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"SecurePass123!"`
}
