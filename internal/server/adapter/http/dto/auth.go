package dto

type SignUpRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	RepeatPassword string `json:"repeatPassword" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserItem struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User    UserItem `json:"user"`
	Token   string   `json:"token"`
	Message string   `json:"message,omitempty"`
}
