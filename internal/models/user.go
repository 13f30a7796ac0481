package models

type User struct {
	Base
	Username   string `gorm:"uniqueIndex;not null" json:"username"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	FullName   string `json:"full_name"`
	Password   string `gorm:"not null" json:"-"`
	Avatar     string `json:"avatar"`
	CoverImage string `json:"cover_image"`
}

type RegisterRequest struct {
	Username   string `json:"username" binding:"required,notblank,max=50"`
	Email      string `json:"email" binding:"required,email"`
	FullName   string `json:"full_name" binding:"max=100"`
	Password   string `json:"password" binding:"required,min=6"`
	Avatar     string `json:"avatar" binding:"omitempty,url"`
	CoverImage string `json:"cover_image" binding:"omitempty,url"`
}

type LoginRequest struct {
	// Login is an email address or a username.
	Login    string `json:"login" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
