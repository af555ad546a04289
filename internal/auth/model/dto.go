// Package model provides domain models and DTOs for auth module.
package model

// RegisterRequest represents the request to create a new user account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"     binding:"required"`
}

// RegisterResponse represents the response after successful registration.
type RegisterResponse struct {
	User User `json:"user"`
}

// LoginRequest represents the request to authenticate a user.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response after successful login.
// Token is the opaque session token for the Authorization header.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
