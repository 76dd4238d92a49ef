package dto

// RegisterRequest input for user registration (password arrives plain and
// is hashed in the use case).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest input for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest input for the profile update (name only).
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// ChangePasswordRequest input for the password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserResponse output for a user. The password hash never appears here.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterResponse wraps the created user.
type RegisterResponse struct {
	User UserResponse `json:"user"`
}

// LoginResponse wraps the user and the signed token.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
