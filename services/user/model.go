package user

// RegisterRequest carries a new local registration.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role" binding:"required,oneof=mentee mentor"`
}

// AuthResponse is returned on successful sign-in.
type AuthResponse struct {
	ID                  string `json:"id"`
	Token               string `json:"token"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	Name                string `json:"name,omitempty"`
	PhoneNumber         string `json:"phoneNumber,omitempty"`
	ProfileImage        string `json:"profileImage,omitempty"`
	CredentialsVerified bool   `json:"credentialsVerified"`
}
