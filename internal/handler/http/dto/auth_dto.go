package dto

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72,containsuppercase,containslowercase,containsdigit,containssymbol"`
	DOB      string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Phone    string `json:"phone" binding:"omitempty,max=32"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest starts the password reset.
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifySecurityRequest answers the security questions of the password reset.
type VerifySecurityRequest struct {
	Email string `json:"email" binding:"required,email"`
	DOB   string `json:"dob" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// VerifySecurityResponse carries the one-time reset credentials.
type VerifySecurityResponse struct {
	Verifier string `json:"verifier"`
	Token    string `json:"token"`
}

type ResetPasswordRequest struct {
	Verifier    string `json:"verifier" binding:"required"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72"`
}

// UpdateProfileRequest is the body of PUT /api/profile; absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	DOB      *string `json:"dob" binding:"omitempty"`
	Phone    *string `json:"phone" binding:"omitempty,max=32"`
	PhotoURL *string `json:"photoURL" binding:"omitempty"`
}

// ProfileActionRequest is the body of POST /api/profile.
type ProfileActionRequest struct {
	Action          string `json:"action" binding:"required,oneof=password avatar"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	PhotoURL        string `json:"photoURL"`
}
