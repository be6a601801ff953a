package models

// RegisterForm is what the registration screen collects. ConfirmPassword
// never leaves the client.
type RegisterForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Request returns the API body for the form.
func (f RegisterForm) Request() RegisterRequest {
	return RegisterRequest{Name: f.Name, Email: f.Email, Password: f.Password}
}

// ChangePasswordForm is what the password change screen collects.
type ChangePasswordForm struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}
