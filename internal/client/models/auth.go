package models

// Credentials is the POST /login body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupData is the POST /signup body. SuperAdminKey is the shared secret
// gating admin account creation.
type SignupData struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	SuperAdminKey string `json:"super_admin_key"`
}

// AuthResponse is the successful POST /login response.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
