package apiclient

import "context"

// AuthService handles authentication endpoints.
type AuthService struct {
	client *Client
}

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries sign-up fields.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user. The caller is responsible for starting a
// session with the returned token; the client itself stays credential-free
// and reads whatever the TokenSource currently holds.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	if err := s.client.post(ctx, "/api/v1/auth/login", LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account and signs it in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := s.client.post(ctx, "/api/v1/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the current credential server-side.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.client.post(ctx, "/api/v1/auth/logout", nil, nil)
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context) (*User, error) {
	var out User
	if err := s.client.get(ctx, "/api/v1/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
