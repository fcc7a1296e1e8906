package api

import "context"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Telefono string `json:"telefono,omitempty"`
	RUT      string `json:"rut,omitempty"`
}

// AuthResponse is the payload returned by /auth/login and /auth/register.
type AuthResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	Tipo         string   `json:"tipo"`
	ID           int64    `json:"id"`
	Email        string   `json:"email"`
	Nombre       string   `json:"nombre"`
	Apellido     string   `json:"apellido"`
	Roles        []string `json:"roles"`
	Permisos     []string `json:"permisos"`
}

// AuthService wraps the authentication endpoints. These calls never carry
// a bearer token; the transport skips them by path.
type AuthService struct {
	c *Client
}

func (c *Client) Auth() *AuthService {
	return &AuthService{c: c}
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.c.post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
