package dto

// Response is the envelope every endpoint answers with.
type Response struct {
	Success      bool        `json:"success"`
	Payload      interface{} `json:"payload,omitempty"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

// MessageResponse is a payload carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the body of the admin login endpoint.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
