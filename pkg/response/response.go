package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"is_admin"`
	Redirect string `json:"redirect"`
}

// Notice is a one-shot message shown to the user on the next page they load.
type Notice struct {
	Level string `json:"level" example:"error"`
	Text  string `json:"text" example:"No tienes permiso para acceder a esta pagina."`
}

// RedirectResponse tells the client where to go after a refused or completed action.
type RedirectResponse struct {
	Error    string  `json:"error,omitempty"`
	Message  string  `json:"message,omitempty"`
	Redirect string  `json:"redirect"`
	Notice   *Notice `json:"notice,omitempty"`
}

type PageResponse[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
