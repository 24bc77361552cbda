package userservice

// User модель профиля пользователя из UserService
type User struct {
	ID          int64   `json:"id"`
	DisplayName string  `json:"display_name"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
