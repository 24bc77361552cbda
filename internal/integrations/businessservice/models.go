package businessservice

// Business модель заведения из BusinessService
type Business struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
}

// IsOwner проверяет, что пользователь является владельцем заведения
func (b *Business) IsOwner(userID int64) bool {
	return b.OwnerID == userID
}

// ErrorResponse модель ошибки от BusinessService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
