package serverutils

// WebResponse is the envelope every endpoint answers with.
type WebResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) WebResponse[T] {
	return WebResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(message string) WebResponse[any] {
	return WebResponse[any]{
		Success: false,
		Message: message,
	}
}
