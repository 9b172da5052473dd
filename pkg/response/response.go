package response

type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Error(code, message string, data any) Response {
	return Response{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
