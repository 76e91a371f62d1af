package dto

// APIResponse is the envelope every endpoint answers with. Errors carry a
// nil Data.
type APIResponse struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

func OK(status int, data any, msg string) APIResponse {
	return APIResponse{Status: status, Data: data, Message: msg}
}

func Fail(status int, msg string) APIResponse {
	return APIResponse{Status: status, Data: nil, Message: msg}
}
