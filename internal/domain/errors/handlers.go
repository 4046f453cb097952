package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_ALREADY_EXISTS"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the error envelope written by the HTTP error handler
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ToResponse renders an AppError into the error envelope.
func ToResponse(appErr AppError) Response {
	return Response{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Error: &ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		},
	}
}
