package response

// Response is the envelope every API endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Message returns a success envelope carrying only a message.
func Message(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

// OKMessage wraps data in a success envelope with a message.
func OKMessage(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Error returns an error envelope wrapping the message.
func Error(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

// ErrorData returns an error envelope carrying extra context, e.g. the
// space a vehicle already occupies.
func ErrorData(message string, data interface{}) Response {
	return Response{
		Success: false,
		Message: message,
		Data:    data,
	}
}

// ValidationError returns an error envelope with field-level detail.
func ValidationError(message string, errs interface{}) Response {
	return Response{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}
