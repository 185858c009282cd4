package model

import "encoding/json"

// InvocationResponse is the structured result returned by every unit invocation.
// Body holds a JSON document with either a "message" or an "error" field.
type InvocationResponse struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Error string `json:"error"`
}

// NewMessageResponse builds a response whose body is {"message": message}.
func NewMessageResponse(statusCode int, message string) InvocationResponse {
	return InvocationResponse{StatusCode: statusCode, Body: encodeBody(messageBody{Message: message})}
}

// NewErrorResponse builds a response whose body is {"error": message}.
func NewErrorResponse(statusCode int, message string) InvocationResponse {
	return InvocationResponse{StatusCode: statusCode, Body: encodeBody(errorBody{Error: message})}
}

func encodeBody(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(encoded)
}
