package types

// ErrorResp is the body of every failed request.
type ErrorResp struct {
	Error string `json:"error"`
}
