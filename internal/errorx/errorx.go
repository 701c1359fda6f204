package errorx

import (
	"context"
	"errors"
	"net/http"

	"tokenservice/internal/types"
)

// CodeError is an error whose message is safe to return to API clients.
type CodeError struct {
	Code int
	Msg  string
}

func (e *CodeError) Error() string {
	return e.Msg
}

func New(msg string) error {
	return &CodeError{Code: http.StatusBadRequest, Msg: msg}
}

var (
	ErrAddressRequired      = New("address is required")
	ErrTokenAddressRequired = New("token address is required")
	ErrInvalidAddress       = New("invalid address")
	ErrEmptyAddressList     = New("address list is empty")
	ErrInvalidN             = New("invalid value of parameter N")
	ErrNoAddresses          = New("failed to get addresses")
	ErrGetBalance           = New("failed to get balance")
	ErrGetBalances          = New("failed to get balances")
	ErrGetTop               = New("failed to get top balances")
	ErrGetTokenInfo         = New("failed to get token info")
)

// Handler is installed with httpx.SetErrorHandlerCtx. Every failure is a 400
// with an {"error": ...} body; request parse errors keep their own text.
func Handler(_ context.Context, err error) (int, any) {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code, types.ErrorResp{Error: ce.Msg}
	}
	return http.StatusBadRequest, types.ErrorResp{Error: err.Error()}
}
