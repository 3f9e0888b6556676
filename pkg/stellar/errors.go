package stellar

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/stellar/go/clients/horizonclient"
)

// ErrorKind classifies a failed horizon interaction
type ErrorKind int

const (
	// ErrUnknown is a horizon problem response without usable detail
	ErrUnknown ErrorKind = iota
	// ErrRateLimited means horizon throttled the request server side
	ErrRateLimited
	// ErrRejected means the transaction was rejected with result codes
	ErrRejected
	// ErrNetwork is a transport failure, horizon was never reached or
	// returned no problem document
	ErrNetwork
)

// Error is a tagged horizon failure. Codes carries transaction and
// operation result codes when horizon returned any, most specific last.
type Error struct {
	Kind    ErrorKind
	Codes   []string
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrRateLimited:
		return "rate limited by horizon"
	case ErrRejected:
		return fmt.Sprintf("transaction rejected: %s", strings.Join(e.Codes, ", "))
	case ErrNetwork:
		return fmt.Sprintf("network error: %s", e.Message)
	default:
		return e.Message
	}
}

// Classify maps a horizon client failure onto a tagged *Error
func Classify(err error) *Error {
	var hErr *horizonclient.Error
	if !errors.As(err, &hErr) {
		return &Error{Kind: ErrNetwork, Message: err.Error()}
	}

	if hErr.Problem.Status == http.StatusTooManyRequests {
		return &Error{Kind: ErrRateLimited, Message: hErr.Problem.Title}
	}

	if codes, codesErr := hErr.ResultCodes(); codesErr == nil {
		all := []string{codes.TransactionCode}
		all = append(all, codes.OperationCodes...)
		return &Error{Kind: ErrRejected, Codes: all}
	}

	message := hErr.Problem.Detail
	if message == "" {
		message = hErr.Problem.Title
	}
	return &Error{Kind: ErrUnknown, Message: message}
}
