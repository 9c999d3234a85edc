package pikndel

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind classifies an outbound-call failure.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindNetwork            Kind = "network"
	KindBadRequest         Kind = "bad_request"
	KindUnauthorized       Kind = "unauthorized"
	KindProviderServer     Kind = "provider_server"
	KindUnexpectedStatus   Kind = "unexpected_status"
	KindMissingCredentials Kind = "missing_credentials"
	KindTokenMissing       Kind = "token_missing"
)

// Error carries the provider's status and raw body when a response was
// received, so the HTTP layer can surface both unchanged.
type Error struct {
	Kind    Kind
	Message string
	Status  int             // provider HTTP status; 0 when no response
	RawBody json.RawMessage // provider body when available
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pikndel: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("pikndel: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus is the status mirrored to the gateway caller.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindMissingCredentials:
		return http.StatusBadRequest
	case KindNetwork:
		return http.StatusBadGateway
	}
	if e.Status >= 400 && e.Status <= 599 {
		return e.Status
	}
	return http.StatusInternalServerError
}

func missingField(name string) *Error {
	return &Error{Kind: KindValidation, Message: "Missing required field: " + name + "."}
}
