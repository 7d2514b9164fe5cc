package service

import (
	"errors"
	"net/http"

	"fusion-kitchen/kitchen-svc/internal/domain"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrDuplicateSubmission = errors.New("order already submitted")
	ErrAgentUnavailable    = errors.New("agent unavailable")
)

// PayloadError is an error that knows the HTTP status it should surface as.
type PayloadError struct {
	Message string
	Status  int
}

func (e *PayloadError) Error() string {
	return e.Message
}

func badRequest(message string) error {
	return &PayloadError{Message: message, Status: http.StatusBadRequest}
}

var ErrNoLocations = &PayloadError{
	Message: "No locations available in the database",
	Status:  http.StatusInternalServerError,
}

// ItemNotFoundError carries the item ids the order does have, to help the
// caller spot a stale board.
type ItemNotFoundError struct {
	OrderID      string
	ItemID       string
	KnownItemIDs []domain.UUID
}

func (e *ItemNotFoundError) Error() string {
	return "order item not found"
}

type AgentError struct {
	Detail string
}

func (e *AgentError) Error() string {
	return "Agent error: " + e.Detail
}

func (e *AgentError) Unwrap() error {
	return ErrAgentUnavailable
}
