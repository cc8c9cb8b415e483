package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RajaFawad1/aveenixx/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrEmptySlice    = errors.New("slice cannot be empty")
	ErrInvalidRule   = errors.New("invalid classification rule")
	ErrInvalidBounds = errors.New("confidence must be between 0 and 100")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateConfidence ensures a confidence value lies in the 0-100 range.
func validateConfidence(confidence float64) error {
	if confidence < 0 || confidence > 100 {
		return fmt.Errorf("%w: got %.2f", ErrInvalidBounds, confidence)
	}
	return nil
}

// validateProducts validates a slice of products before persistence.
func validateProducts(products []model.Product) error {
	if products == nil {
		return fmt.Errorf("%w: products", ErrNilParameter)
	}
	if len(products) == 0 {
		return fmt.Errorf("%w: products", ErrEmptySlice)
	}

	for i, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product at index %d: missing ID", i)
		}
		if p.Name == "" {
			return fmt.Errorf("product at index %d: missing name", i)
		}
	}
	return nil
}
