package domain

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrLineItemNotFound = errors.New("line item not found")
	ErrLastLineItem     = errors.New("cannot remove the last remaining line item")
	ErrNoLineItems      = errors.New("document must contain at least one line item")
	ErrInvalidTaxRate   = errors.New("tax rate must be between 0 and 100")
	ErrInvalidDesign    = errors.New("design override contains an unknown value")
	ErrExportFailed     = errors.New("export failed; use the print path instead")
)
