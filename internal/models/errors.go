package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors
var (
	ErrAmountNotPositive    = errors.New("the amount must be greater than zero")
	ErrAmountPrecision      = errors.New("the amount must not have more than two decimal places")
	ErrDescriptionEmpty     = errors.New("the description must not be empty")
	ErrDateNotSet           = errors.New("the date must be set in YYYY-MM-DD format")
	ErrMonthNotSet          = errors.New("the month must be set in YYYY-MM format")
	ErrInvalidCategory      = errors.New("the category is not valid")
	ErrInvalidPaidBy        = errors.New("paidBy is not valid")
	ErrInvalidPaymentMethod = errors.New("the payment method is not valid")
)
