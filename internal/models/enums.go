package models

import (
	"fmt"
	"strings"
)

// Category classifies what an expense was for.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transportation"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills & Utilities"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryTravel        Category = "Travel"
	CategoryOther         Category = "Other"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryOther,
}

// PaidBy is who paid for an expense.
type PaidBy string

const (
	PaidByMe     PaidBy = "Me"
	PaidByMom    PaidBy = "Mom"
	PaidByDad    PaidBy = "Dad"
	PaidByFamily PaidBy = "Family"
)

var PaidByValues = []PaidBy{PaidByMe, PaidByMom, PaidByDad, PaidByFamily}

// PaymentMethod is the channel an expense was paid through.
type PaymentMethod string

const (
	PaymentPhonePe    PaymentMethod = "PhonePe"
	PaymentGPay       PaymentMethod = "GPay"
	PaymentPaytm      PaymentMethod = "Paytm"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
	PaymentCash       PaymentMethod = "Cash"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentNetBanking PaymentMethod = "Net Banking"
)

var PaymentMethods = []PaymentMethod{
	PaymentPhonePe,
	PaymentGPay,
	PaymentPaytm,
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentCash,
	PaymentUPI,
	PaymentNetBanking,
}

// parseEnum matches s case insensitively against the allowed values and
// returns the canonical spelling.
func parseEnum[T ~string](s string, values []T, sentinel error) (T, error) {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, nil
		}
	}

	allowed := make([]string, 0, len(values))
	for _, v := range values {
		allowed = append(allowed, string(v))
	}

	return "", fmt.Errorf("%w: %q, must be one of %s", sentinel, s, strings.Join(allowed, ", "))
}

// ParseCategory returns the Category for a string.
func ParseCategory(s string) (Category, error) {
	return parseEnum(s, Categories, ErrInvalidCategory)
}

// ParsePaidBy returns the PaidBy for a string.
func ParsePaidBy(s string) (PaidBy, error) {
	return parseEnum(s, PaidByValues, ErrInvalidPaidBy)
}

// ParsePaymentMethod returns the PaymentMethod for a string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	return parseEnum(s, PaymentMethods, ErrInvalidPaymentMethod)
}
