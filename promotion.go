package promos

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Origin identifies the issuing channel of a promotion.
type Origin string

// Origin values.
const (
	OriginWallet Origin = "wallet"
	OriginBank   Origin = "bank"
)

// PaymentMethodType classifies the payment instrument a promotion
// applies to.
type PaymentMethodType string

// PaymentMethodType values.
const (
	PaymentWallet PaymentMethodType = "wallet"
	PaymentCredit PaymentMethodType = "credit"
	PaymentDebit  PaymentMethodType = "debit"
)

// BenefitType identifies the discount mechanism.
type BenefitType string

// BenefitPercentageDiscount is the only benefit type currently modeled.
const BenefitPercentageDiscount BenefitType = "percentage_discount"

// CapUnit is the period a monetary cap applies to.
type CapUnit string

// CapUnit values.
const (
	CapPerMonth CapUnit = "per_month"
	CapPerWeek  CapUnit = "per_week"
)

// WeekdayUnknown is the sentinel weekday used when a fragment names no
// weekday and the source has no better fallback. The value is kept in
// the source language, matching the weekday names themselves.
const WeekdayUnknown = "desconocido"

// Promotion is a payment-method discount on fuel purchases extracted
// from a news article. Records are immutable once built.
type Promotion struct {
	ID                string            `json:"id"`
	Origin            Origin            `json:"origin"`
	PaymentMethodType PaymentMethodType `json:"payment_method_type"`
	PaymentMethodName string            `json:"payment_method_name"`
	MerchantType      string            `json:"merchant_type"`
	MerchantName      string            `json:"merchant_name"`
	BenefitType       BenefitType       `json:"benefit_type"`
	BenefitValue      int               `json:"benefit_value"`
	CapAmount         *int              `json:"cap_amount"`
	CapUnit           CapUnit           `json:"cap_unit,omitempty"`
	Weekdays          []string          `json:"weekdays"`
	TimeRange         string            `json:"time_range,omitempty"`
	StartDate         string            `json:"start_date"`
	EndDate           string            `json:"end_date"`
	ConditionsText    string            `json:"conditions_text"`
	SourceURL         string            `json:"source_url"`
}

// Validate returns an error if the promotion contains invalid fields.
func (p *Promotion) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "promotion ID required")
	}
	if len(p.Weekdays) == 0 {
		return Errorf(EINVALID, "promotion weekdays required")
	}
	if p.BenefitValue < 0 {
		return Errorf(EINVALID, "promotion benefit value must not be negative")
	}
	if p.ConditionsText == "" {
		return Errorf(EINVALID, "promotion conditions text required")
	}
	if p.SourceURL == "" {
		return Errorf(EINVALID, "promotion source URL required")
	}
	if start, err := time.Parse("2006-01-02", p.StartDate); err == nil {
		if end, err := time.Parse("2006-01-02", p.EndDate); err == nil && start.After(end) {
			return Errorf(EINVALID, "promotion start date after end date")
		}
	}
	return nil
}

// BuildParams carries the extracted and defaulted field values for one
// promotion. Callers are expected to have applied their fallback
// policies already; Build copies the values verbatim.
type BuildParams struct {
	Origin            Origin
	PaymentMethodType PaymentMethodType
	PaymentMethodName string
	MerchantType      string
	MerchantName      string
	BenefitType       BenefitType
	BenefitValue      int
	CapAmount         *int
	CapUnit           CapUnit
	Weekdays          []string
	TimeRange         string
	StartDate         string
	EndDate           string
	ConditionsText    string
	SourceURL         string
}

// Builder assembles Promotion records, assigning each a fresh unique
// identifier. The zero value is ready to use.
type Builder struct {
	// NewID generates record identifiers. Defaults to uuid.NewString.
	NewID func() string
}

// Build constructs a Promotion from params. The conditions text is
// trimmed of surrounding whitespace; every other field is copied as-is.
// Build always succeeds.
func (b *Builder) Build(params BuildParams) Promotion {
	newID := b.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	return Promotion{
		ID:                newID(),
		Origin:            params.Origin,
		PaymentMethodType: params.PaymentMethodType,
		PaymentMethodName: params.PaymentMethodName,
		MerchantType:      params.MerchantType,
		MerchantName:      params.MerchantName,
		BenefitType:       params.BenefitType,
		BenefitValue:      params.BenefitValue,
		CapAmount:         params.CapAmount,
		CapUnit:           params.CapUnit,
		Weekdays:          append([]string(nil), params.Weekdays...),
		TimeRange:         params.TimeRange,
		StartDate:         params.StartDate,
		EndDate:           params.EndDate,
		ConditionsText:    strings.TrimSpace(params.ConditionsText),
		SourceURL:         params.SourceURL,
	}
}
