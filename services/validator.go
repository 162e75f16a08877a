package services

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"pricing-dashboard/models"
	"pricing-dashboard/reference"
	"pricing-dashboard/utils"
)

// Validator turns RawObservations into typed ProductObservations, dropping
// rows the rest of the pipeline must never see.
type Validator struct {
	logger *utils.Logger
	ref    *reference.Tables
}

// NewValidator creates a Validator checking state codes against ref.
func NewValidator(logger *utils.Logger, ref *reference.Tables) *Validator {
	return &Validator{logger: logger, ref: ref}
}

// Validate keeps rows with a description, a retailer, a known state code and
// a finite non-negative unit price. Input order is preserved.
func (v *Validator) Validate(raw []*models.RawObservation) []*models.ProductObservation {
	result := make([]*models.ProductObservation, 0, len(raw))
	dropped := map[string]int{}

	for _, r := range raw {
		obs, reason := v.validate(r)
		if reason != "" {
			dropped[reason]++
			v.logger.Debug("[validator] Dropping row %q: %s", r.ProductID, reason)
			continue
		}
		result = append(result, obs)
	}

	v.logger.Info("[validator] Validated %d → %d observations (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	for reason, n := range dropped {
		v.logger.Debug("[validator] %d rows dropped: %s", n, reason)
	}
	return result
}

func (v *Validator) validate(r *models.RawObservation) (*models.ProductObservation, string) {
	if r == nil {
		return nil, "nil row"
	}

	description := normaliseText(r.Description)
	if description == "" {
		return nil, "empty description"
	}

	retailer := normaliseText(r.Retailer)
	if retailer == "" {
		return nil, "empty retailer"
	}

	state := strings.ToUpper(strings.TrimSpace(r.State))
	if !v.ref.IsValidState(state) {
		return nil, "invalid state code"
	}

	price, ok := parsePrice(r.UnitPrice)
	if !ok {
		return nil, "invalid unit price"
	}

	return &models.ProductObservation{
		ProductID:         strings.TrimSpace(r.ProductID),
		Description:       description,
		UnitPrice:         price,
		UnitOriginalPrice: parseOptionalPrice(r.UnitOriginalPrice),
		UnitMinPrice:      parseOptionalPrice(r.UnitMinPrice),
		Details:           normaliseText(r.Details),
		ImageRef:          normaliseImageRef(r.LogoURL),
		RetailerName:      retailer,
		StateCode:         state,
		City:              normaliseText(r.City),
		Neighborhood:      normaliseText(r.Neighborhood),
		MerchantID:        strings.TrimSpace(r.MerchantID),
	}, ""
}

// parsePrice accepts "12.90", "12,90" and surrounding spaces.
func parsePrice(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil || !ValidPrice(val) {
		return 0, false
	}
	return val, true
}

func parseOptionalPrice(raw string) *float64 {
	val, ok := parsePrice(raw)
	if !ok {
		return nil
	}
	return &val
}

// ValidPrice reports whether a price may take part in statistics.
func ValidPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0
}

// normaliseImageRef maps the "N/A" placeholder to an empty reference.
func normaliseImageRef(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "N/A") {
		return ""
	}
	return s
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
