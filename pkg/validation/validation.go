// Package validation checks calculation inputs at the boundary. Calculators
// themselves are total functions; malformed input is rejected here before it
// reaches them.
package validation

import (
	"fmt"
	"strings"

	"github.com/jwpark-dev/homeplan/internal/calc"
	"github.com/jwpark-dev/homeplan/pkg/constants"
)

// Error describes one rejected input field.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors collects every rejected field of one request.
type Errors []*Error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns the collection as an error, or nil when every check passed.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidateOutputFormat checks a CLI output format selection.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be %s or %s",
			format, constants.OutputFormatPretty, constants.OutputFormatJSON)
	}
}

var validHousingTypes = map[calc.HousingType]bool{
	calc.HousingApartment: true,
	calc.HousingVilla:     true,
	calc.HousingOfficetel: true,
	calc.HousingDetached:  true,
}

// ValidateHousing checks a property listing.
func ValidateHousing(housing calc.Housing) error {
	var errs Errors
	if housing.Price < 0 {
		errs = append(errs, &Error{Field: "price", Message: "must not be negative"})
	}
	if housing.Area < 0 {
		errs = append(errs, &Error{Field: "area", Message: "must not be negative"})
	}
	if housing.Type != "" && !validHousingTypes[housing.Type] {
		errs = append(errs, &Error{Field: "type", Message: fmt.Sprintf("unknown housing type %q", housing.Type)})
	}
	return errs.OrNil()
}

// ValidateBuyer checks a buyer profile.
func ValidateBuyer(buyer calc.Buyer) error {
	var errs Errors
	if buyer.HouseCount < 0 {
		errs = append(errs, &Error{Field: "houseCount", Message: "must not be negative"})
	}
	if buyer.ChildCount < 0 {
		errs = append(errs, &Error{Field: "childCount", Message: "must not be negative"})
	}
	if buyer.Income < 0 {
		errs = append(errs, &Error{Field: "income", Message: "must not be negative"})
	}
	if buyer.SpouseIncome < 0 {
		errs = append(errs, &Error{Field: "spouseIncome", Message: "must not be negative"})
	}
	return errs.OrNil()
}

// ValidatePropertyForSale checks a property being sold.
func ValidatePropertyForSale(property calc.PropertyForSale) error {
	var errs Errors
	if property.PurchasePrice < 0 {
		errs = append(errs, &Error{Field: "purchasePrice", Message: "must not be negative"})
	}
	if property.CurrentValue < 0 {
		errs = append(errs, &Error{Field: "currentValue", Message: "must not be negative"})
	}
	if property.Area < 0 {
		errs = append(errs, &Error{Field: "area", Message: "must not be negative"})
	}
	if property.PurchaseDate.IsZero() {
		errs = append(errs, &Error{Field: "purchaseDate", Message: "is required"})
	}
	if property.ResidenceYears < 0 {
		errs = append(errs, &Error{Field: "residenceYears", Message: "must not be negative"})
	}
	if property.ResidenceMonths < 0 || property.ResidenceMonths > 11 {
		errs = append(errs, &Error{Field: "residenceMonths", Message: "must be between 0 and 11"})
	}
	return errs.OrNil()
}
