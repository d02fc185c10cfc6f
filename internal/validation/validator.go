package validation

import (
	"errors"
	"math"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/pribehari/forms-api/internal/apperr"
)

// MsgInvalidBody is returned when the request body is not a JSON object.
const MsgInvalidBody = "Neplatná data formuláře."

// messages maps a failing field to the user-facing text. Several fields
// share a message, mirroring how the form groups them.
var messages = map[string]string{
	"OrderInput.Name":        "Chybí jméno nebo e-mail.",
	"OrderInput.Email":       "Chybí jméno nebo e-mail.",
	"OrderInput.PickupPoint": "Chybí odkaz na vybranou pobočku nebo box Zásilkovny.",

	"DonationInput.Email":         "Chybí e-mail.",
	"DonationInput.Street":        "Chybí adresa (ulice, město, PSČ).",
	"DonationInput.City":          "Chybí adresa (ulice, město, PSČ).",
	"DonationInput.Zip":           "Chybí adresa (ulice, město, PSČ).",
	"DonationInput.Amount":        "Chybí nebo je neplatná částka daru.",
	"DonationInput.SentDate":      "Chybí datum odeslání daru.",
	"DonationInput.CompanyName":   "Chybí název společnosti.",
	"DonationInput.ICO":           "Chybí IČO.",
	"DonationInput.ContactPerson": "Chybí kontaktní osoba.",
	"DonationInput.FirstName":     "Chybí jméno a příjmení.",
	"DonationInput.LastName":      "Chybí jméno a příjmení.",
}

// New returns a configured validator with the custom tags registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// "finite" rejects NaN and ±Inf, which gt=0 alone lets through for +Inf.
	_ = v.RegisterValidation("finite", func(fl validatorv10.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// Check validates in and converts the first failing rule into an
// apperr.ValidationError carrying the localized message.
func Check(v *validatorv10.Validate, in interface{}) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return apperr.Internal(err)
	}
	if msg, ok := messages[ve[0].StructNamespace()]; ok {
		return apperr.Validation(msg)
	}
	return apperr.Internal(ve[0])
}
