package validation

import (
	"github.com/shopspring/decimal"
)

// DonorKind selects which identity fields a donation needs.
type DonorKind string

const (
	Individual   DonorKind = "FO" // fyzická osoba
	Organization DonorKind = "PO" // právnická osoba
)

// ParseDonorKind maps the form value; anything but "PO" is an individual.
func ParseDonorKind(s string) DonorKind {
	if s == string(Organization) {
		return Organization
	}
	return Individual
}

// CreateOrderRequest is the body of POST /create-order.
type CreateOrderRequest struct {
	Name        Text   `json:"name"`
	Email       Text   `json:"email"`
	BookCount   Number `json:"bookCount"`
	ExtraAmount Number `json:"extraAmount"`
	Zasilkovna  Text   `json:"zasilkovna"` // pickup point link or id
	Message     Text   `json:"message"`
}

// OrderInput is a normalized order. Field order is the order in which
// rules are checked.
type OrderInput struct {
	Name        string `validate:"required"`
	Email       string `validate:"required"`
	PickupPoint string `validate:"required"`
	BookCount   int
	ExtraAmount decimal.Decimal
	Message     string
}

// Normalize converts the raw body into an OrderInput. Quantity and extra
// amount are parsed leniently; clamping is left to the calculator.
func (r CreateOrderRequest) Normalize() OrderInput {
	return OrderInput{
		Name:        r.Name.String(),
		Email:       r.Email.String(),
		PickupPoint: r.Zasilkovna.String(),
		BookCount:   r.BookCount.IntPrefix(),
		ExtraAmount: r.ExtraAmount.DecimalPrefix(),
		Message:     r.Message.String(),
	}
}

// CreateDonationRequest is the body of POST /create-donation.
type CreateDonationRequest struct {
	DonorType     Text   `json:"donorType"`
	Email         Text   `json:"email"`
	Phone         Text   `json:"phone"`
	Street        Text   `json:"street"`
	City          Text   `json:"city"`
	Zip           Text   `json:"zip"`
	Amount        Number `json:"amount"`
	SentDate      Text   `json:"sentDate"`
	Newsletter    Flag   `json:"newsletter"`
	FirstName     Text   `json:"firstName"`
	LastName      Text   `json:"lastName"`
	CompanyName   Text   `json:"companyName"`
	ICO           Text   `json:"ico"`
	ContactPerson Text   `json:"contactPerson"`
}

// DonationInput is a normalized donation. Shared fields come first so they
// are reported before the donor-kind specific ones.
type DonationInput struct {
	DonorType     DonorKind
	Email         string `validate:"required"`
	Phone         string
	Street        string  `validate:"required"`
	City          string  `validate:"required"`
	Zip           string  `validate:"required"`
	Amount        float64 `validate:"finite,gt=0"`
	SentDate      string  `validate:"required"`
	CompanyName   string  `validate:"required_if=DonorType PO"`
	ICO           string  `validate:"required_if=DonorType PO"`
	ContactPerson string  `validate:"required_if=DonorType PO"`
	FirstName     string  `validate:"required_unless=DonorType PO"`
	LastName      string  `validate:"required_unless=DonorType PO"`
	Newsletter    bool
}

// Normalize converts the raw body into a DonationInput.
func (r CreateDonationRequest) Normalize() DonationInput {
	return DonationInput{
		DonorType:     ParseDonorKind(r.DonorType.String()),
		Email:         r.Email.String(),
		Phone:         r.Phone.String(),
		Street:        r.Street.String(),
		City:          r.City.String(),
		Zip:           r.Zip.String(),
		Amount:        r.Amount.Strict(),
		SentDate:      r.SentDate.String(),
		CompanyName:   r.CompanyName.String(),
		ICO:           r.ICO.String(),
		ContactPerson: r.ContactPerson.String(),
		FirstName:     r.FirstName.String(),
		LastName:      r.LastName.String(),
		Newsletter:    bool(r.Newsletter),
	}
}

// DisplayName is how the donor is addressed in the confirmation email.
func (d DonationInput) DisplayName() string {
	if d.DonorType == Organization {
		return d.CompanyName
	}
	return d.FirstName + " " + d.LastName
}
