package wishlist

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Message keys attached to field errors. The UI resolves them through its
// translation table.
const (
	MsgRequired         = "required"
	MsgInvalidEmail     = "invalidEmail"
	MsgInvalidURL       = "invalidUrl"
	MsgInvalidDate      = "invalidDate"
	MsgPasswordTooShort = "passwordTooShort"
	MsgAmountPositive   = "amountPositive"
	MsgInvalid          = "invalidValue"
)

// EventDateLayout is the wire and form layout of a wishlist event date.
const EventDateLayout = "2006-01-02"

// FieldErrors maps a form field to the message key describing its problem.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, name := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", name, f[name]))
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// NewWishlist is the create-wishlist form.
type NewWishlist struct {
	Title                  string `form:"title" validate:"required"`
	OwnerName              string `form:"ownerName" validate:"required"`
	EventDate              string `form:"eventDate" validate:"required,datetime=2006-01-02"`
	Description            string `form:"description" validate:"required"`
	AllowAnonymousPurchase bool   `form:"allowAnonymousPurchase"`
}

// ParsedEventDate returns the event date as a time at UTC midnight.
func (n NewWishlist) ParsedEventDate() (time.Time, error) {
	return time.Parse(EventDateLayout, strings.TrimSpace(n.EventDate))
}

// ItemInput is the add/edit item form.
type ItemInput struct {
	Title        string          `form:"title" validate:"required"`
	Description  string          `form:"description" validate:"required"`
	ImageURL     string          `form:"imageUrl" validate:"omitempty,url"`
	ProductURL   string          `form:"productUrl" validate:"omitempty,url"`
	Type         ItemType        `form:"itemType" validate:"-"`
	TargetAmount decimal.Decimal `form:"targetAmount" validate:"-"`
}

// Credentials is the login form.
type Credentials struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Registration is the sign-up form.
type Registration struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// ContributionInput is the pooled-gift contribution form.
type ContributionInput struct {
	ContributorName string          `form:"contributorName" validate:"required"`
	Amount          decimal.Decimal `form:"amount" validate:"-"`
	Message         string          `form:"message"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			if name := field.Tag.Get("form"); name != "" {
				return name
			}
			return field.Name
		})
	})
	return validate
}

// Validate trims the form and checks it. It returns FieldErrors or nil.
func (n *NewWishlist) Validate() error {
	n.Title = strings.TrimSpace(n.Title)
	n.OwnerName = strings.TrimSpace(n.OwnerName)
	n.EventDate = strings.TrimSpace(n.EventDate)
	n.Description = strings.TrimSpace(n.Description)
	return check(n, nil)
}

// Validate trims the form and checks it. Pooled items need a positive target.
func (in *ItemInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.ProductURL = strings.TrimSpace(in.ProductURL)
	in.Type = in.Type.Normalize()

	var extra FieldErrors
	if in.Type == TypePooled && !in.TargetAmount.IsPositive() {
		extra = FieldErrors{"targetAmount": MsgAmountPositive}
	}
	return check(in, extra)
}

// Validate trims the form and checks it.
func (c *Credentials) Validate() error {
	c.Email = strings.TrimSpace(c.Email)
	return check(c, nil)
}

// Validate trims the form and checks it.
func (r *Registration) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	return check(r, nil)
}

// Validate checks the contributor name and the amount against the item's
// remaining balance. Amount problems come back as *ContributionError so the
// caller can show the remaining balance.
func (c *ContributionInput) Validate(item Item) error {
	c.ContributorName = strings.TrimSpace(c.ContributorName)
	c.Message = strings.TrimSpace(c.Message)
	if err := check(c, nil); err != nil {
		return err
	}
	return ValidateContribution(item, c.Amount)
}

func check(form any, extra FieldErrors) error {
	out := FieldErrors{}
	for field, msg := range extra {
		out[field] = msg
	}
	if err := formValidator().Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate form: %w", err)
		}
		for _, fe := range verrs {
			if _, seen := out[fe.Field()]; seen {
				continue
			}
			out[fe.Field()] = messageForTag(fe.Tag())
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return MsgRequired
	case "email":
		return MsgInvalidEmail
	case "url":
		return MsgInvalidURL
	case "datetime":
		return MsgInvalidDate
	case "min":
		return MsgPasswordTooShort
	default:
		return MsgInvalid
	}
}
