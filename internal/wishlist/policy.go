package wishlist

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrAmountNotPositive rejects zero or negative contributions.
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	// ErrAmountExceedsRemaining rejects contributions above the open balance.
	ErrAmountExceedsRemaining = errors.New("amount exceeds remaining balance")
)

// ContributionError reports a rejected contribution together with the
// balance still open on the item.
type ContributionError struct {
	Amount    decimal.Decimal
	Remaining decimal.Decimal
	Err       error
}

func (e *ContributionError) Error() string {
	return fmt.Sprintf("%v (amount %s, remaining %s)", e.Err, e.Amount.StringFixed(2), e.Remaining.StringFixed(2))
}

func (e *ContributionError) Unwrap() error {
	return e.Err
}

// ResolveName applies the anonymous purchase policy to a visitor name.
func ResolveName(name string, allowAnonymous bool, anonymousLabel string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed != "" {
		return trimmed, nil
	}
	if !allowAnonymous {
		return "", ErrNameRequired
	}
	return anonymousLabel, nil
}

// Remaining returns the open balance on a pooled item, never negative.
func (i Item) Remaining() decimal.Decimal {
	left := i.TargetAmount.Sub(i.CurrentAmount)
	if left.IsNegative() {
		return decimal.Zero
	}
	return left
}

// Progress returns the funded percentage of a pooled item, capped at 100.
func (i Item) Progress() float64 {
	if !i.TargetAmount.IsPositive() {
		return 100
	}
	pct := i.CurrentAmount.Div(i.TargetAmount).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	if pct.IsNegative() {
		return 0
	}
	return pct.InexactFloat64()
}

// ValidateContribution checks 0 < amount <= remaining before any request is made.
func ValidateContribution(item Item, amount decimal.Decimal) error {
	remaining := item.Remaining()
	if !amount.IsPositive() {
		return &ContributionError{Amount: amount, Remaining: remaining, Err: ErrAmountNotPositive}
	}
	if amount.GreaterThan(remaining) {
		return &ContributionError{Amount: amount, Remaining: remaining, Err: ErrAmountExceedsRemaining}
	}
	return nil
}

var quickAmountSteps = []int64{10, 25, 50, 100}

// QuickAmounts lists the preset contribution buttons for an item: the fixed
// steps that still fit plus the exact remaining balance.
func QuickAmounts(item Item) []decimal.Decimal {
	remaining := item.Remaining()
	if !remaining.IsPositive() {
		return nil
	}
	out := make([]decimal.Decimal, 0, len(quickAmountSteps)+1)
	for _, step := range quickAmountSteps {
		amount := decimal.NewFromInt(step)
		if amount.LessThanOrEqual(remaining) {
			out = append(out, amount)
		}
	}
	for _, existing := range out {
		if existing.Equal(remaining) {
			return out
		}
	}
	return append(out, remaining)
}
