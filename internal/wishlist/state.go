package wishlist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// State is the user-visible state of an item.
type State int

const (
	StateAvailable State = iota
	StateReserved
	StatePurchased
	StateOpen
	StateFunded
)

func (s State) String() string {
	switch s {
	case StateReserved:
		return "reserved"
	case StatePurchased:
		return "purchased"
	case StateOpen:
		return "open"
	case StateFunded:
		return "funded"
	default:
		return "available"
	}
}

// Action is a visitor intent on an item.
type Action int

const (
	ActionReserve Action = iota
	ActionUnreserve
	ActionPurchase
	ActionUnpurchase
	ActionContribute
)

func (a Action) String() string {
	switch a {
	case ActionReserve:
		return "reserve"
	case ActionUnreserve:
		return "unreserve"
	case ActionPurchase:
		return "purchase"
	case ActionUnpurchase:
		return "unpurchase"
	case ActionContribute:
		return "contribute"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

var (
	// ErrInvalidTransition is returned when an action is not legal in the
	// item's current state.
	ErrInvalidTransition = errors.New("action not allowed in current state")
	// ErrNameRequired is returned when a reserve or purchase has no name and
	// the wishlist does not allow anonymous purchases.
	ErrNameRequired = errors.New("name required")
)

// State derives the item's state. Purchase wins over reservation; pooled
// completion is computed from the amounts.
func (i Item) State() State {
	if i.IsPooled() {
		if i.IsFunded() {
			return StateFunded
		}
		return StateOpen
	}
	if i.IsPurchased {
		return StatePurchased
	}
	if i.IsReserved {
		return StateReserved
	}
	return StateAvailable
}

// IsFunded reports whether a pooled item has reached its target.
func (i Item) IsFunded() bool {
	return i.CurrentAmount.GreaterThanOrEqual(i.TargetAmount)
}

// Allows reports whether the action is legal for the item right now.
func (i Item) Allows(a Action) bool {
	state := i.State()
	switch a {
	case ActionReserve:
		return state == StateAvailable
	case ActionUnreserve:
		return state == StateReserved
	case ActionPurchase:
		return state == StateAvailable || state == StateReserved
	case ActionUnpurchase:
		return state == StatePurchased
	case ActionContribute:
		return state == StateOpen
	}
	return false
}

// Intent carries the parameters of one action.
type Intent struct {
	Action  Action
	Name    string
	Amount  decimal.Decimal
	Message string
	At      time.Time
}

// Apply returns the item that results from performing the intent. The
// receiver is not modified.
func (i Item) Apply(in Intent) (Item, error) {
	if !i.Allows(in.Action) {
		return i, fmt.Errorf("%s from %s: %w", in.Action, i.State(), ErrInvalidTransition)
	}
	next := i.Clone()
	if !in.At.IsZero() {
		next.UpdatedAt = in.At
	}
	name := strings.TrimSpace(in.Name)

	switch in.Action {
	case ActionReserve:
		if name == "" {
			return i, ErrNameRequired
		}
		next.IsReserved = true
		next.ReservedBy = name
	case ActionUnreserve:
		next.IsReserved = false
		next.ReservedBy = ""
	case ActionPurchase:
		if name == "" {
			return i, ErrNameRequired
		}
		next.IsPurchased = true
		next.PurchasedBy = name
		next.IsReserved = false
		next.ReservedBy = ""
	case ActionUnpurchase:
		next.IsPurchased = false
		next.PurchasedBy = ""
	case ActionContribute:
		if name == "" {
			return i, ErrNameRequired
		}
		if err := ValidateContribution(i, in.Amount); err != nil {
			return i, err
		}
		next.CurrentAmount = i.CurrentAmount.Add(in.Amount)
		next.Contributions = append(next.Contributions, Contribution{
			ContributorName: name,
			Amount:          in.Amount,
			Message:         strings.TrimSpace(in.Message),
			CreatedAt:       in.At,
		})
	}
	return next, nil
}
