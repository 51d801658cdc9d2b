package ui

import (
	"errors"
	"net"
	"sort"

	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/i18n"
	"github.com/five82/cumplesito/internal/mutation"
	"github.com/five82/cumplesito/internal/session"
	"github.com/five82/cumplesito/internal/wishlist"
)

func asFieldErrors(err error) (wishlist.FieldErrors, bool) {
	var fe wishlist.FieldErrors
	if errors.As(err, &fe) && len(fe) > 0 {
		return fe, true
	}
	return nil, false
}

// describeError turns a failed intent into the line shown to the user. Local
// validation failures get a precise message; record store failures show the
// server's detail when it sent one and fallback otherwise.
func describeError(tr *i18n.Translator, err error, fallback i18n.Key) string {
	if err == nil {
		return ""
	}
	var cerr *wishlist.ContributionError
	var nerr net.Error
	switch {
	case errors.Is(err, wishlist.ErrNameRequired):
		return tr.T(i18n.NameRequired)
	case errors.Is(err, wishlist.ErrInvalidTransition), errors.Is(err, mutation.ErrUnknownItem):
		return tr.T(i18n.NotAllowed)
	case errors.As(err, &cerr):
		if errors.Is(cerr, wishlist.ErrAmountExceedsRemaining) {
			return tr.Tf(i18n.AmountExceeds, tr.Money(cerr.Remaining))
		}
		return tr.T(i18n.AmountPositive)
	case errors.Is(err, session.ErrNotSignedIn):
		return tr.T(i18n.LoginRequired)
	case api.IsUnauthorized(err) && fallback != i18n.ErrorLogin:
		return tr.T(i18n.LoginRequired)
	case errors.As(err, &nerr):
		return tr.T(i18n.Offline)
	}
	if fe, ok := asFieldErrors(err); ok {
		fields := make([]string, 0, len(fe))
		for name := range fe {
			fields = append(fields, name)
		}
		sort.Strings(fields)
		return tr.Field(fe[fields[0]])
	}
	return api.UserMessage(err, tr.T(fallback))
}
