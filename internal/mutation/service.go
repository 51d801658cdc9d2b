package mutation

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/logging"
	"github.com/five82/cumplesito/internal/state"
	"github.com/five82/cumplesito/internal/wishlist"
)

var (
	// ErrStale means the user left the view before the result arrived. The
	// result has been dropped.
	ErrStale = state.ErrStale
	// ErrNoWishlist means an item intent was issued with no wishlist loaded.
	ErrNoWishlist = errors.New("no wishlist loaded")
	// ErrUnknownItem means the item is not part of the loaded wishlist.
	ErrUnknownItem = errors.New("item not in wishlist")
)

// Result describes what a completed intent did to the view.
type Result struct {
	Generation uint64
	// Item is the record store's answer to the mutating call, when it sent one.
	Item *wishlist.Item
	// Refreshed is true when the follow-up fetch replaced the aggregate.
	Refreshed bool
	// Warning is set when the mutation succeeded but the follow-up fetch did
	// not; the view was patched from Item instead.
	Warning error
}

// Service issues user intents against the record store and folds the answers
// into the store. It never retries and never updates the view before the
// record store has answered.
type Service struct {
	backend   api.Backend
	store     *state.Store
	log       logrus.FieldLogger
	anonymous func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger routes intent logging to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithAnonymousLabel sets the name recorded for visitors who leave the name
// empty on lists that allow it. label is called per intent so it follows the
// current language.
func WithAnonymousLabel(label func() string) Option {
	return func(s *Service) {
		if label != nil {
			s.anonymous = label
		}
	}
}

// New builds a Service.
func New(backend api.Backend, store *state.Store, opts ...Option) *Service {
	s := &Service{
		backend:   backend,
		store:     store,
		log:       logging.Discard(),
		anonymous: func() string { return "Anonymous" },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open starts a new view of wishlist id and loads it. The returned
// generation identifies the view for later intents.
func (s *Service) Open(ctx context.Context, id string) (uint64, error) {
	gen := s.store.Open(id)
	return gen, s.Refresh(ctx, gen)
}

// Refresh refetches the wishlist of view gen and replaces the aggregate.
func (s *Service) Refresh(ctx context.Context, gen uint64) error {
	snap := s.store.Snapshot()
	if snap.Generation != gen {
		return ErrStale
	}
	if snap.WishlistID == "" {
		return ErrNoWishlist
	}
	log := s.log.WithField("wishlist_id", snap.WishlistID)

	w, err := s.backend.GetWishlist(ctx, snap.WishlistID)
	if err != nil {
		if ferr := s.store.Fail(gen, err); ferr != nil {
			return ferr
		}
		log.WithError(err).Warn("wishlist fetch failed")
		return err
	}
	if err := s.store.Commit(gen, w); err != nil {
		return err
	}
	if w == nil {
		log.Info("wishlist not found")
	}
	return nil
}

// Reserve holds a standard item under the visitor's name.
func (s *Service) Reserve(ctx context.Context, gen uint64, itemID, name string) (Result, error) {
	tg, err := s.prepare(gen, itemID, wishlist.ActionReserve)
	if err != nil {
		return Result{}, err
	}
	resolved, err := wishlist.ResolveName(name, tg.anonymousAllowed, s.anonymous())
	if err != nil {
		return Result{}, err
	}
	return s.run(ctx, tg, wishlist.ActionReserve.String(), func(ctx context.Context) (*wishlist.Item, error) {
		return s.backend.Reserve(ctx, tg.wishlistID, itemID, resolved)
	})
}

// Unreserve releases a reservation.
func (s *Service) Unreserve(ctx context.Context, gen uint64, itemID string) (Result, error) {
	tg, err := s.prepare(gen, itemID, wishlist.ActionUnreserve)
	if err != nil {
		return Result{}, err
	}
	return s.run(ctx, tg, wishlist.ActionUnreserve.String(), func(ctx context.Context) (*wishlist.Item, error) {
		return s.backend.Unreserve(ctx, tg.wishlistID, itemID)
	})
}

// Purchase marks a standard item as bought by the visitor.
func (s *Service) Purchase(ctx context.Context, gen uint64, itemID, name string) (Result, error) {
	tg, err := s.prepare(gen, itemID, wishlist.ActionPurchase)
	if err != nil {
		return Result{}, err
	}
	resolved, err := wishlist.ResolveName(name, tg.anonymousAllowed, s.anonymous())
	if err != nil {
		return Result{}, err
	}
	return s.run(ctx, tg, wishlist.ActionPurchase.String(), func(ctx context.Context) (*wishlist.Item, error) {
		return s.backend.Purchase(ctx, tg.wishlistID, itemID, resolved)
	})
}

// Unpurchase clears a purchase.
func (s *Service) Unpurchase(ctx context.Context, gen uint64, itemID string) (Result, error) {
	tg, err := s.prepare(gen, itemID, wishlist.ActionUnpurchase)
	if err != nil {
		return Result{}, err
	}
	return s.run(ctx, tg, wishlist.ActionUnpurchase.String(), func(ctx context.Context) (*wishlist.Item, error) {
		return s.backend.Unpurchase(ctx, tg.wishlistID, itemID)
	})
}

// Contribute pledges money toward a pooled item. The amount is checked
// against the balance the view currently shows.
func (s *Service) Contribute(ctx context.Context, gen uint64, itemID string, in wishlist.ContributionInput) (Result, error) {
	tg, err := s.prepare(gen, itemID, wishlist.ActionContribute)
	if err != nil {
		return Result{}, err
	}
	if err := in.Validate(tg.item); err != nil {
		return Result{}, err
	}
	return s.run(ctx, tg, wishlist.ActionContribute.String(), func(ctx context.Context) (*wishlist.Item, error) {
		return s.backend.Contribute(ctx, tg.wishlistID, itemID, in)
	})
}

// AddItem appends an item to the viewed wishlist.
func (s *Service) AddItem(ctx context.Context, gen uint64, in wishlist.ItemInput) (Result, error) {
	tg, err := s.current(gen)
	if err != nil {
		return Result{}, err
	}
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	tg.adds = true
	return s.run(ctx, tg, "add item", func(ctx context.Context) (*wishlist.Item, error) {
		return s.backend.AddItem(ctx, tg.wishlistID, in)
	})
}

// EditItem changes an item's descriptive fields.
func (s *Service) EditItem(ctx context.Context, gen uint64, itemID string, in wishlist.ItemInput) (Result, error) {
	tg, err := s.current(gen)
	if err != nil {
		return Result{}, err
	}
	if _, err := tg.find(itemID); err != nil {
		return Result{}, err
	}
	tg.itemID = itemID
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	return s.run(ctx, tg, "edit item", func(ctx context.Context) (*wishlist.Item, error) {
		return s.backend.UpdateItem(ctx, tg.wishlistID, itemID, in)
	})
}

// DeleteItem removes an item. The UI confirms before calling it.
func (s *Service) DeleteItem(ctx context.Context, gen uint64, itemID string) (Result, error) {
	tg, err := s.current(gen)
	if err != nil {
		return Result{}, err
	}
	if _, err := tg.find(itemID); err != nil {
		return Result{}, err
	}
	tg.itemID = itemID
	tg.removes = true
	return s.run(ctx, tg, "delete item", func(ctx context.Context) (*wishlist.Item, error) {
		return nil, s.backend.DeleteItem(ctx, tg.wishlistID, itemID)
	})
}

// Mine lists the signed-in user's wishlists.
func (s *Service) Mine(ctx context.Context) ([]wishlist.Wishlist, error) {
	lists, err := s.backend.ListWishlists(ctx)
	if err != nil {
		s.log.WithError(err).Warn("list wishlists failed")
		return nil, err
	}
	return lists, nil
}

// CreateWishlist validates the form and creates a wishlist. It does not
// touch the current view.
func (s *Service) CreateWishlist(ctx context.Context, form wishlist.NewWishlist) (*wishlist.Wishlist, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	w, err := s.backend.CreateWishlist(ctx, form)
	if err != nil {
		s.log.WithError(err).Warn("create wishlist failed")
		return nil, err
	}
	s.log.WithField("wishlist_id", w.ID).Info("wishlist created")
	return w, nil
}

// DeleteWishlist deletes a wishlist. If it is the one being viewed, the
// view is closed. The UI confirms before calling it.
func (s *Service) DeleteWishlist(ctx context.Context, id string) error {
	if err := s.backend.DeleteWishlist(ctx, id); err != nil {
		s.log.WithError(err).WithField("wishlist_id", id).Warn("delete wishlist failed")
		return err
	}
	if s.store.Snapshot().WishlistID == id {
		s.store.Close()
	}
	s.log.WithField("wishlist_id", id).Info("wishlist deleted")
	return nil
}

type target struct {
	gen              uint64
	wishlistID       string
	itemID           string
	item             wishlist.Item
	items            []wishlist.Item
	anonymousAllowed bool
	removes          bool
	adds             bool
}

func (t target) find(itemID string) (wishlist.Item, error) {
	for _, item := range t.items {
		if item.ID == itemID {
			return item, nil
		}
	}
	return wishlist.Item{}, fmt.Errorf("%s: %w", itemID, ErrUnknownItem)
}

func (s *Service) current(gen uint64) (target, error) {
	snap := s.store.Snapshot()
	if snap.Generation != gen {
		return target{}, ErrStale
	}
	if !snap.HasWishlist {
		return target{}, ErrNoWishlist
	}
	return target{
		gen:              gen,
		wishlistID:       snap.Wishlist.ID,
		items:            snap.Wishlist.Items,
		anonymousAllowed: snap.Wishlist.AllowAnonymousPurchase,
	}, nil
}

func (s *Service) prepare(gen uint64, itemID string, action wishlist.Action) (target, error) {
	t, err := s.current(gen)
	if err != nil {
		return target{}, err
	}
	item, err := t.find(itemID)
	if err != nil {
		return target{}, err
	}
	if !item.Allows(action) {
		return target{}, fmt.Errorf("%s from %s: %w", action, item.State(), wishlist.ErrInvalidTransition)
	}
	t.itemID = itemID
	t.item = item
	return t, nil
}

// run performs exactly one mutating call, then refetches the whole wishlist
// and commits it under the generation the intent started with.
func (s *Service) run(ctx context.Context, t target, action string, call func(context.Context) (*wishlist.Item, error)) (Result, error) {
	log := s.log.WithFields(logrus.Fields{
		"action":      action,
		"wishlist_id": t.wishlistID,
		"item_id":     t.itemID,
	})

	item, err := call(ctx)
	if err != nil {
		log.WithError(err).Warn("intent failed")
		return Result{Generation: t.gen}, err
	}
	log.Info("intent accepted")
	res := Result{Generation: t.gen, Item: item}

	fresh, ferr := s.backend.GetWishlist(ctx, t.wishlistID)
	if ferr == nil {
		if err := s.store.Commit(t.gen, fresh); err != nil {
			return res, err
		}
		res.Refreshed = true
		return res, nil
	}

	log.WithError(ferr).Warn("refresh after intent failed; patching view")
	res.Warning = fmt.Errorf("refresh after %s: %w", action, ferr)
	switch {
	case t.removes:
		if _, err := s.store.Remove(t.gen, t.itemID); err != nil {
			return res, err
		}
	case t.adds && item != nil:
		if err := s.store.Append(t.gen, *item); err != nil {
			return res, err
		}
	case item != nil:
		if _, err := s.store.Patch(t.gen, *item); err != nil {
			return res, err
		}
	default:
		if s.store.Generation() != t.gen {
			return res, ErrStale
		}
	}
	return res, nil
}
