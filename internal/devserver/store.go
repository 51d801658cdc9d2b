package devserver

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/five82/cumplesito/internal/wishlist"
)

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrBadCredentials   = errors.New("incorrect email or password")
	ErrUnknownUser      = errors.New("unknown user")
	ErrWishlistNotFound = errors.New("wishlist not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrForbidden        = errors.New("not the wishlist owner")
)

// AnonymousName is recorded when a visitor leaves the name blank on a
// wishlist that allows anonymous purchases.
const AnonymousName = "Anónimo"

type account struct {
	user wishlist.User
	hash []byte
}

// Store is the in-memory record store. All methods return copies.
type Store struct {
	mu       sync.RWMutex
	users    map[string]account
	emails   map[string]string
	lists    map[string]*wishlist.Wishlist
	order    []string
	now      func() time.Time
	cost     int
	frontend string
}

// NewStore creates an empty store. frontend is the base of shareable links.
func NewStore(frontend string, cost int, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Store{
		users:    make(map[string]account),
		emails:   make(map[string]string),
		lists:    make(map[string]*wishlist.Wishlist),
		now:      func() time.Time { return now().UTC() },
		cost:     cost,
		frontend: strings.TrimRight(frontend, "/"),
	}
}

// CreateUser registers an account with a bcrypt password hash.
func (s *Store) CreateUser(name, email, password string) (wishlist.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return wishlist.User{}, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.emails[key]; taken {
		return wishlist.User{}, ErrEmailTaken
	}
	user := wishlist.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		Email:     key,
		CreatedAt: s.now(),
	}
	s.users[user.ID] = account{user: user, hash: hash}
	s.emails[key] = user.ID
	return user, nil
}

// Authenticate checks a password and returns the account.
func (s *Store) Authenticate(email, password string) (wishlist.User, error) {
	s.mu.RLock()
	id, ok := s.emails[strings.ToLower(strings.TrimSpace(email))]
	acct := s.users[id]
	s.mu.RUnlock()
	if !ok {
		return wishlist.User{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.hash, []byte(password)); err != nil {
		return wishlist.User{}, ErrBadCredentials
	}
	return acct.user, nil
}

// User looks up an account by id.
func (s *Store) User(id string) (wishlist.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, ok := s.users[id]
	if !ok {
		return wishlist.User{}, ErrUnknownUser
	}
	return acct.user, nil
}

// CreateWishlist stores a new, empty wishlist owned by ownerID.
func (s *Store) CreateWishlist(ownerID string, form wishlist.NewWishlist) (wishlist.Wishlist, error) {
	date, err := form.ParsedEventDate()
	if err != nil {
		return wishlist.Wishlist{}, fmt.Errorf("parse event date: %w", err)
	}
	now := s.now()
	w := &wishlist.Wishlist{
		ID:                     uuid.NewString(),
		Title:                  form.Title,
		OwnerName:              form.OwnerName,
		OwnerID:                ownerID,
		EventDate:              date,
		Description:            form.Description,
		AllowAnonymousPurchase: form.AllowAnonymousPurchase,
		Items:                  []wishlist.Item{},
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	w.ShareableLink = s.frontend + "/wishlist/" + w.ID

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[w.ID] = w
	s.order = append(s.order, w.ID)
	return w.Clone(), nil
}

// SetProfile stores the generated profile text of a wishlist.
func (s *Store) SetProfile(id, profile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.lists[id]
	if !ok {
		return ErrWishlistNotFound
	}
	w.Profile = strings.TrimSpace(profile)
	return nil
}

// Wishlist returns a wishlist with its items in insertion order.
func (s *Store) Wishlist(id string) (wishlist.Wishlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.lists[id]
	if !ok {
		return wishlist.Wishlist{}, ErrWishlistNotFound
	}
	return w.Clone(), nil
}

// Owned lists the wishlists of ownerID, oldest first.
func (s *Store) Owned(ownerID string) []wishlist.Wishlist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []wishlist.Wishlist{}
	for _, id := range s.order {
		if w := s.lists[id]; w != nil && w.OwnerID == ownerID {
			out = append(out, w.Clone())
		}
	}
	return out
}

// DeleteWishlist removes a wishlist the caller owns.
func (s *Store) DeleteWishlist(id, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.lists[id]
	if !ok {
		return ErrWishlistNotFound
	}
	if w.OwnerID != callerID {
		return ErrForbidden
	}
	delete(s.lists, id)
	for i, candidate := range s.order {
		if candidate == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ItemPatch carries the item fields a create or edit sets. Nil fields are
// left alone on edit.
type ItemPatch struct {
	Title        *string
	Description  *string
	ImageURL     *string
	ProductURL   *string
	Type         *wishlist.ItemType
	TargetAmount *decimal.Decimal
}

// AddItem appends an item to a wishlist the caller owns.
func (s *Store) AddItem(wishlistID, callerID string, patch ItemPatch) (wishlist.Item, error) {
	now := s.now()
	item := wishlist.Item{
		ID:         uuid.NewString(),
		WishlistID: wishlistID,
		Type:       wishlist.TypeStandard,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	patch.applyTo(&item)

	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.owned(wishlistID, callerID)
	if err != nil {
		return wishlist.Item{}, err
	}
	w.Items = append(w.Items, item)
	w.UpdatedAt = now
	return item.Clone(), nil
}

// UpdateItem edits an item on a wishlist the caller owns.
func (s *Store) UpdateItem(wishlistID, itemID, callerID string, patch ItemPatch) (wishlist.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.owned(wishlistID, callerID)
	if err != nil {
		return wishlist.Item{}, err
	}
	idx := w.FindItem(itemID)
	if idx < 0 {
		return wishlist.Item{}, ErrItemNotFound
	}
	item := &w.Items[idx]
	patch.applyTo(item)
	item.UpdatedAt = s.now()
	w.UpdatedAt = item.UpdatedAt
	return item.Clone(), nil
}

// DeleteItem removes an item from a wishlist the caller owns.
func (s *Store) DeleteItem(wishlistID, itemID, callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.owned(wishlistID, callerID)
	if err != nil {
		return err
	}
	if !w.RemoveItem(itemID) {
		return ErrItemNotFound
	}
	w.UpdatedAt = s.now()
	return nil
}

// Apply performs a visitor intent on an item. No sign-in is needed. A blank
// name becomes AnonymousName when the wishlist allows it.
func (s *Store) Apply(wishlistID, itemID string, in wishlist.Intent) (wishlist.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.lists[wishlistID]
	if !ok {
		return wishlist.Item{}, ErrWishlistNotFound
	}
	idx := w.FindItem(itemID)
	if idx < 0 {
		return wishlist.Item{}, ErrItemNotFound
	}
	if in.Action == wishlist.ActionReserve || in.Action == wishlist.ActionPurchase {
		name, err := wishlist.ResolveName(in.Name, w.AllowAnonymousPurchase, AnonymousName)
		if err != nil {
			return wishlist.Item{}, err
		}
		in.Name = name
	}
	in.At = s.now()
	next, err := w.Items[idx].Apply(in)
	if err != nil {
		return wishlist.Item{}, err
	}
	w.Items[idx] = next
	w.UpdatedAt = in.At
	return next.Clone(), nil
}

func (s *Store) owned(wishlistID, callerID string) (*wishlist.Wishlist, error) {
	w, ok := s.lists[wishlistID]
	if !ok {
		return nil, ErrWishlistNotFound
	}
	if w.OwnerID != callerID {
		return nil, ErrForbidden
	}
	return w, nil
}

func (p ItemPatch) applyTo(item *wishlist.Item) {
	if p.Title != nil {
		item.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		item.Description = strings.TrimSpace(*p.Description)
	}
	if p.ImageURL != nil {
		item.ImageURL = strings.TrimSpace(*p.ImageURL)
	}
	if p.ProductURL != nil {
		item.ProductURL = strings.TrimSpace(*p.ProductURL)
	}
	if p.Type != nil {
		item.Type = p.Type.Normalize()
	}
	if p.TargetAmount != nil {
		item.TargetAmount = *p.TargetAmount
	}
	if !item.IsPooled() {
		item.TargetAmount = decimal.Zero
	}
}
