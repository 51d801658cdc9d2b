package devserver

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/five82/cumplesito/internal/api"
	"github.com/five82/cumplesito/internal/wishlist"
)

func (s *Server) handleRegister(c *gin.Context) {
	var body api.RegisterRequest
	if !bind(c, &body) {
		return
	}
	form := wishlist.Registration{Name: body.Name, Email: body.Email, Password: body.Password}
	if err := form.Validate(); err != nil {
		s.fail(c, err)
		return
	}
	user, err := s.store.CreateUser(form.Name, form.Email, form.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.FromUser(user))
}

func (s *Server) handleLogin(c *gin.Context) {
	var body api.LoginRequest
	if !bind(c, &body) {
		return
	}
	user, err := s.store.Authenticate(body.Email, body.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.TokenDTO{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleMe(c *gin.Context) {
	user, err := s.store.User(c.GetString(userKey))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromUser(user))
}

func (s *Server) handleListWishlists(c *gin.Context) {
	owned := s.store.Owned(c.GetString(userKey))
	out := make([]api.WishlistDTO, 0, len(owned))
	for _, w := range owned {
		out = append(out, api.FromWishlist(w))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateWishlist(c *gin.Context) {
	var body api.CreateWishlistRequest
	if !bind(c, &body) {
		return
	}
	form := wishlist.NewWishlist{
		Title:                  body.Title,
		OwnerName:              body.OwnerName,
		EventDate:              body.EventDate,
		Description:            body.Description,
		AllowAnonymousPurchase: body.AllowAnonymousPurchase,
	}
	if err := form.Validate(); err != nil {
		s.fail(c, err)
		return
	}
	w, err := s.store.CreateWishlist(c.GetString(userKey), form)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.FromWishlist(w))
}

func (s *Server) handleGetWishlist(c *gin.Context) {
	w, err := s.store.Wishlist(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromWishlist(w))
}

func (s *Server) handleDeleteWishlist(c *gin.Context) {
	if err := s.store.DeleteWishlist(c.Param("id"), c.GetString(userKey)); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleAddItem(c *gin.Context) {
	var body api.ItemRequest
	if !bind(c, &body) {
		return
	}
	patch, problems := itemPatch(body, true)
	if len(problems) > 0 {
		s.fail(c, problems)
		return
	}
	item, err := s.store.AddItem(c.Param("id"), c.GetString(userKey), patch)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, api.FromItem(item))
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	var body api.ItemRequest
	if !bind(c, &body) {
		return
	}
	patch, problems := itemPatch(body, false)
	if len(problems) > 0 {
		s.fail(c, problems)
		return
	}
	item, err := s.store.UpdateItem(c.Param("id"), c.Param("item_id"), c.GetString(userKey), patch)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, api.FromItem(item))
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	if err := s.store.DeleteItem(c.Param("id"), c.Param("item_id"), c.GetString(userKey)); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handlePurchase(c *gin.Context) {
	var body api.PurchaseRequest
	if !bind(c, &body) {
		return
	}
	s.apply(c, wishlist.Intent{Action: wishlist.ActionPurchase, Name: body.PurchasedBy})
}

func (s *Server) handleUnpurchase(c *gin.Context) {
	s.apply(c, wishlist.Intent{Action: wishlist.ActionUnpurchase})
}

func (s *Server) handleReserve(c *gin.Context) {
	var body api.ReserveRequest
	if !bind(c, &body) {
		return
	}
	s.apply(c, wishlist.Intent{Action: wishlist.ActionReserve, Name: body.ReservedBy})
}

func (s *Server) handleUnreserve(c *gin.Context) {
	s.apply(c, wishlist.Intent{Action: wishlist.ActionUnreserve})
}

func (s *Server) handleContribute(c *gin.Context) {
	var body api.ContributionRequest
	if !bind(c, &body) {
		return
	}
	amount, err := decimal.NewFromString(body.Amount.String())
	if err != nil {
		s.fail(c, wishlist.FieldErrors{"amount": wishlist.MsgInvalid})
		return
	}
	s.apply(c, wishlist.Intent{
		Action:  wishlist.ActionContribute,
		Name:    body.ContributorName,
		Amount:  amount,
		Message: body.Message,
	})
}

func (s *Server) apply(c *gin.Context, in wishlist.Intent) {
	item, err := s.store.Apply(c.Param("id"), c.Param("item_id"), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.metrics.mutation(in.Action.String())
	s.log.WithFields(logrus.Fields{
		"wishlist_id": c.Param("id"),
		"item_id":     item.ID,
		"action":      in.Action.String(),
		"state":       item.State().String(),
	}).Info("item updated")
	c.JSON(http.StatusOK, api.FromItem(item))
}

func (s *Server) handleExtractMetadata(c *gin.Context) {
	var body api.MetadataRequest
	if !bind(c, &body) {
		return
	}
	meta, err := s.scraper.Extract(c.Request.Context(), body.URL)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}

func itemPatch(body api.ItemRequest, create bool) (ItemPatch, wishlist.FieldErrors) {
	problems := wishlist.FieldErrors{}
	patch := ItemPatch{
		Title:       body.Title,
		Description: body.Description,
		ImageURL:    body.ImageURL,
		ProductURL:  body.ProductURL,
	}
	if create && (body.Title == nil || strings.TrimSpace(*body.Title) == "") {
		problems["title"] = wishlist.MsgRequired
	}
	if !create && body.Title != nil && strings.TrimSpace(*body.Title) == "" {
		problems["title"] = wishlist.MsgRequired
	}
	if body.ItemType != nil {
		kind := wishlist.ItemType(*body.ItemType).Normalize()
		patch.Type = &kind
	}
	if body.TargetAmount != nil {
		amount, err := decimal.NewFromString(body.TargetAmount.String())
		if err != nil {
			problems["target_amount"] = wishlist.MsgInvalid
		} else {
			patch.TargetAmount = &amount
		}
	}
	if patch.Type != nil && *patch.Type == wishlist.TypePooled {
		if patch.TargetAmount == nil || !patch.TargetAmount.IsPositive() {
			problems["target_amount"] = wishlist.MsgAmountPositive
		}
	}
	return patch, problems
}

func bind(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, "Invalid request body")
		return false
	}
	return true
}

func (s *Server) fail(c *gin.Context, err error) {
	var fields wishlist.FieldErrors
	var contribution *wishlist.ContributionError
	switch {
	case errors.As(err, &fields):
		abortProblems(c, fields)
	case errors.Is(err, ErrWishlistNotFound):
		abortDetail(c, http.StatusNotFound, "Wishlist not found")
	case errors.Is(err, ErrItemNotFound):
		abortDetail(c, http.StatusNotFound, "Item not found")
	case errors.Is(err, ErrForbidden):
		abortDetail(c, http.StatusForbidden, "Not authorized to modify this wishlist")
	case errors.Is(err, ErrEmailTaken):
		abortDetail(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrBadCredentials):
		abortDetail(c, http.StatusUnauthorized, "Incorrect email or password")
	case errors.Is(err, ErrUnknownUser):
		abortDetail(c, http.StatusUnauthorized, "Could not validate credentials")
	case errors.Is(err, wishlist.ErrNameRequired):
		abortDetail(c, http.StatusBadRequest, "Name is required")
	case errors.As(err, &contribution):
		if errors.Is(err, wishlist.ErrAmountExceedsRemaining) {
			abortDetail(c, http.StatusBadRequest, "Amount exceeds remaining "+contribution.Remaining.StringFixed(2))
			return
		}
		abortDetail(c, http.StatusBadRequest, "Amount must be greater than 0")
	case errors.Is(err, wishlist.ErrInvalidTransition):
		abortDetail(c, http.StatusBadRequest, "Action not allowed in the item's current state")
	case errors.Is(err, ErrBlockedSite):
		abortDetail(c, http.StatusBadRequest, "This site blocks automatic extraction")
	case errors.Is(err, ErrNoMetadata), errors.Is(err, ErrFetchFailed):
		abortDetail(c, http.StatusBadRequest, "Could not extract metadata from URL")
	case errors.Is(err, ErrInvalidURL):
		abortDetail(c, http.StatusUnprocessableEntity, "Invalid URL")
	default:
		_ = c.Error(err)
		abortDetail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func abortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

type problem struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func abortProblems(c *gin.Context, fields wishlist.FieldErrors) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]problem, 0, len(names))
	for _, name := range names {
		out = append(out, problem{Loc: []string{"body", name}, Msg: name + ": " + fields[name], Type: "value_error"})
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": out})
}
