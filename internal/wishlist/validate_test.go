package wishlist

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWishlistValidate(t *testing.T) {
	form := NewWishlist{Title: "  ", OwnerName: "Sofía", EventDate: "14/03/2026", Description: "x"}
	err := form.Validate()

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, MsgRequired, fields["title"])
	assert.Equal(t, MsgInvalidDate, fields["eventDate"])
	assert.NotContains(t, fields, "ownerName")

	ok := NewWishlist{Title: "Cumple 30", OwnerName: "Sofía", EventDate: "2026-03-14", Description: "Fiesta"}
	require.NoError(t, ok.Validate())
	date, err := ok.ParsedEventDate()
	require.NoError(t, err)
	assert.Equal(t, 14, date.Day())
}

func TestItemInputValidate(t *testing.T) {
	in := ItemInput{Title: "Lego", Description: "Set", ProductURL: "not a url", ImageURL: ""}
	err := in.Validate()
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, MsgInvalidURL, fields["productUrl"])
	assert.NotContains(t, fields, "imageUrl")
	assert.Equal(t, TypeStandard, in.Type)

	pooled := ItemInput{Title: "Bici", Description: "Roja", Type: TypePooled}
	err = pooled.Validate()
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, MsgAmountPositive, fields["targetAmount"])

	pooled.TargetAmount = decimal.NewFromInt(300)
	pooled.ProductURL = "https://example.com/bici"
	assert.NoError(t, pooled.Validate())
}

func TestCredentialForms(t *testing.T) {
	login := Credentials{Email: "ana@", Password: ""}
	var fields FieldErrors
	require.ErrorAs(t, login.Validate(), &fields)
	assert.Equal(t, MsgInvalidEmail, fields["email"])
	assert.Equal(t, MsgRequired, fields["password"])

	reg := Registration{Name: "Ana", Email: " ana@example.com ", Password: "12345"}
	require.ErrorAs(t, reg.Validate(), &fields)
	assert.Equal(t, MsgPasswordTooShort, fields["password"])
	assert.Equal(t, "ana@example.com", reg.Email)

	reg.Password = "123456"
	assert.NoError(t, reg.Validate())
}

func TestContributionInputValidate(t *testing.T) {
	item := pooledItem(100, 60)

	in := ContributionInput{ContributorName: " ", Amount: decimal.NewFromInt(10)}
	var fields FieldErrors
	require.ErrorAs(t, in.Validate(item), &fields)
	assert.Equal(t, MsgRequired, fields["contributorName"])

	in.ContributorName = "Ana"
	in.Amount = decimal.NewFromInt(50)
	assert.ErrorIs(t, in.Validate(item), ErrAmountExceedsRemaining)

	in.Amount = decimal.NewFromInt(40)
	assert.NoError(t, in.Validate(item))
}

func TestAggregateHelpers(t *testing.T) {
	w := Wishlist{
		OwnerID: "user-1",
		Items:   []Item{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C"}},
	}

	assert.True(t, w.ReplaceItem(Item{ID: "b", Title: "B2"}))
	assert.Equal(t, "B2", w.Items[1].Title)
	assert.False(t, w.ReplaceItem(Item{ID: "z"}))

	assert.True(t, w.RemoveItem("a"))
	require.Len(t, w.Items, 2)
	assert.Equal(t, "b", w.Items[0].ID)
	assert.Equal(t, "c", w.Items[1].ID)

	assert.True(t, w.IsOwner("", true))
	assert.True(t, w.IsOwner("user-1", false))
	assert.False(t, w.IsOwner("user-2", false))
	assert.False(t, w.IsOwner("", false))
}

func TestCloneIsDeep(t *testing.T) {
	w := Wishlist{Items: []Item{{ID: "a", Contributions: []Contribution{{ContributorName: "Ana"}}}}}
	dup := w.Clone()
	dup.Items[0].Contributions[0].ContributorName = "Luis"
	dup.Items[0].Title = "changed"
	assert.Equal(t, "Ana", w.Items[0].Contributions[0].ContributorName)
	assert.Empty(t, w.Items[0].Title)
}
