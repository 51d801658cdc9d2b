package wishlist

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveName(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		anonymous bool
		want      string
		wantErr   error
	}{
		{"named visitor", " Ana ", false, "Ana", nil},
		{"named visitor anonymous allowed", "Ana", true, "Ana", nil},
		{"empty not allowed", "   ", false, "", ErrNameRequired},
		{"empty allowed", "", true, "Anónimo", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveName(tc.in, tc.anonymous, "Anónimo")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateContribution(t *testing.T) {
	item := pooledItem(100, 60)

	cases := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{"zero", "0", ErrAmountNotPositive},
		{"negative", "-5", ErrAmountNotPositive},
		{"above remaining", "40.01", ErrAmountExceedsRemaining},
		{"exact remaining", "40", nil},
		{"small", "0.01", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateContribution(item, decimal.RequireFromString(tc.amount))
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
			var cerr *ContributionError
			require.ErrorAs(t, err, &cerr)
			assert.True(t, cerr.Remaining.Equal(decimal.NewFromInt(40)))
			assert.Contains(t, cerr.Error(), "remaining 40.00")
		})
	}
}

func TestProgress(t *testing.T) {
	assert.InDelta(t, 60.0, pooledItem(100, 60).Progress(), 0.0001)
	assert.InDelta(t, 100.0, pooledItem(100, 130).Progress(), 0.0001)
	assert.InDelta(t, 100.0, pooledItem(0, 0).Progress(), 0.0001)
	assert.True(t, pooledItem(100, 130).Remaining().IsZero())
}

func TestQuickAmounts(t *testing.T) {
	toStrings := func(values []decimal.Decimal) []string {
		out := make([]string, 0, len(values))
		for _, v := range values {
			out = append(out, v.String())
		}
		return out
	}

	assert.Equal(t, []string{"10", "25", "40"}, toStrings(QuickAmounts(pooledItem(100, 60))))
	assert.Equal(t, []string{"10", "25", "50"}, toStrings(QuickAmounts(pooledItem(100, 50))))
	assert.Equal(t, []string{"5"}, toStrings(QuickAmounts(pooledItem(100, 95))))
	assert.Empty(t, QuickAmounts(pooledItem(100, 100)))
}
