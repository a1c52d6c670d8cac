package reconcile

import (
	"testing"

	"otc-compare/core/feed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	c := NewCatalog([]feed.CatalogEntry{
		{ItemID: 1, Name: "Alpha", GoldPrice: price(10)},
		{ItemID: 2, Name: "Beta"},
		{ItemID: 3, Name: "Alpha", GoldPrice: price(30)},
		{ItemID: 1, Name: "Alpha Again", GoldPrice: price(99)},
		{ItemID: 4, Name: ""},
	})

	t.Run("ResolveFirstMatch", func(t *testing.T) {
		id, err := c.Resolve("Alpha")
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("ResolveIsExact", func(t *testing.T) {
		_, err := c.Resolve("alpha")
		assert.ErrorIs(t, err, ErrItemNotFound)
		_, err = c.Resolve("")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("GoldPrice", func(t *testing.T) {
		p := c.GoldPrice(1)
		require.NotNil(t, p)
		assert.Equal(t, 10.0, *p)

		assert.Nil(t, c.GoldPrice(2))
		assert.Nil(t, c.GoldPrice(404))
	})

	t.Run("GoldPriceIdempotent", func(t *testing.T) {
		a, b := c.GoldPrice(3), c.GoldPrice(3)
		require.NotNil(t, a)
		assert.Equal(t, *a, *b)

		*a = 0
		assert.Equal(t, 30.0, *c.GoldPrice(3))
	})

	t.Run("EntriesKeepFeedOrder", func(t *testing.T) {
		assert.Equal(t, 5, c.Len())
		assert.Equal(t, int64(3), c.Entries()[2].ItemID)
	})
}

func TestNewListings_FirstWins(t *testing.T) {
	l := NewListings([]feed.ListingReference{
		{ItemID: 1, ListingType: "sb"},
		{ItemID: 1, ListingType: "map"},
		{ItemID: 2, ListingType: "map"},
	})
	assert.Equal(t, Listings{1: "sb", 2: "map"}, l)
}
