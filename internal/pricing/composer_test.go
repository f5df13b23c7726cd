package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testComposer builds a composer over a small fixed snapshot with sequential
// line-item IDs so assertions stay deterministic.
func testComposer() *Composer {
	book := NewRateBook()
	book.Set(1, 10, 100000) // Ava × Instagram Post
	book.Set(1, 11, 150000) // Ava × Reel
	book.Set(2, 10, 80000)  // Ben × Instagram Post

	c := NewComposer(book,
		map[uint]DeliverableInfo{
			10: {Name: "Instagram Post", Category: CategoryContent, DisplayOrder: 1},
			11: {Name: "Reel", Category: CategoryContent, DisplayOrder: 2},
			30: {Name: "Talent Boosting", Category: CategoryTalentBoosting, DisplayOrder: 5},
			50: {Name: "Monthly Management", Category: CategoryAgencyFee, DisplayOrder: 9},
		},
		map[uint]string{1: "Ava", 2: "Ben", 3: "Cy"},
	)
	n := 0
	c.NewID = func() string {
		n++
		return fmt.Sprintf("li-%d", n)
	}
	return c
}

func TestAddItem(t *testing.T) {
	c := testComposer()

	items, err := c.AddItem(nil, 1, 10, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "li-1", items[0].ID)
	assert.Equal(t, "Ava", items[0].TalentName)
	assert.Equal(t, "Instagram Post", items[0].DeliverableName)
	assert.Equal(t, int64(100000), items[0].UnitPrice)
	assert.Equal(t, int64(200000), items[0].Total())
}

func TestAddItemRejectsMissingRate(t *testing.T) {
	c := testComposer()

	// Cy has no rate for Instagram Post
	items, err := c.AddItem(nil, 3, 10, 1)
	assert.ErrorIs(t, err, ErrNoRate)
	assert.Empty(t, items)

	_, err = c.AddItem(nil, 1, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = c.AddItem(nil, 1, 999, 1)
	assert.ErrorIs(t, err, ErrUnknownDeliverable)
}

func TestAddItemAgencyFeeBypassesRateBook(t *testing.T) {
	c := testComposer()

	// no rate record exists for (Cy, Monthly Management); the tier formula
	// prices it anyway
	items, err := c.AddItem(nil, 3, 50, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(70000), items[0].UnitPrice)
	assert.Equal(t, int64(70000), items[0].Total())
}

func TestAddItemAllowsDuplicatePairs(t *testing.T) {
	c := testComposer()

	items, err := c.AddItem(nil, 1, 10, 1)
	require.NoError(t, err)
	items, err = c.AddItem(items, 1, 10, 1)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)

	totals := ComputeTotals(items, Settings{})
	assert.Equal(t, int64(200000), totals.TalentFees)

	// each row stays independently removable
	items = RemoveItem(items, items[0].ID)
	require.Len(t, items, 1)
}

func TestAddBulkSkipsUnpricedTalents(t *testing.T) {
	c := testComposer()

	// Cy has no Instagram Post rate and is filtered, not an error
	items, err := c.AddBulk(nil, []uint{1, 2, 3}, 10, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].TalentID)
	assert.Equal(t, uint(2), items[1].TalentID)
}

func TestAddBulkEmptyResultIsOneAggregateError(t *testing.T) {
	c := testComposer()

	orig := []LineItem{{ID: "keep"}}
	items, err := c.AddBulk(orig, []uint{2, 3}, 11, 1)
	assert.ErrorIs(t, err, ErrEmptyBulkAdd)
	// nothing partially applied
	assert.Equal(t, orig, items)
}

func TestAddCustomItem(t *testing.T) {
	c := testComposer()

	items, err := c.AddCustomItem(nil, 3, 10, 42000, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(42000), items[0].UnitPrice)

	// zero is a legitimate negotiated rate, negative is not
	_, err = c.AddCustomItem(nil, 1, 10, 0, 1)
	assert.NoError(t, err)
	_, err = c.AddCustomItem(nil, 1, 10, -1, 1)
	assert.ErrorIs(t, err, ErrNegativeRate)
}

func TestUpdateQuantity(t *testing.T) {
	c := testComposer()
	items, err := c.AddItem(nil, 1, 10, 1)
	require.NoError(t, err)

	updated := UpdateQuantity(items, items[0].ID, 3)
	assert.Equal(t, 3, updated[0].Quantity)
	assert.Equal(t, int64(100000), updated[0].UnitPrice)
	// input slice untouched
	assert.Equal(t, 1, items[0].Quantity)

	// quantities below 1 are ignored
	assert.Equal(t, updated, UpdateQuantity(updated, updated[0].ID, 0))
	// unknown IDs are ignored
	assert.Equal(t, updated, UpdateQuantity(updated, "nope", 5))
}

func TestUpdateQuantityRederivesAgencyFee(t *testing.T) {
	c := testComposer()
	items, err := c.AddItem(nil, 3, 50, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), items[0].UnitPrice)

	// quantity and unit price are coupled for agency_fee only
	items = UpdateQuantity(items, items[0].ID, 4)
	assert.Equal(t, int64(80000), items[0].UnitPrice)
	assert.Equal(t, int64(80000), items[0].Total())
}

func TestDuplicateItem(t *testing.T) {
	c := testComposer()
	items, err := c.AddItem(nil, 1, 10, 2)
	require.NoError(t, err)
	items, err = c.AddItem(items, 1, 11, 1)
	require.NoError(t, err)

	items = c.DuplicateItem(items, items[0].ID)
	require.Len(t, items, 3)
	// copy lands right after the original, with a fresh ID
	assert.Equal(t, items[0].TalentID, items[1].TalentID)
	assert.Equal(t, items[0].DeliverableID, items[1].DeliverableID)
	assert.Equal(t, items[0].Quantity, items[1].Quantity)
	assert.NotEqual(t, items[0].ID, items[1].ID)
	assert.Equal(t, uint(11), items[2].DeliverableID)
}

func TestGroupByTalent(t *testing.T) {
	c := testComposer()
	items, err := c.AddItem(nil, 1, 10, 1)
	require.NoError(t, err)
	items, err = c.AddItem(items, 2, 10, 1)
	require.NoError(t, err)
	items, err = c.AddItem(items, 1, 11, 2)
	require.NoError(t, err)

	groups := GroupByTalent(items)
	require.Len(t, groups, 2)
	assert.Equal(t, "Ava", groups[0].TalentName)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, int64(100000+2*150000), groups[0].Subtotal)
	assert.Equal(t, "Ben", groups[1].TalentName)
	assert.Equal(t, int64(80000), groups[1].Subtotal)
}
