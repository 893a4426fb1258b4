package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Strict(t *testing.T) {
	d, err := ParseDate("2023-01-28")
	require.NoError(t, err)
	assert.Equal(t, "2023-01-28", d.String())

	for _, bad := range []string{"", "2023-1-28", "28-01-2023", "2023-13-01", "2023-02-30", "2023-01-32", "2023-01-28T00:00:00Z", " 2023-01-28"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDate_ZeroValue(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Empty(t, d.String())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDate_FirstDayOfEra(t *testing.T) {
	d, err := ParseDate("0001-01-01")
	require.NoError(t, err)
	assert.False(t, d.IsZero())
	assert.Equal(t, "0001-01-01", d.String())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01", v)

	var back Date
	require.NoError(t, back.Scan(v))
	assert.False(t, back.IsZero())
	assert.Equal(t, d, back)
	assert.True(t, back.Before(NewDate(2024, time.January, 1)))
}

func TestDate_AddDaysAndBefore(t *testing.T) {
	d := NewDate(2024, time.February, 28)
	next := d.AddDays(1)
	assert.Equal(t, "2024-02-29", next.String())
	assert.True(t, d.Before(next))
	assert.False(t, next.Before(d))
	assert.False(t, d.Before(d))
}

func TestDateOf_DropsTime(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-05", DateOf(ts).String())
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2022-12-31"))
	assert.Equal(t, "2022-12-31", d.String())

	require.NoError(t, d.Scan([]byte("2021-06-15")))
	assert.Equal(t, "2021-06-15", d.String())

	require.NoError(t, d.Scan(time.Date(2020, time.July, 4, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2020-07-04", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan("not a date"))
	assert.Error(t, d.Scan(42))
}

func TestItemType(t *testing.T) {
	assert.True(t, ItemLogin.IsValid())
	assert.False(t, ItemType("note").IsValid())

	assert.True(t, ItemLogin.UsesKey())
	assert.True(t, ItemCard.UsesKey())
	assert.True(t, ItemSecret.UsesKey())
	assert.False(t, ItemIdentity.UsesKey())
}

func TestItem_ExpiresOn(t *testing.T) {
	exp := NewDate(2030, time.January, 1)

	card := Item{Type: ItemCard, Card: CardData{ExpiresOn: exp}}
	d, ok := card.ExpiresOn()
	assert.True(t, ok)
	assert.Equal(t, exp, d)

	id := Item{Type: ItemIdentity, Identity: IdentityData{ExpiresOn: exp}}
	d, ok = id.ExpiresOn()
	assert.True(t, ok)
	assert.Equal(t, exp, d)

	_, ok = (&Item{Type: ItemLogin}).ExpiresOn()
	assert.False(t, ok)
}
