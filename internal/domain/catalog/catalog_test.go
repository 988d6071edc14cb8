package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officetools/internal/shared/config"
)

func TestLoadToolCatalog(t *testing.T) {
	c, err := LoadToolCatalog()
	require.NoError(t, err)

	tool, ok := c.Get(" Image-Resizer ")
	require.True(t, ok)
	assert.Equal(t, "image", tool.Category)
	assert.True(t, tool.IsFree())

	ocr, ok := c.Get("ocr")
	require.True(t, ok)
	assert.True(t, ocr.ClientOnly)
	assert.Equal(t, "pro", ocr.RequiredPlan)

	_, ok = c.Get("spreadsheet")
	assert.False(t, ok)
}

func TestParseToolCatalog_RejectsDuplicates(t *testing.T) {
	_, err := ParseToolCatalog([]byte("tools:\n  - slug: a\n  - slug: a\n"))
	assert.Error(t, err)
}

func TestNewPlanCatalog(t *testing.T) {
	c, err := NewPlanCatalog([]config.PlanConfig{
		{Name: "Pro", Price: "9.99", DurationDays: 30, Rank: 2},
		{Name: "basic", Price: "4.5", Currency: "eur", DurationDays: 30, Rank: 1},
	}, "usd")
	require.NoError(t, err)

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "basic", all[0].Name, "ordered by rank")
	assert.Equal(t, "EUR", all[0].Currency)

	pro, ok := c.Get("PRO")
	require.True(t, ok)
	assert.Equal(t, "USD", pro.Currency)
	assert.Equal(t, "9.99", pro.Price.StringFixed(2))
	assert.Equal(t, 30*24*time.Hour, pro.Duration)

	assert.True(t, pro.Satisfies(all[0]))
	assert.False(t, all[0].Satisfies(pro))
}

func TestNewPlanCatalog_InvalidPrice(t *testing.T) {
	_, err := NewPlanCatalog([]config.PlanConfig{{Name: "x", Price: "abc", DurationDays: 1}}, "USD")
	assert.Error(t, err)

	_, err = NewPlanCatalog([]config.PlanConfig{{Name: "x", Price: "0", DurationDays: 1}}, "USD")
	assert.Error(t, err)
}
