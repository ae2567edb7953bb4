package sortfilter_test

import (
	"testing"

	"github.com/deevus/erp-tui/sortfilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string
	SKU   string
	Price float64
	Stock map[string]int
}

type key string

const (
	keyName  key = "name"
	keyPrice key = "price"
	keyStock key = "stock"
)

func totalStock(it item) int {
	total := 0
	for _, n := range it.Stock {
		total += n
	}
	return total
}

func newView() *sortfilter.View[item, key] {
	return sortfilter.New(sortfilter.Params[item, key]{
		Fields: []func(item) string{
			func(it item) string { return it.Name },
			func(it item) string { return it.SKU },
		},
		Keys: map[key]sortfilter.Compare[item]{
			keyName:  sortfilter.By(func(it item) string { return it.Name }),
			keyPrice: sortfilter.By(func(it item) float64 { return it.Price }),
			keyStock: sortfilter.By(totalStock),
		},
	})
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	items := []item{{Name: "Alpha"}, {Name: "Beta"}}
	got := sortfilter.Filter(items, "al", func(it item) string { return it.Name })
	assert.Equal(t, []item{{Name: "Alpha"}}, got)
}

func TestFilter_EmptyTermKeepsAll(t *testing.T) {
	items := []item{{Name: "b"}, {Name: "a"}}
	got := sortfilter.Filter(items, "", func(it item) string { return it.Name })
	assert.Equal(t, items, got)

	got[0].Name = "changed"
	assert.Equal(t, "b", items[0].Name, "filter must return a new slice")
}

func TestFilter_AnyField(t *testing.T) {
	items := []item{
		{Name: "AC Unit", SKU: "FP-AC-15T"},
		{Name: "Fridge", SKU: "FP-RF-500L"},
	}
	v := newView()
	v.SetItems(items)
	v.SetSearchTerm("rf-5")
	assert.Equal(t, []string{"Fridge"}, names(v.Rows()))
}

func TestFilter_NotTokenBased(t *testing.T) {
	items := []item{{Name: "Washing Machine"}}
	got := sortfilter.Filter(items, "ng ma", func(it item) string { return it.Name })
	assert.Len(t, got, 1)

	got = sortfilter.Filter(items, "machine washing", func(it item) string { return it.Name })
	assert.Empty(t, got)
}

func TestView_UnsortedKeepsSourceOrder(t *testing.T) {
	v := newView()
	v.SetItems([]item{{Name: "c"}, {Name: "a"}, {Name: "b"}})
	_, ok := v.SortConfig()
	assert.False(t, ok)
	assert.Equal(t, []string{"c", "a", "b"}, names(v.Rows()))
}

func TestView_RequestSortToggle(t *testing.T) {
	v := newView()

	v.RequestSort(keyPrice)
	cfg, ok := v.SortConfig()
	require.True(t, ok)
	assert.Equal(t, sortfilter.Config[key]{Key: keyPrice, Direction: sortfilter.Ascending}, cfg)

	v.RequestSort(keyPrice)
	cfg, _ = v.SortConfig()
	assert.Equal(t, sortfilter.Descending, cfg.Direction)

	v.RequestSort(keyPrice)
	cfg, _ = v.SortConfig()
	assert.Equal(t, sortfilter.Ascending, cfg.Direction)
}

func TestView_RequestSortOtherKeyResetsAscending(t *testing.T) {
	v := newView()
	v.RequestSort(keyPrice)
	v.RequestSort(keyPrice)
	v.RequestSort(keyName)

	cfg, _ := v.SortConfig()
	assert.Equal(t, sortfilter.Config[key]{Key: keyName, Direction: sortfilter.Ascending}, cfg)
}

func TestView_RequestSortUnknownKeyIgnored(t *testing.T) {
	v := newView()
	v.RequestSort("colour")
	_, ok := v.SortConfig()
	assert.False(t, ok)
}

func TestView_SortNumericAndString(t *testing.T) {
	items := []item{
		{Name: "Vacuum", Price: 800},
		{Name: "AC", Price: 2500},
		{Name: "Microwave", Price: 600},
	}
	v := newView()
	v.SetItems(items)

	v.RequestSort(keyPrice)
	assert.Equal(t, []string{"Microwave", "Vacuum", "AC"}, names(v.Rows()))

	v.RequestSort(keyPrice)
	assert.Equal(t, []string{"AC", "Vacuum", "Microwave"}, names(v.Rows()))

	v.RequestSort(keyName)
	assert.Equal(t, []string{"AC", "Microwave", "Vacuum"}, names(v.Rows()))

	assert.Equal(t, []string{"Vacuum", "AC", "Microwave"}, names(items), "source must not be reordered")
}

func TestView_SortDerivedKey(t *testing.T) {
	v := newView()
	v.SetItems([]item{
		{Name: "a", Stock: map[string]int{"wh1": 10, "wh2": 5}},
		{Name: "b", Stock: map[string]int{"wh1": 1}},
		{Name: "c", Stock: nil},
	})
	v.RequestSort(keyStock)
	assert.Equal(t, []string{"c", "b", "a"}, names(v.Rows()))
}

func TestView_EmptyAfterFilter(t *testing.T) {
	v := newView()
	v.SetItems([]item{{Name: "Alpha"}})
	v.SetSearchTerm("zzz")

	assert.Empty(t, v.Rows())
	v.RequestSort(keyName)
	assert.Empty(t, v.Rows())
	assert.Equal(t, 0, v.Len())
}

func TestView_RecomputesOnChange(t *testing.T) {
	v := newView()
	v.SetItems([]item{{Name: "Alpha"}, {Name: "Beta"}})
	assert.Len(t, v.Rows(), 2)

	v.SetSearchTerm("BET")
	assert.Equal(t, []string{"Beta"}, names(v.Rows()))
	assert.Equal(t, "BET", v.SearchTerm())

	v.SetItems([]item{{Name: "Alphabet"}, {Name: "Gamma"}})
	assert.Equal(t, []string{"Alphabet"}, names(v.Rows()))
}

func TestNextConfig(t *testing.T) {
	cfg := sortfilter.NextConfig[key](nil, keyName)
	assert.Equal(t, sortfilter.Ascending, cfg.Direction)

	cfg = sortfilter.NextConfig(cfg, keyName)
	assert.Equal(t, sortfilter.Descending, cfg.Direction)

	cfg = sortfilter.NextConfig(cfg, keyName)
	assert.Equal(t, sortfilter.Ascending, cfg.Direction)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "ascending", sortfilter.Ascending.String())
	assert.Equal(t, "descending", sortfilter.Descending.String())
}
