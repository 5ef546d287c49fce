// Package catalog is the fixed set of listings the views render. It does
// no I/O; records are compiled in.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type PropertyType string

const (
	TypeHouse     PropertyType = "house"
	TypeApartment PropertyType = "apartment"
	TypeCondo     PropertyType = "condo"
	TypeTownhouse PropertyType = "townhouse"
)

type Status string

const (
	StatusForSale Status = "for-sale"
	StatusForRent Status = "for-rent"
	StatusSold    Status = "sold"
	StatusRented  Status = "rented"
)

// Property is one listing.
type Property struct {
	ID          string
	Title       string
	Price       int64
	Location    string
	Bedrooms    int
	Bathrooms   int
	Sqft        int
	Type        PropertyType
	Status      Status
	Description string
	Features    []string
	YearBuilt   int
	Parking     int
	IsNFT       bool
	Owner       string
}

// PriceLabel formats the price, with a monthly suffix for rentals.
func (p Property) PriceLabel() string {
	s := FormatThousands(p.Price)
	if p.Status == StatusForRent || p.Status == StatusRented {
		return "$" + s + "/mo"
	}
	return "$" + s
}

// FormatThousands renders n with comma separators.
func FormatThousands(n int64) string {
	raw := fmt.Sprintf("%d", n)
	if len(raw) <= 3 {
		return raw
	}
	var b strings.Builder
	lead := len(raw) % 3
	if lead > 0 {
		b.WriteString(raw[:lead])
	}
	for i := lead; i < len(raw); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(raw[i : i+3])
	}
	return b.String()
}

// Catalog is an immutable, id-indexed listing set.
type Catalog struct {
	items []Property
	byID  map[string]int
}

// New builds a catalog from items. Later duplicates of an id are dropped.
func New(items []Property) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(items))}
	for _, p := range items {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.items)
		c.items = append(c.items, p)
	}
	return c
}

// Default returns the built-in listing fixture.
func Default() *Catalog { return New(seed) }

func (c *Catalog) Get(id string) (Property, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Property{}, false
	}
	return c.items[i], true
}

func (c *Catalog) All() []Property {
	out := make([]Property, len(c.items))
	copy(out, c.items)
	return out
}

// Featured returns the first n listings that are still on the market.
func (c *Catalog) Featured(n int) []Property {
	var out []Property
	for _, p := range c.items {
		if len(out) == n {
			break
		}
		if p.Status == StatusForSale || p.Status == StatusForRent {
			out = append(out, p)
		}
	}
	return out
}

// Lookup resolves ids in order, skipping unknown ones.
func (c *Catalog) Lookup(ids []string) []Property {
	out := make([]Property, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// Search matches query against title and location words, tolerating small
// typos. Results are ordered by match distance, then catalog order.
func (c *Catalog) Search(query string) []Property {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}

	type hit struct {
		p    Property
		dist int
		pos  int
	}
	var hits []hit
	for i, p := range c.items {
		if d, ok := matchDistance(q, p); ok {
			hits = append(hits, hit{p: p, dist: d, pos: i})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].pos < hits[j].pos
	})

	out := make([]Property, len(hits))
	for i, h := range hits {
		out[i] = h.p
	}
	return out
}

func matchDistance(q string, p Property) (int, bool) {
	hay := strings.ToLower(p.Title + " " + p.Location + " " + string(p.Type))
	if strings.Contains(hay, q) {
		return 0, true
	}
	best := -1
	for _, word := range strings.FieldsFunc(hay, func(r rune) bool { return r == ' ' || r == ',' || r == '-' }) {
		d := levenshtein.ComputeDistance(q, word)
		if d <= tolerance(q) && (best < 0 || d < best) {
			best = d
		}
	}
	return best, best >= 0
}

func tolerance(q string) int {
	switch n := len([]rune(q)); {
	case n < 4:
		return 0
	case n < 7:
		return 1
	default:
		return 2
	}
}
