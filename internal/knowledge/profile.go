package knowledge

import (
	"strings"

	"github.com/vendedor-ai/carmatch/internal/common"
)

// Lookup resolves a model name to its profile. The name is collapsed to a
// key (accents, hyphens and spaces stripped, lowered) so "hb20s", "HB 20 S"
// and "hb-20s" all resolve to the same entry; when no exact key exists it
// falls back to substring containment in either direction.
func (c *Catalog) Lookup(model string) (Profile, bool) {
	key := common.NormalizeKey(model)
	if key == "" {
		return Profile{}, false
	}

	if p, ok := c.profiles[key]; ok {
		return p, true
	}

	for _, k := range c.profileKeys {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return c.profiles[k], true
		}
	}

	return Profile{}, false
}

// TypicalPriceRange returns the profile's typical price range, or the fixed
// default band when the model is unknown. The default keeps fallback tiers
// supplied with a usable price anchor for any model name.
func (c *Catalog) TypicalPriceRange(model string) PriceRange {
	if p, ok := c.Lookup(model); ok {
		return p.PriceRange
	}
	return PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax}
}

// CategoryOf returns the profile's category, or the default category when
// the model is unknown.
func (c *Catalog) CategoryOf(model string) string {
	if p, ok := c.Lookup(model); ok {
		return p.Category
	}
	return DefaultCategory
}
