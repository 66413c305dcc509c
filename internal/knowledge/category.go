package knowledge

import (
	"strings"

	"github.com/vendedor-ai/carmatch/internal/common"
)

// NormalizeCategory maps a raw body-type string to its canonical category.
// Resolution is exact synonym lookup first, then substring containment in
// both directions against every synonym key, which catches compound phrases
// like "picape cabine dupla". Unresolved input comes back normalized but
// unmapped; non-empty input never yields an empty result.
func (c *Catalog) NormalizeCategory(raw string) string {
	n := common.NormalizeText(raw)
	if n == "" {
		return ""
	}

	if canonical, ok := c.synonyms[n]; ok {
		return canonical
	}

	for _, key := range c.synonymKeys {
		if strings.Contains(n, key) || strings.Contains(key, n) {
			return c.synonyms[key]
		}
	}

	return n
}

// SameCategory reports whether two raw body-type strings normalize to the
// same canonical category.
func (c *Catalog) SameCategory(a, b string) bool {
	return c.NormalizeCategory(a) == c.NormalizeCategory(b)
}
