// Package knowledge holds the static vehicle knowledge base: the canonical
// body-type categories with their synonym table, and the model profile table
// mapping known models to category, segment and typical price range. Both are
// built once from embedded data and never mutated at runtime.
package knowledge

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vendedor-ai/carmatch/internal/common"
)

// Defaults used when a model is absent from the profile table, so downstream
// fallback tiers always have a usable price anchor and category.
const (
	DefaultCategory = "hatch"

	DefaultPriceMin = 80000.0
	DefaultPriceMax = 120000.0
)

//go:embed data/categories.yaml
var categoriesYAML []byte

//go:embed data/profiles.yaml
var profilesYAML []byte

// PriceRange is an inclusive price band in domain currency units.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint returns the middle of the range, used as the default reference
// price for fallback searches.
func (r PriceRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Profile describes what is known about a vehicle model independent of any
// particular inventory unit.
type Profile struct {
	Model      string
	Category   string
	Segment    string
	PriceRange PriceRange
}

// Catalog is the immutable, queryable knowledge base. Safe for concurrent
// use: all fields are written once during construction.
type Catalog struct {
	profiles    map[string]Profile
	profileKeys []string
	synonyms    map[string]string
	synonymKeys []string
	modelTokens []string
}

type profileEntry struct {
	Model    string   `yaml:"model"`
	Category string   `yaml:"category"`
	Segment  string   `yaml:"segment"`
	Aliases  []string `yaml:"aliases"`
	PriceMin float64  `yaml:"price_min"`
	PriceMax float64  `yaml:"price_max"`
}

type dataFiles struct {
	Categories map[string][]string `yaml:"categories"`
	Profiles   []profileEntry      `yaml:"profiles"`
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := load(categoriesYAML, profilesYAML)
	if err != nil {
		panic(fmt.Sprintf("knowledge: embedded data is invalid: %v", err))
	}
	return c
})

// Default returns the catalog built from the embedded data files. The same
// instance is shared by every caller.
func Default() *Catalog {
	return defaultCatalog()
}

func load(categories, profiles []byte) (*Catalog, error) {
	var cats dataFiles
	if err := yaml.Unmarshal(categories, &cats); err != nil {
		return nil, fmt.Errorf("parsing categories: %w", err)
	}
	var profs dataFiles
	if err := yaml.Unmarshal(profiles, &profs); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}
	return build(cats.Categories, profs.Profiles)
}

func build(categories map[string][]string, profiles []profileEntry) (*Catalog, error) {
	c := &Catalog{
		profiles: make(map[string]Profile),
		synonyms: make(map[string]string),
	}

	for canonical, variants := range categories {
		canonical = common.NormalizeText(canonical)
		if canonical == "" {
			return nil, fmt.Errorf("empty canonical category")
		}
		c.synonyms[canonical] = canonical
		for _, v := range variants {
			if n := common.NormalizeText(v); n != "" {
				c.synonyms[n] = canonical
			}
		}
	}

	for _, p := range profiles {
		if p.Model == "" {
			return nil, fmt.Errorf("profile with empty model name")
		}
		if p.PriceMin <= 0 || p.PriceMax < p.PriceMin {
			return nil, fmt.Errorf("profile %q has invalid price range %v-%v", p.Model, p.PriceMin, p.PriceMax)
		}
		profile := Profile{
			Model:    common.NormalizeText(p.Model),
			Category: common.NormalizeText(p.Category),
			Segment:  p.Segment,
			PriceRange: PriceRange{
				Min: p.PriceMin,
				Max: p.PriceMax,
			},
		}
		names := append([]string{p.Model}, p.Aliases...)
		for _, name := range names {
			key := common.NormalizeKey(name)
			if key == "" {
				continue
			}
			// Aliases often collapse to the same key as the model itself
			// ("t-cross" and "tcross"); only a clash between different
			// models is a data error.
			if existing, ok := c.profiles[key]; ok {
				if existing.Model != profile.Model {
					return nil, fmt.Errorf("profile key %q claimed by both %q and %q", key, existing.Model, profile.Model)
				}
			} else {
				c.profiles[key] = profile
			}
			c.modelTokens = append(c.modelTokens, common.NormalizeText(name))
		}
	}

	// Deterministic iteration order for the substring fallbacks: longest key
	// first so the most specific entry wins.
	c.profileKeys = sortedByLength(keys(c.profiles))
	c.synonymKeys = sortedByLength(keys(c.synonyms))
	c.modelTokens = sortedByLength(dedupe(c.modelTokens))

	return c, nil
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func dedupe(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := s[:0]
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func sortedByLength(s []string) []string {
	sort.Slice(s, func(i, j int) bool {
		if len(s[i]) != len(s[j]) {
			return len(s[i]) > len(s[j])
		}
		return s[i] < s[j]
	})
	return s
}

// ModelTokens returns every known model name and alias in normalized form,
// longest first. The query parser uses this as its dictionary.
func (c *Catalog) ModelTokens() []string {
	out := make([]string, len(c.modelTokens))
	copy(out, c.modelTokens)
	return out
}
