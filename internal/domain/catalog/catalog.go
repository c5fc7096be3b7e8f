// Package catalog holds the static regional food catalog and nutrition
// facts. Both tables are process-wide immutable configuration: loaded once
// at startup, injected by reference, never written afterwards.
package catalog

import (
	"strings"

	"go.uber.org/zap"
)

// Region identifies a food-availability grouping of Kenyan locations
type Region string

const (
	RegionCentral    Region = "central"
	RegionCoastal    Region = "coastal"
	RegionWestern    Region = "western"
	RegionNorthern   Region = "northern"
	RegionEastern    Region = "eastern"
	RegionNyanza     Region = "nyanza"
	RegionRiftValley Region = "rift_valley"
)

// DefaultRegion is used when a location cannot be resolved
const DefaultRegion = RegionCentral

// Category is one of the five fixed food categories
type Category string

const (
	CategoryGrains     Category = "grains"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryLegumes    Category = "legumes"
	CategoryProteins   Category = "proteins"
)

// Categories lists the fixed categories in presentation order
var Categories = []Category{
	CategoryGrains,
	CategoryVegetables,
	CategoryFruits,
	CategoryLegumes,
	CategoryProteins,
}

// RegionFoods maps each category to the ordered food ids stocked in a region
type RegionFoods map[Category][]string

// Catalog exposes region resolution, food availability and nutrition lookup
type Catalog struct {
	regions   map[Region]RegionFoods
	aliases   map[string]Region
	nutrition map[string]Facts
	logger    *zap.Logger
}

// New creates a Catalog backed by the built-in regional tables
func New(logger *zap.Logger) *Catalog {
	return &Catalog{
		regions:   regionalFoods,
		aliases:   locationAliases,
		nutrition: nutritionFacts,
		logger:    logger.Named("catalog"),
	}
}

// ResolveRegion maps a free-text location to a region. Lookup is
// case-insensitive; a literal region id is accepted as-is. Unresolved
// locations fall back to DefaultRegion with a warning, never an error.
func (c *Catalog) ResolveRegion(location string) Region {
	normalized := strings.ToLower(strings.TrimSpace(location))

	if region, ok := c.aliases[normalized]; ok {
		return region
	}
	if _, ok := c.regions[Region(normalized)]; ok {
		return Region(normalized)
	}

	c.logger.Warn("Location not found in alias table, using default region",
		zap.String("location", location),
		zap.String("default_region", string(DefaultRegion)),
	)
	return DefaultRegion
}

// Foods returns the category map for a region. The returned map and its
// slices are copies; callers cannot mutate the shared tables. Unknown
// regions return the default region's foods.
func (c *Catalog) Foods(region Region) RegionFoods {
	entry, ok := c.regions[region]
	if !ok {
		entry = c.regions[DefaultRegion]
	}

	out := make(RegionFoods, len(entry))
	for category, foods := range entry {
		copied := make([]string, len(foods))
		copy(copied, foods)
		out[category] = copied
	}
	return out
}

// Nutrition returns the nutrition facts for a food id. Unknown ids resolve
// to a neutral sentinel record so downstream filters never special-case
// missing data.
func (c *Catalog) Nutrition(foodID string) Facts {
	if facts, ok := c.nutrition[foodID]; ok {
		return facts
	}
	return NeutralFacts
}

// AvailableSet returns the flattened set of every food id stocked in a
// region across all categories.
func (c *Catalog) AvailableSet(region Region) map[string]bool {
	entry, ok := c.regions[region]
	if !ok {
		entry = c.regions[DefaultRegion]
	}

	set := make(map[string]bool)
	for _, foods := range entry {
		for _, id := range foods {
			set[id] = true
		}
	}
	return set
}

// Available reports whether a food id is stocked anywhere in a region
func (c *Catalog) Available(region Region, foodID string) bool {
	return c.AvailableSet(region)[foodID]
}
