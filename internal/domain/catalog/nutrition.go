package catalog

// Facts contains per-100g macro-nutrients and the glycemic index of a food
type Facts struct {
	CaloriesPer100g float64 `json:"calories_per_100g"`
	CarbsG          float64 `json:"carbs_g"`
	ProteinG        float64 `json:"protein_g"`
	FatG            float64 `json:"fat_g"`
	FiberG          float64 `json:"fiber_g"`
	GlycemicIndex   float64 `json:"glycemic_index"`
}

// LowGIThreshold is the WHO cutoff below which a food counts as low-GI
const LowGIThreshold = 55

// IsLowGI reports whether the food is low glycemic index
func (f Facts) IsLowGI() bool {
	return f.GlycemicIndex < LowGIThreshold
}

// NeutralFacts is the sentinel returned for unknown food ids: zero macros
// and a mid-range GI so GI filters neither favor nor exclude it strongly.
var NeutralFacts = Facts{GlycemicIndex: 50}

var nutritionFacts = map[string]Facts{
	// Grains
	"maize":         {365, 74, 9, 4.7, 7.3, 60},
	"rice":          {365, 80, 7, 0.7, 1.3, 73},
	"millet":        {378, 73, 11, 4.2, 8.5, 71},
	"wheat":         {340, 72, 13, 2.5, 12.2, 30},
	"barley":        {354, 73, 12, 2.3, 17.3, 25},
	"sorghum":       {339, 75, 11, 3.3, 6.3, 62},
	"finger_millet": {336, 72, 7.3, 1.3, 3.6, 104},
	"pearl_millet":  {361, 67, 11, 5, 8.5, 67},
	"cassava":       {160, 38, 1.4, 0.3, 1.8, 46},
	"oats":          {389, 66, 17, 7, 10.6, 55},

	// Vegetables
	"kale":           {35, 4.4, 2.9, 0.4, 4.1, 15},
	"spinach":        {23, 3.6, 2.9, 0.4, 2.2, 15},
	"sweet_potatoes": {86, 20, 1.6, 0.1, 3, 70},
	"cabbage":        {25, 6, 1.3, 0.1, 2.5, 10},
	"carrots":        {41, 10, 0.9, 0.2, 2.8, 47},
	"onions":         {40, 9, 1.1, 0.1, 1.7, 15},
	"tomatoes":       {18, 3.9, 0.9, 0.2, 1.2, 15},
	"irish_potatoes": {77, 17, 2, 0.1, 2.2, 78},
	"potatoes":       {77, 17, 2, 0.1, 2.2, 78},
	"beans_leaves":   {45, 9, 4.2, 0.5, 4.8, 15},
	"okra":           {33, 7, 1.9, 0.2, 3.2, 20},
	"eggplant":       {25, 6, 1, 0.2, 3, 15},
	"amaranth":       {23, 4.6, 2.5, 0.3, 2.1, 15},
	"cassava_leaves": {37, 7, 3.7, 0.6, 3.7, 15},
	"pumpkin_leaves": {19, 3.9, 3, 0.2, 2.2, 15},
	"pumpkin":        {26, 7, 1, 0.1, 0.5, 75},
	"spider_plant":   {30, 5.5, 3.5, 0.4, 3.2, 15},
	"nightshade":     {28, 5.8, 2.5, 0.3, 2.8, 15},

	// Fruits
	"bananas":       {89, 23, 1.1, 0.3, 2.6, 62},
	"mangoes":       {60, 15, 0.8, 0.4, 1.6, 51},
	"avocados":      {160, 9, 2, 15, 7, 15},
	"oranges":       {47, 12, 0.9, 0.1, 2.4, 45},
	"passion_fruit": {97, 23, 2.2, 0.7, 10.4, 30},
	"tree_tomatoes": {31, 6, 2, 0.4, 3.3, 25},
	"macadamia":     {718, 14, 8, 76, 8.6, 15},
	"coconut":       {354, 15, 3.3, 33, 9, 45},
	"jackfruit":     {95, 23, 1.7, 0.6, 1.5, 75},
	"baobab_fruit":  {162, 38, 2.3, 0.2, 44.5, 35},
	"cashew_fruit":  {46, 10, 0.8, 0.5, 1.7, 25},
	"tamarind":      {239, 63, 2.8, 0.6, 5.1, 23},
	"sugarcane":     {58, 13, 0.4, 0.5, 0.6, 43},
	"pineapples":    {50, 13, 0.5, 0.1, 1.4, 66},
	"guavas":        {68, 14, 2.6, 1, 5.4, 12},
	"dates":         {282, 75, 2.5, 0.4, 8, 55},
	"watermelon":    {30, 8, 0.6, 0.2, 0.4, 72},
	"doum_palm":     {120, 30, 1.5, 0.5, 4.2, 45},
	"apples":        {52, 14, 0.3, 0.2, 2.4, 36},
	"strawberries":  {32, 8, 0.7, 0.3, 2, 40},

	// Legumes
	"beans":           {245, 45, 15, 1, 15, 29},
	"groundnuts":      {567, 16, 26, 49, 8.5, 14},
	"peas":            {81, 14, 5, 0.4, 5.7, 22},
	"green_grams":     {347, 63, 24, 1.2, 16.3, 25},
	"cowpeas":         {336, 60, 24, 1.3, 10.6, 33},
	"pigeon_peas":     {343, 63, 22, 1.5, 15, 22},
	"bambara_nuts":    {367, 57, 19, 6.5, 5.6, 30},
	"soya_beans":      {446, 30, 36, 20, 9.3, 25},
	"black_eyed_peas": {336, 60, 24, 1.3, 10.6, 33},

	// Proteins
	"chicken":        {165, 0, 31, 3.6, 0, 0},
	"fish":           {206, 0, 22, 12, 0, 0},
	"eggs":           {155, 1.1, 13, 11, 0, 0},
	"beef":           {250, 0, 26, 17, 0, 0},
	"goat_meat":      {143, 0, 27, 3, 0, 0},
	"camel_meat":     {217, 0, 19, 16, 0, 0},
	"lamb":           {294, 0, 25, 21, 0, 0},
	"milk":           {61, 4.8, 3.2, 3.3, 0, 15},
	"camel_milk":     {46, 4.4, 3, 2.4, 0, 15},
	"coconut_milk":   {230, 6, 2.3, 24, 2.2, 25},
	"dairy_products": {113, 4.7, 3.4, 9, 0, 15},
	"seafood":        {85, 0, 18, 1.2, 0, 0},
	"prawns":         {71, 0.9, 13, 1.4, 0, 0},
	"crabs":          {97, 0, 20, 1.5, 0, 0},
	"tilapia":        {129, 0, 26, 2.6, 0, 0},
}
