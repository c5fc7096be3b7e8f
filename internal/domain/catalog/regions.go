package catalog

// Static regional availability tables. Food ids are canonical snake_case
// identifiers shared with the nutrition table.

var regionalFoods = map[Region]RegionFoods{
	RegionCentral: {
		CategoryGrains:     {"maize", "wheat", "barley", "millet", "rice"},
		CategoryVegetables: {"kale", "spinach", "cabbage", "carrots", "onions", "tomatoes", "sweet_potatoes", "irish_potatoes", "potatoes", "beans_leaves"},
		CategoryFruits:     {"bananas", "oranges", "mangoes", "avocados", "passion_fruit", "tree_tomatoes", "macadamia"},
		CategoryLegumes:    {"beans", "peas", "groundnuts", "green_grams"},
		CategoryProteins:   {"chicken", "beef", "goat_meat", "fish", "eggs", "milk", "dairy_products"},
	},
	RegionCoastal: {
		CategoryGrains:     {"rice", "maize", "cassava", "millet", "sorghum"},
		CategoryVegetables: {"coconut", "okra", "eggplant", "amaranth", "sweet_potatoes", "cassava_leaves", "pumpkin_leaves", "spinach"},
		CategoryFruits:     {"coconut", "mangoes", "jackfruit", "baobab_fruit", "oranges", "bananas", "cashew_fruit", "tamarind"},
		CategoryLegumes:    {"cowpeas", "pigeon_peas", "green_grams", "bambara_nuts"},
		CategoryProteins:   {"fish", "seafood", "prawns", "crabs", "chicken", "goat_meat", "coconut_milk"},
	},
	RegionWestern: {
		CategoryGrains:     {"maize", "millet", "sorghum", "finger_millet", "rice"},
		CategoryVegetables: {"kale", "spinach", "pumpkin", "sweet_potatoes", "irish_potatoes", "onions", "tomatoes", "cabbage"},
		CategoryFruits:     {"bananas", "sugarcane", "pineapples", "passion_fruit", "oranges", "mangoes", "guavas"},
		CategoryLegumes:    {"beans", "groundnuts", "soya_beans", "cowpeas"},
		CategoryProteins:   {"fish", "chicken", "beef", "milk", "eggs", "tilapia"},
	},
	RegionNorthern: {
		CategoryGrains:     {"sorghum", "millet", "maize", "pearl_millet"},
		CategoryVegetables: {"kale", "onions", "tomatoes", "sweet_potatoes", "pumpkin", "amaranth"},
		CategoryFruits:     {"dates", "mangoes", "watermelon", "doum_palm"},
		CategoryLegumes:    {"cowpeas", "pigeon_peas", "black_eyed_peas"},
		CategoryProteins:   {"goat_meat", "camel_meat", "beef", "milk", "camel_milk"},
	},
	RegionEastern: {
		CategoryGrains:     {"maize", "millet", "sorghum", "finger_millet"},
		CategoryVegetables: {"kale", "spinach", "pumpkin", "sweet_potatoes", "cassava", "onions", "tomatoes"},
		CategoryFruits:     {"mangoes", "oranges", "bananas", "watermelon", "baobab_fruit", "passion_fruit"},
		CategoryLegumes:    {"cowpeas", "green_grams", "pigeon_peas", "beans"},
		CategoryProteins:   {"goat_meat", "beef", "chicken", "milk", "eggs"},
	},
	RegionNyanza: {
		CategoryGrains:     {"maize", "millet", "sorghum", "finger_millet", "rice"},
		CategoryVegetables: {"kale", "spinach", "sweet_potatoes", "pumpkin", "amaranth", "spider_plant", "nightshade"},
		CategoryFruits:     {"bananas", "oranges", "mangoes", "sugarcane", "passion_fruit", "guavas"},
		CategoryLegumes:    {"beans", "groundnuts", "soya_beans", "cowpeas", "green_grams"},
		CategoryProteins:   {"fish", "tilapia", "chicken", "beef", "milk", "eggs"},
	},
	RegionRiftValley: {
		CategoryGrains:     {"maize", "wheat", "barley", "millet", "oats"},
		CategoryVegetables: {"kale", "cabbage", "carrots", "onions", "irish_potatoes", "sweet_potatoes", "spinach"},
		CategoryFruits:     {"bananas", "oranges", "mangoes", "apples", "passion_fruit", "strawberries"},
		CategoryLegumes:    {"beans", "peas", "groundnuts", "green_grams"},
		CategoryProteins:   {"beef", "lamb", "chicken", "milk", "eggs", "dairy_products"},
	},
}

// locationAliases maps common Kenyan locality names (lower-cased) to regions
var locationAliases = map[string]Region{
	// Central Kenya
	"nairobi":       RegionCentral,
	"kiambu":        RegionCentral,
	"murang'a":      RegionCentral,
	"nyeri":         RegionCentral,
	"kirinyaga":     RegionCentral,
	"nyandarua":     RegionCentral,
	"meru":          RegionCentral,
	"tharaka-nithi": RegionCentral,

	// Coastal Region
	"mombasa":      RegionCoastal,
	"kilifi":       RegionCoastal,
	"kwale":        RegionCoastal,
	"lamu":         RegionCoastal,
	"tana river":   RegionCoastal,
	"taita-taveta": RegionCoastal,

	// Western Kenya
	"kisumu":      RegionWestern,
	"kakamega":    RegionWestern,
	"bungoma":     RegionWestern,
	"vihiga":      RegionWestern,
	"siaya":       RegionWestern,
	"busia":       RegionWestern,
	"trans-nzoia": RegionWestern,

	// Eastern Kenya
	"machakos": RegionEastern,
	"kitui":    RegionEastern,
	"makueni":  RegionEastern,
	"embu":     RegionEastern,
	"isiolo":   RegionEastern,
	"marsabit": RegionEastern,
	"moyale":   RegionEastern,

	// Northern Kenya
	"garissa":    RegionNorthern,
	"mandera":    RegionNorthern,
	"wajir":      RegionNorthern,
	"turkana":    RegionNorthern,
	"west pokot": RegionNorthern,
	"samburu":    RegionNorthern,

	// Nyanza Region
	"kisii":    RegionNyanza,
	"nyamira":  RegionNyanza,
	"homa bay": RegionNyanza,
	"migori":   RegionNyanza,
	"kericho":  RegionNyanza,
	"bomet":    RegionNyanza,

	// Rift Valley
	"nakuru":           RegionRiftValley,
	"eldoret":          RegionRiftValley,
	"narok":            RegionRiftValley,
	"kajiado":          RegionRiftValley,
	"laikipia":         RegionRiftValley,
	"nandi":            RegionRiftValley,
	"uasin gishu":      RegionRiftValley,
	"elgeyo-marakwet":  RegionRiftValley,
	"baringo":          RegionRiftValley,
}
