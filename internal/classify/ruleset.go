package classify

import "github.com/RajaFawad1/aveenixx/internal/model"

// Signal weights and bounds used by the engine.
const (
	// platformMappingWeight is added per resolved platform category. Direct
	// platform mappings are the strongest, least ambiguous signal.
	platformMappingWeight = 40.0

	// maxConfidence caps any reported confidence.
	maxConfidence = 100.0

	// seedRulePriority is the priority assigned to seeded keyword rules.
	seedRulePriority = 80

	// seedKeywordsPerPlatform limits how many keywords per rule become
	// platform mappings during seeding.
	seedKeywordsPerPlatform = 3
)

// RuleSet is the static configuration driving the keyword, brand, and price
// signals. It is injected at construction time so tests can substitute
// minimal tables.
type RuleSet struct {
	MappingRules  []model.MappingRule
	BrandRules    []model.BrandRule
	PriceBrackets []model.PriceBracket
}

var defaultPlatforms = []string{"amazon", "aliexpress", "woocommerce"}

// DefaultRuleSet returns the hybrid mapping tables derived from the category
// structures of the major e-commerce platforms.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		MappingRules: []model.MappingRule{
			// Electronics & Technology
			{
				Keywords:     []string{"smartphone", "mobile phone", "cell phone", "iphone", "android", "galaxy"},
				CategoryName: "Smartphones",
				Confidence:   95,
				Platforms:    defaultPlatforms,
			},
			{
				Keywords:     []string{"laptop", "notebook", "macbook", "chromebook", "gaming laptop"},
				CategoryName: "Laptops & Computers",
				Confidence:   90,
				Platforms:    defaultPlatforms,
			},
			{
				Keywords:     []string{"headphone", "earphone", "earbud", "airpod", "headset", "audio"},
				CategoryName: "Headphones & Audio",
				Confidence:   88,
				Platforms:    defaultPlatforms,
			},
			{
				Keywords:     []string{"tablet", "ipad", "surface", "kindle", "e-reader"},
				CategoryName: "Electronics & Technology",
				Confidence:   85,
				Platforms:    defaultPlatforms,
			},

			// Fashion & Apparel
			{
				Keywords:     []string{"dress", "shirt", "blouse", "top", "women clothing", "ladies wear"},
				CategoryName: "Fashion & Apparel",
				Confidence:   90,
				Platforms:    defaultPlatforms,
			},
			{
				Keywords:     []string{"men shirt", "polo", "t-shirt", "hoodie", "men clothing", "mens wear"},
				CategoryName: "Fashion & Apparel",
				Confidence:   90,
				Platforms:    defaultPlatforms,
			},
			{
				Keywords:     []string{"shoes", "sneaker", "boot", "sandal", "heel", "footwear"},
				CategoryName: "Fashion & Apparel",
				Confidence:   92,
				Platforms:    defaultPlatforms,
			},

			// Home & Garden
			{
				Keywords:     []string{"kitchen", "cookware", "utensil", "appliance", "home decor"},
				CategoryName: "Home & Garden",
				Confidence:   85,
				Platforms:    defaultPlatforms,
			},
			{
				Keywords:     []string{"furniture", "chair", "table", "sofa", "bed", "desk"},
				CategoryName: "Home & Garden",
				Confidence:   88,
				Platforms:    defaultPlatforms,
			},

			// Health & Beauty
			{
				Keywords:     []string{"skincare", "makeup", "cosmetic", "beauty", "facial", "serum"},
				CategoryName: "Health & Beauty",
				Confidence:   90,
				Platforms:    defaultPlatforms,
			},
			{
				Keywords:     []string{"supplement", "vitamin", "health", "fitness", "protein", "wellness"},
				CategoryName: "Health & Beauty",
				Confidence:   87,
				Platforms:    defaultPlatforms,
			},

			// Sports & Outdoors
			{
				Keywords:     []string{"sport", "fitness", "gym", "exercise", "outdoor", "camping"},
				CategoryName: "Sports & Outdoors",
				Confidence:   85,
				Platforms:    defaultPlatforms,
			},

			// Automotive
			{
				Keywords:     []string{"car", "automotive", "vehicle", "motor", "auto part", "accessory"},
				CategoryName: "Automotive",
				Confidence:   88,
				Platforms:    defaultPlatforms,
			},

			// Books & Media
			{
				Keywords:     []string{"book", "novel", "textbook", "ebook", "magazine", "reading"},
				CategoryName: "Books & Media",
				Confidence:   92,
				Platforms:    defaultPlatforms,
			},

			// Toys & Games
			{
				Keywords:     []string{"toy", "game", "puzzle", "doll", "action figure", "children", "kids"},
				CategoryName: "Toys & Games",
				Confidence:   90,
				Platforms:    defaultPlatforms,
			},

			// Pet Supplies
			{
				Keywords:     []string{"pet", "dog", "cat", "animal", "pet food", "pet toy"},
				CategoryName: "Pet Supplies",
				Confidence:   93,
				Platforms:    defaultPlatforms,
			},
		},
		BrandRules: []model.BrandRule{
			// Electronics brands
			{Brands: []string{"apple", "samsung", "google", "xiaomi", "huawei"}, CategoryName: "Smartphones", Confidence: 25},
			{Brands: []string{"dell", "hp", "lenovo", "asus", "acer"}, CategoryName: "Laptops & Computers", Confidence: 25},
			{Brands: []string{"sony", "bose", "beats", "sennheiser", "audio-technica"}, CategoryName: "Headphones & Audio", Confidence: 30},

			// Fashion brands
			{Brands: []string{"nike", "adidas", "puma", "under armour"}, CategoryName: "Fashion & Apparel", Confidence: 25},
			{Brands: []string{"zara", "h&m", "uniqlo", "gap"}, CategoryName: "Fashion & Apparel", Confidence: 20},

			// Beauty brands
			{Brands: []string{"loreal", "maybelline", "revlon", "clinique"}, CategoryName: "Health & Beauty", Confidence: 30},
		},
		PriceBrackets: []model.PriceBracket{
			{MinPrice: 500, CategoryName: "Electronics & Technology", Confidence: 15},
			{MinPrice: 100, CategoryName: "Fashion & Apparel", Confidence: 10},
			{MinPrice: 20, CategoryName: "Home & Garden", Confidence: 8},
			{MinPrice: 0, CategoryName: "Health & Beauty", Confidence: 5},
		},
	}
}
