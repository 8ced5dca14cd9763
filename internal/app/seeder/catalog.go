package seeder

import "github.com/saudaghar/marketplace-backend/internal/domain"

// Cities are the Pakistani cities demo listings are spread across.
var Cities = []string{
	"Karachi", "Lahore", "Islamabad", "Rawalpindi", "Faisalabad", "Multan",
	"Hyderabad", "Gujranwala", "Peshawar", "Quetta", "Sialkot", "Bahawalpur",
	"Sargodha", "Sukkur", "Larkana", "Sheikhupura", "Rahim Yar Khan", "Jhang",
	"Dera Ghazi Khan", "Gujrat", "Kasur", "Mardan", "Mingora", "Nawabshah",
	"Chiniot", "Kotri", "Khanpur", "Hafizabad", "Kohat", "Jacobabad",
	"Shikarpur", "Muzaffargarh", "Khanewal", "Gojra", "Bahawalnagar",
	"Abbottabad", "Muridke", "Pakpattan", "Chakwal", "Other",
}

var materialNames = map[domain.Category][]string{
	domain.CategoryAgriculturalWaste: {
		"Rice Husk", "Wheat Straw", "Sugarcane Bagasse", "Cotton Stalks", "Corn Cobs", "Sunflower Husk",
		"Mustard Stalks", "Potato Peels", "Vegetable Waste", "Fruit Peels", "Animal Manure", "Compost Material",
	},
	domain.CategoryTextileWaste: {
		"Cotton Fabric Scraps", "Denim Waste", "Yarn Waste", "Thread Remnants",
		"Fabric Cuttings", "Old Garments", "Textile Dust", "Fiber Waste",
	},
	domain.CategoryPlasticWaste: {
		"PET Bottles", "HDPE Containers", "Plastic Bags", "Plastic Film", "PP Wrapping", "PVC Pipes Scraps", "Plastic Granules",
	},
	domain.CategoryMetalScrap: {
		"Steel Scraps", "Aluminum Cans", "Copper Wire", "Brass Scraps", "Iron Pieces", "Stainless Steel", "Metal Shavings",
	},
	domain.CategoryPaperWaste: {
		"Cardboard Boxes", "Newspaper", "Office Paper", "Magazines", "Paper Bags", "Packaging Paper",
	},
	domain.CategoryFoodWaste: {
		"Expired Food Products", "Food Processing Waste", "Grain Spoilage", "Bakery Waste", "Restaurant Waste",
	},
	domain.CategoryConstructionMaterials: {
		"Cement Bags (Partial)", "Sand Remnants", "Gravel Leftover", "Bricks (Broken)", "Steel Rods (Cut)", "Tiles (Remnant)",
	},
	domain.CategoryElectronicWaste: {
		"Old Circuit Boards", "Electronic Components", "Battery Cells", "Cable Waste", "Electronic Scraps",
	},
	domain.CategoryLeatherWaste:   {"Leather Scraps", "Leather Cuttings", "Leather Dust"},
	domain.CategoryChemicalWaste:  {"Industrial Chemicals", "Solvent Remnants", "Chemical Containers"},
	domain.CategoryOrganicCompost: {"Mature Compost", "Vermicompost", "Organic Fertilizer"},
	domain.CategoryOther:          {"Mixed Waste", "Industrial Byproducts", "Processing Waste"},
}

var conditions = []domain.Condition{
	domain.ConditionNew, domain.ConditionUsed, domain.ConditionLeftover, domain.ConditionWaste, domain.ConditionRecyclable,
}

var listingTypes = []domain.ListingType{domain.ListingTypeBuy, domain.ListingTypeSell, domain.ListingTypeExchange}

var quantities = []string{"50 kg", "100 kg", "200 kg", "500 kg", "1 ton", "2 tons", "5 tons", "10 tons"}

var prices = []float64{5000, 10000, 15000, 20000, 25000, 30000, 50000, 75000, 100000, 150000, 200000}

var businessTypes = []string{"Manufacturer", "Recycler", "Wholesaler", "Retailer", "Farmer", "Other"}

// Templates take the material name, the condition and the listing type.
var descriptionTemplates = []func(material, condition, listingType string) string{
	func(m, c, t string) string {
		return "High quality " + lower(m) + " in " + lower(c) + " condition. Available for " + lower(t) + "."
	},
	func(m, c, _ string) string {
		return "Large quantity of " + lower(m) + " available. " + lower(c) + " condition. Suitable for recycling/repurposing."
	},
	func(m, c, _ string) string {
		return m + " - " + c + " condition. Bulk quantity available. Contact for details."
	},
	func(m, _, _ string) string {
		return "Premium " + lower(m) + " waste material. Perfect for industrial use or recycling."
	},
	func(m, c, _ string) string {
		return m + " leftover from production. " + c + " quality. Ready for pickup."
	},
}

var locationTemplates = []func(city string) string{
	func(c string) string { return "Industrial Area, " + c },
	func(c string) string { return "Main Market, " + c },
	func(c string) string { return "Warehouse District, " + c },
	func(c string) string { return c + " Industrial Estate" },
	func(c string) string { return "Free Zone, " + c },
}
