package catalog

import "time"

// SeedItems returns the built-in dev catalog used when no database is
// configured. Ids are stable so exclusion sets survive restarts in dev.
func SeedItems() []Item {
	now := time.Now().UTC()
	mk := func(id, name, brand, category, subcategory string, price float64, gender string, colors, sizes, styleTags, occasionTags []string, gift, featured bool) Item {
		return Item{
			ID:           id,
			Name:         name,
			Brand:        brand,
			Category:     category,
			Subcategory:  subcategory,
			Price:        price,
			StockQty:     10,
			InStock:      true,
			Gender:       gender,
			Colors:       colors,
			Sizes:        sizes,
			StyleTags:    styleTags,
			OccasionTags: occasionTags,
			GiftSuitable: gift,
			Featured:     featured,
			ImageURL:     "https://cdn.lookbook.example/items/" + id + ".jpg",
			ProductURL:   "https://shop.lookbook.example/p/" + id,
			CreatedAt:    now,
		}
	}

	return []Item{
		mk("ap-oxford-shirt", "Classic Oxford Shirt", "Harbour & Co", CategoryApparel, "shirt", 1400, "male",
			[]string{"white", "blue"}, []string{"S", "M", "L", "XL"}, []string{"formal", "classic"}, []string{"office", "business"}, true, false),
		mk("ap-linen-shirt", "Relaxed Linen Shirt", "Casa Lino", CategoryApparel, "shirt", 1600, "unisex",
			[]string{"beige", "white"}, []string{"S", "M", "L"}, []string{"casual", "relaxed"}, []string{"travel", "daily"}, true, true),
		mk("ap-graphic-tee", "Oversized Graphic Tee", "Streetline", CategoryApparel, "t-shirt", 700, "unisex",
			[]string{"black"}, []string{"M", "L", "XL"}, []string{"street", "oversized", "graphic"}, []string{"daily"}, false, false),
		mk("ap-plain-tee", "Essential Crew Tee", "Basics Dept", CategoryApparel, "t-shirt", 500, "unisex",
			[]string{"white", "grey", "navy"}, []string{"XS", "S", "M", "L", "XL"}, []string{"minimal", "basic", "essential"}, []string{"daily", "casual"}, false, false),
		mk("ap-silk-blouse", "Silk Evening Blouse", "Verano", CategoryApparel, "blouse", 2200, "female",
			[]string{"blush", "cream"}, []string{"S", "M", "L"}, []string{"classic", "tailored"}, []string{"party", "dinner"}, true, true),
		mk("ap-festive-kurta", "Embroidered Festive Kurta", "Tana Bana", CategoryApparel, "kurta", 1900, "male",
			[]string{"maroon", "gold"}, []string{"M", "L", "XL"}, []string{"ethnic", "festive"}, []string{"wedding", "festive"}, true, false),
		mk("ap-slim-chinos", "Slim Fit Chinos", "Harbour & Co", CategoryApparel, "chinos", 1500, "male",
			[]string{"khaki", "navy"}, []string{"30", "32", "34", "36"}, []string{"casual", "classic"}, []string{"office", "daily"}, false, false),
		mk("ap-wide-trousers", "Wide Leg Trousers", "Verano", CategoryApparel, "trousers", 1800, "female",
			[]string{"black", "cream"}, []string{"26", "28", "30", "32"}, []string{"tailored", "minimal"}, []string{"office", "work"}, false, false),
		mk("ap-dark-jeans", "Dark Wash Jeans", "Denim Union", CategoryApparel, "jeans", 1700, "unisex",
			[]string{"indigo"}, []string{"28", "30", "32", "34"}, []string{"casual", "everyday"}, []string{"daily", "date"}, false, false),
		mk("ap-jogger-pants", "Performance Joggers", "Vault Active", CategoryApparel, "joggers", 1200, "unisex",
			[]string{"grey", "black"}, []string{"S", "M", "L", "XL"}, []string{"sport", "athleisure", "active"}, []string{"travel", "gym"}, false, false),
		mk("ap-bomber-jacket", "Washed Bomber Jacket", "Streetline", CategoryApparel, "jacket", 2800, "unisex",
			[]string{"olive", "black"}, []string{"M", "L", "XL"}, []string{"street", "urban"}, []string{"party", "night"}, true, true),
		mk("ap-wool-blazer", "Structured Wool Blazer", "Atelier Nord", CategoryApparel, "blazer", 4200, "female",
			[]string{"charcoal"}, []string{"S", "M", "L"}, []string{"formal", "tailored", "business"}, []string{"office", "work"}, true, false),
		mk("ap-knit-sweater", "Chunky Knit Sweater", "Maison Ito", CategoryApparel, "sweater", 2400, "unisex",
			[]string{"cream", "rust"}, []string{"S", "M", "L"}, []string{"casual", "comfort"}, []string{"travel", "date"}, true, false),
		mk("ap-slip-dress", "Satin Slip Dress", "Verano", CategoryApparel, "dress", 2600, "female",
			[]string{"emerald", "black"}, []string{"XS", "S", "M", "L"}, []string{"glam"}, []string{"party", "night", "date"}, true, true),

		mk("ac-leather-belt", "Full Grain Leather Belt", "Harbour & Co", CategoryAccessory, "belt", 800, "male",
			[]string{"brown", "black"}, []string{"32", "34", "36"}, []string{"classic"}, []string{"office", "daily"}, true, false),
		mk("ac-canvas-tote", "Canvas Tote Bag", "Basics Dept", CategoryAccessory, "bag", 600, "unisex",
			[]string{"beige"}, nil, []string{"minimal", "casual"}, []string{"daily", "travel"}, false, false),
		mk("ac-silver-watch", "Minimal Silver Watch", "Maison Ito", CategoryAccessory, "watch", 3200, "unisex",
			[]string{"silver"}, nil, []string{"minimal", "classic"}, []string{"office", "date"}, true, true),
		mk("ac-silk-scarf", "Printed Silk Scarf", "Verano", CategoryAccessory, "scarf", 900, "female",
			[]string{"pastel", "lavender"}, nil, []string{"classic"}, []string{"wedding", "party"}, true, false),
		mk("ac-bucket-hat", "Corduroy Bucket Hat", "Streetline", CategoryAccessory, "hat", 550, "unisex",
			[]string{"mustard"}, nil, []string{"street", "urban"}, []string{"daily", "travel"}, false, false),
		mk("ac-gym-duffel", "Lightweight Gym Duffel", "Vault Active", CategoryAccessory, "bag", 1100, "unisex",
			[]string{"black"}, nil, []string{"sport", "active"}, []string{"gym", "travel"}, false, false),

		mk("fw-white-sneakers", "Court White Sneakers", "Streetline", CategoryFootwear, "sneakers", 2100, "unisex",
			[]string{"white"}, []string{"7", "8", "9", "10", "11"}, []string{"street", "casual", "sneaker"}, []string{"daily", "date"}, true, true),
		mk("fw-derby-shoes", "Leather Derby Shoes", "Harbour & Co", CategoryFootwear, "derby", 3400, "male",
			[]string{"brown"}, []string{"8", "9", "10", "11"}, []string{"formal", "classic"}, []string{"office", "wedding"}, true, false),
		mk("fw-block-heels", "Suede Block Heels", "Verano", CategoryFootwear, "heels", 2700, "female",
			[]string{"blush", "black"}, []string{"5", "6", "7", "8"}, []string{"classic", "glam"}, []string{"party", "wedding"}, true, false),
		mk("fw-trail-runners", "Trail Running Shoes", "Vault Active", CategoryFootwear, "running shoes", 2900, "unisex",
			[]string{"grey", "orange"}, []string{"7", "8", "9", "10"}, []string{"sport", "performance"}, []string{"gym", "travel"}, false, false),
		mk("fw-leather-loafers", "Penny Leather Loafers", "Atelier Nord", CategoryFootwear, "loafers", 3800, "unisex",
			[]string{"tan"}, []string{"6", "7", "8", "9", "10"}, []string{"minimal", "classic"}, []string{"office", "date"}, true, false),
	}
}
