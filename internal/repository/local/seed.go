package local

import "github.com/cantikstore/storefront/internal/domain"

// sampleProducts is the starter catalog served when the storefront has never
// synced a product list. IDs carry the sample_ prefix so they are
// distinguishable from both server-assigned and locally created records.
func sampleProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            "sample_1",
			Name:          "Floral Summer Dress",
			Price:         899,
			OriginalPrice: 1499,
			Category:      "Casual",
			Image:         "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=500&q=80",
			Description:   "Beautiful floral print summer dress perfect for casual outings. Made with breathable cotton fabric.",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Bestseller:    true,
			InStock:       true,
			NewArrival:    false,
		},
		{
			ID:            "sample_2",
			Name:          "Black Cocktail Dress",
			Price:         1299,
			OriginalPrice: 2199,
			Category:      "Party Wear",
			Image:         "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=500&q=80",
			Description:   "Elegant black cocktail dress for parties and special occasions. Features a flattering silhouette.",
			Sizes:         []string{"S", "M", "L", "XL"},
			Bestseller:    true,
			InStock:       true,
			NewArrival:    false,
		},
		{
			ID:            "sample_3",
			Name:          "Anarkali Suit Set",
			Price:         1599,
			OriginalPrice: 2999,
			Category:      "Ethnic",
			Image:         "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=500&q=80",
			Description:   "Traditional Anarkali suit with intricate embroidery. Complete set includes kurta, palazzo, and dupatta.",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Bestseller:    true,
			InStock:       true,
			NewArrival:    true,
		},
		{
			ID:            "sample_4",
			Name:          "Denim Shirt Dress",
			Price:         799,
			OriginalPrice: 1299,
			Category:      "Western",
			Image:         "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=500&q=80",
			Description:   "Trendy denim shirt dress that can be dressed up or down. Perfect for a casual chic look.",
			Sizes:         []string{"XS", "S", "M", "L"},
			Bestseller:    false,
			InStock:       true,
			NewArrival:    true,
		},
		{
			ID:            "sample_5",
			Name:          "Pleated Midi Skirt",
			Price:         699,
			OriginalPrice: 1099,
			Category:      "Casual",
			Image:         "https://images.unsplash.com/photo-1583496661160-fb5886a0aebd?w=500&q=80",
			Description:   "Elegant pleated midi skirt in soft fabric. Pairs beautifully with any top.",
			Sizes:         []string{"S", "M", "L", "XL"},
			Bestseller:    false,
			InStock:       true,
			NewArrival:    false,
		},
		{
			ID:            "sample_6",
			Name:          "Sequin Party Gown",
			Price:         1999,
			OriginalPrice: 3499,
			Category:      "Party Wear",
			Image:         "https://images.unsplash.com/photo-1566174053879-31528523f8ae?w=500&q=80",
			Description:   "Stunning sequin gown for special occasions. Make a statement at any party.",
			Sizes:         []string{"S", "M", "L"},
			Bestseller:    true,
			InStock:       true,
			NewArrival:    true,
		},
		{
			ID:            "sample_7",
			Name:          "Cotton Kurti Set",
			Price:         599,
			OriginalPrice: 999,
			Category:      "Ethnic",
			Image:         "https://images.unsplash.com/photo-1594463750939-ebb28c3f7f75?w=500&q=80",
			Description:   "Comfortable cotton kurti with matching pants. Perfect for daily wear.",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Bestseller:    false,
			InStock:       true,
			NewArrival:    false,
		},
		{
			ID:            "sample_8",
			Name:          "Blazer Dress",
			Price:         1499,
			OriginalPrice: 2499,
			Category:      "Formal",
			Image:         "https://images.unsplash.com/photo-1548624313-0396c75e4b1a?w=500&q=80",
			Description:   "Professional blazer dress perfect for business meetings and formal events.",
			Sizes:         []string{"XS", "S", "M", "L"},
			Bestseller:    false,
			InStock:       true,
			NewArrival:    true,
		},
		{
			ID:            "sample_9",
			Name:          "Off-Shoulder Maxi",
			Price:         1099,
			OriginalPrice: 1799,
			Category:      "Casual",
			Image:         "https://images.unsplash.com/photo-1509631179647-0177331693ae?w=500&q=80",
			Description:   "Flowy off-shoulder maxi dress for beach vacations and summer parties.",
			Sizes:         []string{"S", "M", "L", "XL"},
			Bestseller:    true,
			InStock:       true,
			NewArrival:    false,
		},
		{
			ID:            "sample_10",
			Name:          "Velvet Evening Gown",
			Price:         2299,
			OriginalPrice: 3999,
			Category:      "Party Wear",
			Image:         "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=500&q=80",
			Description:   "Luxurious velvet evening gown for weddings and formal dinners.",
			Sizes:         []string{"S", "M", "L"},
			Bestseller:    false,
			InStock:       true,
			NewArrival:    true,
		},
		{
			ID:            "sample_11",
			Name:          "Printed Wrap Dress",
			Price:         849,
			OriginalPrice: 1399,
			Category:      "Western",
			Image:         "https://images.unsplash.com/photo-1496747611176-843222e1e57c?w=500&q=80",
			Description:   "Stylish printed wrap dress with adjustable fit. Great for any occasion.",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Bestseller:    false,
			InStock:       true,
			NewArrival:    false,
		},
		{
			ID:            "sample_12",
			Name:          "Saree with Blouse",
			Price:         1899,
			OriginalPrice: 3299,
			Category:      "Ethnic",
			Image:         "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=500&q=80",
			Description:   "Elegant silk saree with designer blouse. Perfect for festivals and weddings.",
			Sizes:         []string{"Free Size"},
			Bestseller:    true,
			InStock:       true,
			NewArrival:    true,
		},
	}
}

// defaultCategories seeds the category list the first time it is requested.
func defaultCategories() []domain.Category {
	return []domain.Category{
		{ID: "cat_1", Name: "Casual", Image: "https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=300&q=80"},
		{ID: "cat_2", Name: "Party Wear", Image: "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=300&q=80"},
		{ID: "cat_3", Name: "Ethnic", Image: "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=300&q=80"},
		{ID: "cat_4", Name: "Western", Image: "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=300&q=80"},
		{ID: "cat_5", Name: "Formal", Image: "https://images.unsplash.com/photo-1548624313-0396c75e4b1a?w=300&q=80"},
	}
}
