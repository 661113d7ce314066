package domain

// Categories is the fixed craft category set. "All" is a filter
// sentinel, not a real category, and never appears on a product row.
var Categories = []string{
	"Textiles",
	"Pottery",
	"Jewelry",
	"Woodwork",
	"Paintings",
	"Home Decor",
	"Metalwork",
	"Leather",
	"Other",
}

func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
