// Package i18n is the bilingual (English/Hindi) string table. The
// table is static; the only state is the caller's language choice,
// persisted in a cookie and resolved once per request.
package i18n

type Lang string

const (
	EN Lang = "en"
	HI Lang = "hi"
)

// Parse falls back to English for anything unrecognized.
func Parse(s string) Lang {
	if s == string(HI) {
		return HI
	}
	return EN
}

// T looks up a key for a language, falling back to English and then to
// the key itself so a missing entry never blanks the UI.
func T(l Lang, key string) string {
	tr, ok := table[key]
	if !ok {
		return key
	}
	if s, ok := tr[l]; ok && s != "" {
		return s
	}
	if s, ok := tr[EN]; ok {
		return s
	}
	return key
}

// Strings returns the whole table resolved for one language, for
// handing to templates in a single map.
func Strings(l Lang) map[string]string {
	out := make(map[string]string, len(table))
	for k := range table {
		out[k] = T(l, k)
	}
	return out
}

var table = map[string]map[Lang]string{
	"nav.home":         {EN: "Home", HI: "होम"},
	"nav.products":     {EN: "Explore Products", HI: "उत्पाद देखें"},
	"nav.artisans":     {EN: "Artisans", HI: "कारीगर"},
	"nav.becomeSeller": {EN: "Become a Seller", HI: "विक्रेता बनें"},

	"search.placeholder": {EN: "Search products...", HI: "उत्पाद खोजें..."},

	"categories.title":     {EN: "Shop by Category", HI: "श्रेणी के अनुसार खरीदें"},
	"categories.pottery":   {EN: "Pottery", HI: "मिट्टी के बर्तन"},
	"categories.textiles":  {EN: "Textiles", HI: "वस्त्र"},
	"categories.jewelry":   {EN: "Jewelry", HI: "आभूषण"},
	"categories.woodwork":  {EN: "Woodwork", HI: "लकड़ी का काम"},
	"categories.paintings": {EN: "Paintings", HI: "चित्रकारी"},
	"categories.metalwork": {EN: "Metalwork", HI: "धातु का काम"},

	"section.bestSelling": {EN: "Best Selling Products", HI: "सबसे ज्यादा बिकने वाले उत्पाद"},
	"section.topArtisans": {EN: "Top Artisans", HI: "शीर्ष कारीगर"},
	"section.viewAll":     {EN: "View All", HI: "सभी देखें"},

	"product.addToCart":  {EN: "Add to Cart", HI: "कार्ट में डालें"},
	"product.outOfStock": {EN: "Out of Stock", HI: "स्टॉक में नहीं"},
	"product.reviews":    {EN: "reviews", HI: "समीक्षाएं"},

	"artisan.viewProfile":   {EN: "View Profile", HI: "प्रोफ़ाइल देखें"},
	"artisan.phoneVerified": {EN: "Phone Verified", HI: "फ़ोन सत्यापित"},
	"artisan.notVerified":   {EN: "Not Verified", HI: "सत्यापित नहीं"},
	"artisan.follow":        {EN: "Follow", HI: "फ़ॉलो करें"},
	"artisan.products":      {EN: "Products by", HI: "द्वारा उत्पाद"},

	"filter.category":   {EN: "Category", HI: "श्रेणी"},
	"filter.all":        {EN: "All", HI: "सभी"},
	"filter.priceRange": {EN: "Price Range", HI: "मूल्य सीमा"},
	"filter.sortBy":     {EN: "Sort by", HI: "क्रमबद्ध करें"},
	"filter.newest":     {EN: "Newest", HI: "नवीनतम"},
	"filter.priceLow":   {EN: "Price: Low to High", HI: "मूल्य: कम से अधिक"},
	"filter.priceHigh":  {EN: "Price: High to Low", HI: "मूल्य: अधिक से कम"},
	"filter.rating":     {EN: "Rating", HI: "रेटिंग"},

	"seller.title":        {EN: "Become a Seller", HI: "विक्रेता बनें"},
	"seller.subtitle":     {EN: "Join our community of skilled artisans", HI: "कुशल कारीगरों के हमारे समुदाय में शामिल हों"},
	"seller.step1":        {EN: "Personal Details", HI: "व्यक्तिगत विवरण"},
	"seller.step2":        {EN: "About Your Craft", HI: "आपकी कला के बारे में"},
	"seller.step3":        {EN: "Verification", HI: "सत्यापन"},
	"seller.name":         {EN: "Full Name", HI: "पूरा नाम"},
	"seller.city":         {EN: "City", HI: "शहर"},
	"seller.state":        {EN: "State", HI: "राज्य"},
	"seller.phone":        {EN: "Phone Number", HI: "फ़ोन नंबर"},
	"seller.bio":          {EN: "Tell us about yourself and your craft", HI: "अपने और अपनी कला के बारे में बताएं"},
	"seller.mainCategory": {EN: "Main Category", HI: "मुख्य श्रेणी"},
	"seller.uploadDoc":    {EN: "Upload Verification Document", HI: "सत्यापन दस्तावेज़ अपलोड करें"},
	"seller.next":         {EN: "Next", HI: "आगे"},
	"seller.previous":     {EN: "Previous", HI: "पीछे"},
	"seller.submit":       {EN: "Submit Application", HI: "आवेदन जमा करें"},
	"seller.success":      {EN: "Thank you! We'll review your application.", HI: "धन्यवाद! हम आपके आवेदन की समीक्षा करेंगे।"},

	"cart.title": {EN: "Your Cart", HI: "आपकी कार्ट"},
	"cart.total": {EN: "Total", HI: "कुल"},

	"common.loading":   {EN: "Loading...", HI: "लोड हो रहा है..."},
	"common.error":     {EN: "Something went wrong", HI: "कुछ गलत हुआ"},
	"common.noResults": {EN: "No results found", HI: "कोई परिणाम नहीं मिला"},
}
