package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"card-wrapped/internal/domain"
)

// fallbackLabel is assigned when no keyword rule matches.
var fallbackLabel = domain.OtherCategory + "-" + domain.OtherCategory

// categoryRule assigns label to any description matching one of its keywords.
// Latin keywords match whole words only; Hebrew keywords match as substrings
// because RE2 word boundaries are ASCII only.
type categoryRule struct {
	label   string
	pattern *regexp.Regexp
}

func newCategoryRule(label string, keywords ...string) categoryRule {
	alternatives := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if isASCII(k) {
			alternatives = append(alternatives, `\b`+regexp.QuoteMeta(strings.TrimSpace(k))+`\b`)
		} else {
			alternatives = append(alternatives, regexp.QuoteMeta(k))
		}
	}
	return categoryRule{
		label:   label,
		pattern: regexp.MustCompile(strings.Join(alternatives, "|")),
	}
}

func (r categoryRule) matches(text string) bool {
	return r.pattern.MatchString(text)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// categoryRules is an ordered decision table: the first matching rule wins.
var categoryRules = []categoryRule{
	newCategoryRule("Restaurants-Dining & Delivery",
		"uber eats", "wolt", "10bis", "תן ביס", "mcdonalds", "mcdonald's", "מקדונלד", "burger", "בורגר",
		"pizza", "פיצה", "restaurant", "restaurants", "מסעדה", "cafe", "קפה", "aroma", "ארומה", "sushi",
		"סושי", "japanika",
	),
	newCategoryRule("Groceries-Supermarket",
		"shufersal", "שופרסל", "rami levy", "רמי לוי", "victory", "ויקטורי", "yochananof", "יוחננוף",
		"tiv taam", "טיב טעם", "osher ad", "אושר עד", "supermarket", "סופרמרקט", "מגה בעיר",
	),
	newCategoryRule("Transportation-Fuel & Transit",
		"paz", "פז ", "delek", "דלק", "sonol", "סונול", "dor alon", "דור אלון", "gett", "uber",
		"rav-kav", "רב-קו", "רב קו", "pango", "פנגו", "cellopark", "סלופארק", "parking", "חניה", "רכבת",
	),
	newCategoryRule("Entertainment-Streaming",
		"netflix", "נטפליקס", "spotify", "ספוטיפיי", "disney", "disneyplus", "apple music", "youtube",
		"cinema", "סינמה", "yes planet", "יס פלאנט", "קולנוע", "steam", "steampowered", "playstation",
	),
	newCategoryRule("Shopping-Retail",
		"amazon", "אמזון", "aliexpress", "עליאקספרס", "shein", "zara", "זארה", "h&m", "castro",
		"קסטרו", "fox", "פוקס", "ikea", "איקאה", "super-pharm", "סופר-פארם", "סופר פארם",
	),
	newCategoryRule("Technology-Software",
		"google", "apple.com", "microsoft", "openai", "chatgpt", "github", "adobe", "dropbox",
		"ksp", "באג", "אייבורי", "ivory",
	),
	newCategoryRule("Travel-Hotels & Flights",
		"booking.com", "airbnb", "hotel", "hotels", "מלון", "el al", "אל על", "israir", "ישראייר", "arkia",
		"ארקיע", "expedia", "ryanair", "wizz", "wizzair",
	),
	newCategoryRule("Utilities-Bills",
		"electric", "electricity", "חברת החשמל", "חשמל", "bezeq", "בזק", "partner", "פרטנר", "cellcom",
		"סלקום", "hot mobile", "הוט מובייל", "תאגיד מים", "ארנונה", "עירייה", "פזגז", "סופרגז",
	),
}

// InferCategory synthesizes a "Category-Subcategory" label from merchant text.
func InferCategory(description string) string {
	text := strings.ToLower(description)
	for _, rule := range categoryRules {
		if rule.matches(text) {
			return rule.label
		}
	}
	return fallbackLabel
}

// SplitCategory splits a label on its first "-". A blank label or blank top
// level degrades to OtherCategory; the sub-category may be empty.
func SplitCategory(label string) (top, sub string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.OtherCategory, ""
	}
	top, sub, _ = strings.Cut(label, "-")
	if strings.TrimSpace(top) == "" {
		top = domain.OtherCategory
	}
	return top, sub
}
