package ledger

import "strings"

// Style is the presentation metadata derived from a category code.
// Colors are the style tokens the mobile client renders directly.
type Style struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// categoryStyles maps known category codes to their presentation
// style. Expense and income categories share one namespace; codes not
// listed here fall back to DefaultStyle.
var categoryStyles = map[string]Style{
	// Expense categories
	"food":          {Icon: "🍕", Color: "bg-orange-500"},
	"transport":     {Icon: "🚗", Color: "bg-blue-500"},
	"shopping":      {Icon: "🛍️", Color: "bg-purple-500"},
	"bills":         {Icon: "💡", Color: "bg-yellow-500"},
	"health":        {Icon: "🏥", Color: "bg-red-500"},
	"entertainment": {Icon: "🎮", Color: "bg-pink-500"},
	"education":     {Icon: "📚", Color: "bg-indigo-500"},
	"service":       {Icon: "🛠️", Color: "bg-gray-500"},

	// Income categories
	"salary":     {Icon: "💰", Color: "bg-green-500"},
	"freelance":  {Icon: "💻", Color: "bg-blue-500"},
	"investment": {Icon: "📈", Color: "bg-purple-500"},
	"gift":       {Icon: "🎁", Color: "bg-pink-500"},
}

// DefaultStyle is used for unrecognized category codes.
var DefaultStyle = Style{Icon: "📦", Color: "bg-gray-500"}

// CategoryStyle returns the presentation style for a category code.
// Lookup is case-insensitive; unknown codes get DefaultStyle so a
// record with a retired or misspelled category still renders.
func CategoryStyle(category string) Style {
	if style, ok := categoryStyles[strings.ToLower(category)]; ok {
		return style
	}
	return DefaultStyle
}

// KnownCategories returns the set of recognized category codes.
func KnownCategories() []string {
	codes := make([]string, 0, len(categoryStyles))
	for code := range categoryStyles {
		codes = append(codes, code)
	}
	return codes
}
