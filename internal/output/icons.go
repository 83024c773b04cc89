// Package output renders report snapshots as styled console text, standalone
// HTML documents, or JSON.
package output

// categoryIcons maps metric categories to display icons. Presentation data
// only; unrecognized categories fall back to the generic icon.
var categoryIcons = map[string]string{
	"Sleep":          "😴",
	"Cardiovascular": "❤️",
	"Activity":       "🏃",
}

// genericIcon is shown for categories without a dedicated icon.
const genericIcon = "📊"

// CategoryIcon returns the display icon for a category.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return genericIcon
}

// Date display formats shared by the console and HTML renderers.
const (
	reportDateLayout = "02/01/2006"
	periodDateLayout = "Jan 02, 2006"
)
