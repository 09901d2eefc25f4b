package models

// Category is one entry in the fixed expense category catalog.
type Category struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Categories is the static category catalog. It is defined once at process
// start and never changes at runtime. Order is significant: index 0 is the
// default selection in the expense form, and pickers iterate in this order.
var Categories = []Category{
	{Name: "Food & Dining", Icon: "🍔", Color: "#FF6B6B"},
	{Name: "Transport", Icon: "🚗", Color: "#4ECDC4"},
	{Name: "Shopping", Icon: "🛍️", Color: "#A78BFA"},
	{Name: "Bills & Utilities", Icon: "💡", Color: "#FBBF24"},
	{Name: "Entertainment", Icon: "🎬", Color: "#F472B6"},
	{Name: "Health", Icon: "💊", Color: "#34D399"},
	{Name: "Education", Icon: "📚", Color: "#60A5FA"},
	{Name: "Other", Icon: "📦", Color: "#94A3B8"},
}

// UnknownCategory is the fallback returned when an expense references a
// category name that is not in the catalog. Readers render it instead of
// failing.
var UnknownCategory = Category{Name: "Unknown", Icon: "📦", Color: "#666666"}

// CategoryAt returns the catalog entry at the given index.
func CategoryAt(index int) (Category, bool) {
	if index < 0 || index >= len(Categories) {
		return Category{}, false
	}
	return Categories[index], true
}

// CategoryByName looks up a catalog entry by its unique name.
func CategoryByName(name string) (Category, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryOrUnknown resolves a category name, falling back to
// UnknownCategory on a miss.
func CategoryOrUnknown(name string) Category {
	if c, ok := CategoryByName(name); ok {
		return c
	}
	return UnknownCategory
}

// ValidCategoryName reports whether name is in the catalog.
func ValidCategoryName(name string) bool {
	_, ok := CategoryByName(name)
	return ok
}
