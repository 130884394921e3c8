package domain

// Transaction category codes. The model was trained on this exact encoding.
const (
	CategoryMin = 1
	CategoryMax = 10
)

var categoryNames = map[int]string{
	1:  "Grocery",
	2:  "Food & Dining",
	3:  "Shopping",
	4:  "Travel",
	5:  "Bills & Utilities",
	6:  "Entertainment",
	7:  "Healthcare",
	8:  "Education",
	9:  "Transfer",
	10: "Other",
}

// ValidCategory reports whether c is a known category code.
func ValidCategory(c int) bool {
	return c >= CategoryMin && c <= CategoryMax
}

// CategoryName returns the display name for a category code, or "Unknown".
func CategoryName(c int) string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}
