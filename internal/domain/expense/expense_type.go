package expense

import (
	"strings"
)

// Expense types partition expense reports. They are a coarse bucket distinct
// from the free-text category field; the two are allowed to disagree.
const (
	TypeGeneral = "General"
	TypeFood    = "Food"
	TypeOffice  = "Office"
	TypeTravel  = "Travel"
)

// travelKeywords is the single source of truth for travel detection.
// Matching is first-hit in list order.
var travelKeywords = []string{
	"taxi", "fuel", "toll", "parking", "flight", "hotel", "travel",
	"transport", "uber", "ola", "metro", "bus", "cab", "ride",
}

// ValidTypes lists every expense type the classifier can produce.
var ValidTypes = []string{TypeGeneral, TypeFood, TypeOffice, TypeTravel}

// Classify maps an expense to its type. A stored expense_type always wins
// over re-derivation; otherwise the category and description are scanned
// case-insensitively for travel keywords. Everything else is General.
// The function is total: it never fails, ambiguous input resolves to the
// first matching keyword.
func Classify(storedType *string, category string, description *string) string {
	if storedType != nil {
		switch *storedType {
		case TypeGeneral, TypeFood, TypeOffice, TypeTravel:
			return *storedType
		}
	}

	haystack := strings.ToLower(category)
	if description != nil {
		haystack += " " + strings.ToLower(*description)
	}

	for _, keyword := range travelKeywords {
		if strings.Contains(haystack, keyword) {
			return TypeTravel
		}
	}

	return TypeGeneral
}

// ClassifyExpense classifies a loaded expense row.
func ClassifyExpense(e Expense) string {
	return Classify(e.ExpenseType, e.Category, e.Description)
}
