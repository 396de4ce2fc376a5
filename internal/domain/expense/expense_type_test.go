package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestClassify_KeywordFixtures(t *testing.T) {
	cases := []struct {
		name        string
		storedType  *string
		category    string
		description *string
		want        string
	}{
		{"flight category", nil, "Flight", nil, TypeTravel},
		{"uber in description", nil, "Misc", strPtr("uber to client site"), TypeTravel},
		{"hotel conference stay", nil, "Hotel", strPtr("conference stay"), TypeTravel},
		{"fuel refill", nil, "Fuel", strPtr("monthly refill"), TypeTravel},
		{"office supplies default to general", nil, "Office Supplies", strPtr("stationery"), TypeGeneral},
		{"plain lunch is general without stored type", nil, "Lunch", strPtr("team lunch"), TypeGeneral},
		{"case insensitive", nil, "TAXI", nil, TypeTravel},
		{"keyword inside word still matches", nil, "Bustling market snacks", nil, TypeTravel},
		{"empty everything", nil, "", nil, TypeGeneral},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(c.storedType, c.category, c.description)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClassify_StoredTypeWins(t *testing.T) {
	// An explicit stored type overrides any keyword re-derivation.
	assert.Equal(t, TypeFood, Classify(strPtr(TypeFood), "Hotel", strPtr("uber ride to airport")))
	assert.Equal(t, TypeOffice, Classify(strPtr(TypeOffice), "Office Supplies", strPtr("stationery")))
	assert.Equal(t, TypeGeneral, Classify(strPtr(TypeGeneral), "Flight", nil))
}

func TestClassify_UnknownStoredTypeFallsBack(t *testing.T) {
	// A stored value outside the enumeration is ignored, not trusted.
	assert.Equal(t, TypeTravel, Classify(strPtr("Misc"), "taxi fare", nil))
	assert.Equal(t, TypeGeneral, Classify(strPtr(""), "snacks", nil))
}

func TestClassify_FirstMatchWinsInListOrder(t *testing.T) {
	// "hotel" and "office" both appear; hotel is in the travel list so the
	// expense classifies Travel.
	got := Classify(nil, "Hotel", strPtr("office decoration purchase"))
	assert.Equal(t, TypeTravel, got)
}

func TestClassifyExpense(t *testing.T) {
	e := Expense{Category: "Flight", Description: strPtr("client visit")}
	assert.Equal(t, TypeTravel, ClassifyExpense(e))

	food := TypeFood
	e.ExpenseType = &food
	assert.Equal(t, TypeFood, ClassifyExpense(e))
}
