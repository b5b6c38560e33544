package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const planJSON = `{
	"status": "success",
	"plan": {
		"16.10.2026": {
			"Zentralmensa": {"Suppe": [{"id": 1, "name": {"german": "Tomatensuppe", "english": "tomato soup"}, "prices": {"discounted": 1.2, "normal": 2.4}, "allergens": "Sl"}]},
			"Bambus": {},
			"Rote Bete": null,
			"Georg Forster": {"Grill": []}
		},
		"17.10.2026": null
	}
}`

func TestDateData_KeepsSourceOrder(t *testing.T) {
	var response PlanResponse
	require.NoError(t, json.Unmarshal([]byte(planJSON), &response))

	require.True(t, response.Valid())
	assert.Equal(t, "success", response.Status)

	day := response.Day("16.10.2026")
	assert.Equal(t, []string{"Zentralmensa", "Bambus", "Rote Bete", "Georg Forster"}, day.Names())

	zentral, ok := day.Canteen("Zentralmensa")
	require.True(t, ok)
	require.Len(t, zentral["Suppe"], 1)
	assert.Equal(t, "Tomatensuppe", zentral["Suppe"][0].Name.Get(LanguageGerman))
	assert.Equal(t, "tomato soup", zentral["Suppe"][0].Name.Get(LanguageEnglish))
	assert.Equal(t, 1.2, zentral["Suppe"][0].Prices.Get(true))
	assert.Equal(t, 2.4, zentral["Suppe"][0].Prices.Get(false))

	roteBete, ok := day.Canteen("Rote Bete")
	assert.True(t, ok)
	assert.Nil(t, roteBete)

	_, ok = day.Canteen("Unknown")
	assert.False(t, ok)
}

func TestPlanResponse_Day_MissingDate(t *testing.T) {
	var response PlanResponse
	require.NoError(t, json.Unmarshal([]byte(planJSON), &response))

	missing := response.Day("18.10.2026")
	assert.NotNil(t, missing)
	assert.Empty(t, missing)

	null := response.Day("17.10.2026")
	assert.NotNil(t, null)
	assert.Empty(t, null)
}

func TestPlanResponse_Valid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
	}{
		{"empty plan", `{"status": "success", "plan": {}}`, false},
		{"missing plan", `{"status": "success"}`, false},
		{"null plan", `{"plan": null}`, false},
		{"non-empty plan", `{"plan": {"16.10.2026": {}}}`, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var response PlanResponse
			require.NoError(t, json.Unmarshal([]byte(test.payload), &response))
			assert.Equal(t, test.valid, response.Valid())
		})
	}

	var nilResponse *PlanResponse
	assert.False(t, nilResponse.Valid())
}

func TestPlanResponse_WrongShape(t *testing.T) {
	var response PlanResponse
	assert.Error(t, json.Unmarshal([]byte(`{"plan": []}`), &response))
	assert.Error(t, json.Unmarshal([]byte(`{"plan": {"16.10.2026": [1, 2]}}`), &response))
}

func TestDateData_DuplicateKeysKeepFirstPosition(t *testing.T) {
	var day DateData
	require.NoError(t, json.Unmarshal([]byte(`{"A": {"X": []}, "B": {}, "A": {"Y": []}}`), &day))

	assert.Equal(t, []string{"A", "B"}, day.Names())
	a, _ := day.Canteen("A")
	assert.Contains(t, a, "Y")
	assert.NotContains(t, a, "X")
}

func TestDateData_MarshalRoundTripKeepsOrder(t *testing.T) {
	day := DateData{
		{Name: "Zentralmensa", Counters: CanteenData{"Suppe": {}}},
		{Name: "Bambus", Counters: CanteenData{}},
	}

	data, err := json.Marshal(PlanSnapshot{Date: "16.10.2026", Plan: day})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date": "16.10.2026", "plan": {"Zentralmensa": {"Suppe": []}, "Bambus": {}}}`, string(data))
	assert.Less(t, strings.Index(string(data), "Zentralmensa"), strings.Index(string(data), "Bambus"))

	var decoded PlanSnapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"Zentralmensa", "Bambus"}, decoded.Plan.Names())
	assert.True(t, decoded.Valid())
}

func TestPlanSnapshot_Valid(t *testing.T) {
	assert.False(t, (&PlanSnapshot{Date: "", Plan: DateData{{Name: "A"}}}).Valid())
	assert.False(t, (&PlanSnapshot{Date: "16.10.2026"}).Valid())
	assert.True(t, (&PlanSnapshot{Date: "16.10.2026", Plan: DateData{{Name: "A"}}}).Valid())
}

func TestMeal_UnreadFieldsOfAnyShape(t *testing.T) {
	payload := `{"plan": {"16.10.2026": {"Zentralmensa": {"Suppe": [{
		"id": "101",
		"name": {"german": "Tomatensuppe", "english": "tomato soup"},
		"prices": {"discounted": 1.2, "normal": 2.4},
		"allergens": "Sl",
		"markings": ["veg"],
		"rating": 4.5,
		"images": [],
		"recommendation": "today",
		"number_comments": null
	}]}}}}`

	var response PlanResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &response))
	require.True(t, response.Valid())

	zentral, ok := response.Day("16.10.2026").Canteen("Zentralmensa")
	require.True(t, ok)
	require.Len(t, zentral["Suppe"], 1)
	meal := zentral["Suppe"][0]
	assert.Equal(t, "Tomatensuppe", meal.Name.German)
	assert.Equal(t, 2.4, meal.Prices.Normal)
	assert.JSONEq(t, `[]`, string(meal.Images))

	data, err := json.Marshal(meal)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"images":[]`)
	assert.Contains(t, string(data), `"rating":4.5`)
}
