package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	LanguageGerman  = "german"
	LanguageEnglish = "english"
)

// LocalizedText holds the german and english variant of a text.
type LocalizedText struct {
	German  string `json:"german"`
	English string `json:"english"`
}

// Get returns the text for the given language, english for anything but german.
func (t LocalizedText) Get(language string) string {
	if language == LanguageGerman {
		return t.German
	}
	return t.English
}

// Prices holds the student (discounted) and the guest (normal) price in euro.
type Prices struct {
	Discounted float64 `json:"discounted"`
	Normal     float64 `json:"normal"`
}

// Get returns the discounted price if requested, otherwise the normal one.
func (p Prices) Get(discounted bool) float64 {
	if discounted {
		return p.Discounted
	}
	return p.Normal
}

// Meal is a single dish served at a counter.
// Only name, prices and allergens are interpreted, the other fields are kept undecoded.
type Meal struct {
	ID             json.RawMessage `json:"id,omitempty"`
	ServingsID     json.RawMessage `json:"servings_id,omitempty"`
	Date           json.RawMessage `json:"date,omitempty"`
	Name           LocalizedText   `json:"name"`
	Prices         Prices          `json:"prices"`
	Allergens      string          `json:"allergens"`
	Markings       json.RawMessage `json:"markings,omitempty"`
	Rating         json.RawMessage `json:"rating,omitempty"`
	Images         json.RawMessage `json:"images,omitempty"`
	Recommendation json.RawMessage `json:"recommendation,omitempty"`
	NumberComments json.RawMessage `json:"number_comments,omitempty"`
}

// CounterData lists the meals of one counter in serving order.
type CounterData []Meal

// CanteenData maps counter names to their meals.
type CanteenData map[string]CounterData

// CanteenEntry is one canteen of a DateData.
type CanteenEntry struct {
	Name     string
	Counters CanteenData
}

// DateData maps canteen names to their counters for a single day.
// Unlike a plain map it keeps the order in which the canteens appear in the source JSON.
type DateData []CanteenEntry

// Canteen looks up a canteen by name.
func (d DateData) Canteen(name string) (CanteenData, bool) {
	for _, entry := range d {
		if entry.Name == name {
			return entry.Counters, true
		}
	}
	return nil, false
}

// Names returns the canteen names in source order.
func (d DateData) Names() []string {
	names := make([]string, 0, len(d))
	for _, entry := range d {
		names = append(names, entry.Name)
	}
	return names
}

// UnmarshalJSON decodes a JSON object while keeping its key order.
// A repeated key replaces the earlier value but keeps the earlier position.
func (d *DateData) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*d = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("date data: expected object, got %v", tok)
	}

	entries := DateData{}
	positions := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("date data: unexpected key %v", keyTok)
		}

		var counters CanteenData
		if err := dec.Decode(&counters); err != nil {
			return fmt.Errorf("date data: canteen %q: %w", name, err)
		}

		if i, seen := positions[name]; seen {
			entries[i].Counters = counters
			continue
		}
		positions[name] = len(entries)
		entries = append(entries, CanteenEntry{Name: name, Counters: counters})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = entries
	return nil
}

// MarshalJSON encodes the canteens as a JSON object in their stored order.
func (d DateData) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Counters)
		if err != nil {
			return nil, fmt.Errorf("date data: canteen %q: %w", entry.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PlanData maps dates (DD.MM.YYYY) to the plan of that day.
type PlanData map[string]DateData

// PlanResponse is the body returned by the canteen plan endpoint.
type PlanResponse struct {
	Status string   `json:"status"`
	Plan   PlanData `json:"plan"`
}

// Valid reports whether the response carries a non-empty plan.
func (r *PlanResponse) Valid() bool {
	return r != nil && len(r.Plan) > 0
}

// Day returns the plan for the given date. A missing date yields an empty, non-nil DateData.
func (r *PlanResponse) Day(date string) DateData {
	if day, ok := r.Plan[date]; ok && day != nil {
		return day
	}
	return DateData{}
}
