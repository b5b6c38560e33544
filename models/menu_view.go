package models

// CounterMenu holds the formatted meal descriptions of one counter.
type CounterMenu struct {
	Counter string   `json:"counter"`
	Meals   []string `json:"meals"`
}

// CanteenMenu holds the counters of one canteen, sorted by counter name.
type CanteenMenu struct {
	Canteen  string        `json:"canteen"`
	Counters []CounterMenu `json:"counters"`
}

// MenuView is the extracted, display ready menu of a day.
// Neither a canteen without counters nor a counter without meals is ever part of it.
type MenuView []CanteenMenu

// Canteens returns the canteen names in display order.
func (v MenuView) Canteens() []string {
	names := make([]string, 0, len(v))
	for _, c := range v {
		names = append(names, c.Canteen)
	}
	return names
}

// Has reports whether the view contains the named canteen.
func (v MenuView) Has(canteen string) bool {
	for _, c := range v {
		if c.Canteen == canteen {
			return true
		}
	}
	return false
}
