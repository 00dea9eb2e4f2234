package domain

import (
	"encoding/json"
	"time"
)

// Category names one of the monitored appliance groups.
type Category string

const (
	Heating     Category = "heating"
	Cooling     Category = "cooling"
	Lighting    Category = "lighting"
	Electronics Category = "electronics"
)

// Categories lists the monitored groups in a fixed order.
var Categories = []Category{Heating, Cooling, Lighting, Electronics}

// Reading is one sampled snapshot of household energy use, in kWh per
// appliance group. Readings are never mutated after creation.
type Reading struct {
	// Timestamp is when the reading was taken
	Timestamp time.Time `json:"timestamp"`
	// Appliances maps each group to its consumption for this sample
	Appliances map[Category]float64 `json:"appliances"`
}

// Encode renders the reading in the wire format published to the broker.
func (r Reading) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// DecodeReading parses a wire payload back into a Reading.
func DecodeReading(payload []byte) (Reading, error) {
	var r Reading
	if err := json.Unmarshal(payload, &r); err != nil {
		return Reading{}, err
	}
	return r, nil
}
