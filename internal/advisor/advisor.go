package advisor

import "github.com/MikuMikuMe/smart-energy-monitor/internal/domain"

// Per-reading budgets for the always-on groups. A group whose total exceeds
// budget*len(readings) earns a suggestion.
const (
	lightingBudget    = 0.3
	electronicsBudget = 0.5
)

// Advise inspects the collected readings and returns usage suggestions in a
// fixed order: thermostat first, then lighting, then electronics. It is a
// pure function of its input.
func Advise(readings []domain.Reading) []string {
	totals := make(map[domain.Category]float64, len(domain.Categories))
	for _, r := range readings {
		for _, cat := range domain.Categories {
			totals[cat] += r.Appliances[cat]
		}
	}

	count := float64(len(readings))
	var suggestions []string

	if totals[domain.Heating] > totals[domain.Cooling] {
		suggestions = append(suggestions, "Consider lowering the thermostat for heating.")
	}
	if totals[domain.Cooling] > totals[domain.Heating] {
		suggestions = append(suggestions, "Consider raising the thermostat for cooling.")
	}

	// Budgets multiply against the count rather than dividing the total,
	// so an empty history trips nothing (0 > 0 is false).
	if totals[domain.Lighting] > lightingBudget*count {
		suggestions = append(suggestions, "Consider switching off lights in unoccupied rooms.")
	}
	if totals[domain.Electronics] > electronicsBudget*count {
		suggestions = append(suggestions, "Consider unplugging unused electronics.")
	}

	return suggestions
}
