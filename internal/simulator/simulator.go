package simulator

import (
	"math"
	"math/rand"
	"time"

	"github.com/MikuMikuMe/smart-energy-monitor/internal/domain"
)

// Per-sample consumption ranges in kWh. In a real deployment these values
// would come from metering hardware.
var ranges = map[domain.Category][2]float64{
	domain.Heating:     {0.5, 3.0},
	domain.Cooling:     {0.5, 3.0},
	domain.Lighting:    {0.1, 0.5},
	domain.Electronics: {0.2, 1.0},
}

// Generator produces synthetic appliance readings in place of real sensors.
type Generator struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate samples one reading with the current timestamp. Values are
// uniform within each group's range and rounded to two decimals.
func (g *Generator) Generate() domain.Reading {
	appliances := make(map[domain.Category]float64, len(domain.Categories))
	for _, cat := range domain.Categories {
		lo, hi := ranges[cat][0], ranges[cat][1]
		appliances[cat] = round2(lo + g.rng.Float64()*(hi-lo))
	}
	return domain.Reading{
		Timestamp:  time.Now(),
		Appliances: appliances,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
