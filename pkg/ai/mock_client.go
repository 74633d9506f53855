package ai

import (
	"fmt"
	"strings"
)

// mockClient keeps the advisory endpoints usable with no model configured.
// Scores are crude heuristics, not agronomy.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Reply(history []ChatTurn) (string, error) {
	if len(history) == 0 {
		return "Hello! Ask me anything about your crops, irrigation or soil.", nil
	}
	last := strings.ToLower(history[len(history)-1].Content)
	switch {
	case strings.Contains(last, "water") || strings.Contains(last, "irrigat"):
		return "Water early in the morning (6-8 AM) to minimize evaporation. Drip irrigation saves 30-50% compared to sprinklers.", nil
	case strings.Contains(last, "fertilizer") || strings.Contains(last, "npk"):
		return "Test your soil first. A balanced NPK 15-15-15 at 200 kg/ha is a safe starting point for most field crops.", nil
	case strings.Contains(last, "pest"):
		return "Upload a photo of the affected leaves and I can narrow it down. Meanwhile check the underside of leaves for eggs.", nil
	default:
		return "I can help with crop selection, irrigation scheduling, fertilizer plans and pest problems. What are you growing?", nil
	}
}

type cropProfile struct {
	name       string
	tempLo     float64
	tempHi     float64
	rainLo     float64
	rainHi     float64
	short      string
	long       string
}

var cropProfiles = []cropProfile{
	{"Rice", 20, 35, 150, 300, "Thrives in warm, wet conditions", "Rice needs standing water or high rainfall through the vegetative stage and temperatures above 20C."},
	{"Maize", 18, 32, 60, 150, "Reliable performer in moderate climates", "Maize tolerates a wide range of soils but wants steady moisture from tasseling onward."},
	{"Wheat", 10, 25, 30, 90, "Best for cooler, drier seasons", "Wheat prefers cool growing weather and moderate rainfall; waterlogging hurts tillering."},
	{"Soybean", 20, 30, 60, 130, "Good nitrogen fixer for rotations", "Soybean fixes its own nitrogen and fits well after cereals; it dislikes acid soils below pH 5.5."},
	{"Cotton", 22, 35, 50, 120, "Suited to long, hot seasons", "Cotton wants a long frost-free period and steady heat; excess late rain degrades fiber quality."},
}

func scoreRange(v, lo, hi float64) float64 {
	if v >= lo && v <= hi {
		return 1
	}
	span := hi - lo
	var d float64
	if v < lo {
		d = lo - v
	} else {
		d = v - hi
	}
	s := 1 - d/span
	if s < 0 {
		return 0
	}
	return s
}

func (m *mockClient) RecommendCrops(q CropQuery) ([]CropPick, error) {
	picks := make([]CropPick, 0, 3)
	for i, p := range cropProfiles {
		score := 0.6*scoreRange(q.Temperature, p.tempLo, p.tempHi) + 0.4*scoreRange(q.Rainfall, p.rainLo, p.rainHi)
		picks = append(picks, CropPick{
			ID:          i + 1,
			Name:        p.name,
			Percent:     float64(int(score*1000)) / 10, // one decimal
			ShortDetail: p.short,
			LongDetail:  p.long,
		})
	}
	// selection sort is fine for five rows
	for i := 0; i < len(picks); i++ {
		for j := i + 1; j < len(picks); j++ {
			if picks[j].Percent > picks[i].Percent {
				picks[i], picks[j] = picks[j], picks[i]
			}
		}
	}
	return picks[:3], nil
}

func (m *mockClient) RecommendFertilizer(q FertilizerQuery) (*FertilizerAdvice, error) {
	advice := &FertilizerAdvice{
		Fertilizer: "NPK 15-15-15",
		DosageKgHa: 200,
		Timing:     "split application: half at planting, half 30 days after",
		Notes:      fmt.Sprintf("baseline program for %s on %s soil", q.Crop, q.SoilType),
	}
	switch {
	case q.Nitrogen < 40:
		advice.Fertilizer = "Urea 46-0-0"
		advice.DosageKgHa = 150
		advice.Notes = "nitrogen is the limiting nutrient; top-dress after first weeding"
		advice.Alternatives = []string{"NPK 20-10-10", "composted manure 5 t/ha"}
	case q.Phosphorus < 20:
		advice.Fertilizer = "DAP 18-46-0"
		advice.DosageKgHa = 120
		advice.Notes = "phosphorus deficit; band near the seed row at planting"
		advice.Alternatives = []string{"single superphosphate 250 kg/ha"}
	case q.Potassium < 20:
		advice.Fertilizer = "MOP 0-0-60"
		advice.DosageKgHa = 100
		advice.Notes = "potassium deficit; apply before flowering"
	}
	if q.SoilPh < 5.5 {
		advice.Notes += "; soil is acidic, consider liming 1-2 t/ha first"
	}
	return advice, nil
}

func (m *mockClient) AnalyzePest(imagePath, crop string) (*PestReport, error) {
	return &PestReport{
		Pest:       "Leaf spot (suspected fungal)",
		Confidence: 0.55,
		Severity:   "medium",
		Treatment:  "Remove affected leaves and apply a copper-based fungicide at label rate.",
		Prevention: "Avoid overhead watering late in the day and rotate crops next season.",
	}, nil
}
