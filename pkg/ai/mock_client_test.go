package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRecommendCropsRanksBySuitability(t *testing.T) {
	m := NewMock()
	picks, err := m.RecommendCrops(CropQuery{Temperature: 28, Humidity: 80, Rainfall: 220, SoilType: "clay", Season: "wet"})
	require.NoError(t, err)
	require.Len(t, picks, 3)
	assert.Equal(t, "Rice", picks[0].Name, "hot and wet favors rice")
	assert.GreaterOrEqual(t, picks[0].Percent, picks[1].Percent)
	assert.GreaterOrEqual(t, picks[1].Percent, picks[2].Percent)
}

func TestMockRecommendFertilizerLowNitrogen(t *testing.T) {
	m := NewMock()
	advice, err := m.RecommendFertilizer(FertilizerQuery{Crop: "maize", SoilType: "loam", SoilPh: 6.2, Nitrogen: 10, Phosphorus: 40, Potassium: 40})
	require.NoError(t, err)
	assert.Equal(t, "Urea 46-0-0", advice.Fertilizer)
}

func TestMockReplyNeverErrors(t *testing.T) {
	m := NewMock()
	for _, msg := range []string{"", "how much water does maize need?", "what fertilizer?", "pest on leaves"} {
		var history []ChatTurn
		if msg != "" {
			history = []ChatTurn{{Role: "user", Content: msg}}
		}
		out, err := m.Reply(history)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	}
}
