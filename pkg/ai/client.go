package ai

// ChatTurn is one message of a conversation, oldest first.
type ChatTurn struct {
	Role    string `json:"role"` // user|assistant
	Content string `json:"content"`
}

type CropQuery struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	SoilPh      float64 `json:"soilPh"`
	Nitrogen    float64 `json:"nitrogen"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	SoilType    string  `json:"soilType"`
	Season      string  `json:"season"`
}

type CropPick struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Percent     float64 `json:"percent"`
	ShortDetail string  `json:"short_detail"`
	LongDetail  string  `json:"long_detail"`
}

type FertilizerQuery struct {
	Crop       string  `json:"crop"`
	SoilType   string  `json:"soilType"`
	SoilPh     float64 `json:"soilPh"`
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
}

type FertilizerAdvice struct {
	Fertilizer   string   `json:"fertilizer"`
	DosageKgHa   float64  `json:"dosage_kg_ha"`
	Timing       string   `json:"timing"`
	Notes        string   `json:"notes"`
	Alternatives []string `json:"alternatives,omitempty"`
}

type PestReport struct {
	Pest       string  `json:"pest"`
	Confidence float64 `json:"confidence"`
	Severity   string  `json:"severity"` // low|medium|high
	Treatment  string  `json:"treatment"`
	Prevention string  `json:"prevention"`
}

type Client interface {
	Reply(history []ChatTurn) (string, error)
	RecommendCrops(q CropQuery) ([]CropPick, error)
	RecommendFertilizer(q FertilizerQuery) (*FertilizerAdvice, error)
	AnalyzePest(imagePath, crop string) (*PestReport, error)
}
