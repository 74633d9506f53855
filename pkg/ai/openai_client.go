package ai

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) chat(messages []map[string]any) (string, error) {
	reqBody := map[string]any{
		"model":       c.model,
		"messages":    messages,
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// stripFence removes a ```json fence when the model wraps its JSON anyway.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func (c *openAI) Reply(history []ChatTurn) (string, error) {
	msgs := []map[string]any{
		{"role": "system", "content": "You are an agricultural advisor for smallholder farmers. Answer concisely and practically, in Markdown."},
	}
	for _, t := range history {
		msgs = append(msgs, map[string]any{"role": t.Role, "content": t.Content})
	}
	return c.chat(msgs)
}

func (c *openAI) RecommendCrops(q CropQuery) ([]CropPick, error) {
	prompt := fmt.Sprintf(`Given these growing conditions, rank the 3 most suitable crops.
Reply ONLY valid JSON: {"crops":[{"id":1,"name":"...","percent":87.5,"short_detail":"...","long_detail":"..."}]}

temperature_c=%.1f humidity_pct=%.1f rainfall_mm=%.1f soil_ph=%.2f
N=%.1f P=%.1f K=%.1f soil_type=%s season=%s`,
		q.Temperature, q.Humidity, q.Rainfall, q.SoilPh,
		q.Nitrogen, q.Phosphorus, q.Potassium, q.SoilType, q.Season)

	content, err := c.chat([]map[string]any{
		{"role": "system", "content": "You are an agronomist. Reply ONLY valid JSON."},
		{"role": "user", "content": prompt},
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Crops []CropPick `json:"crops"`
	}
	raw := stripFence(content)
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		var arr []CropPick
		if err2 := json.Unmarshal([]byte(raw), &arr); err2 != nil {
			return nil, fmt.Errorf("parse crop picks: %v / raw: %s", err, content)
		}
		payload.Crops = arr
	}
	for i := range payload.Crops {
		if payload.Crops[i].ID == 0 {
			payload.Crops[i].ID = i + 1
		}
	}
	return payload.Crops, nil
}

func (c *openAI) RecommendFertilizer(q FertilizerQuery) (*FertilizerAdvice, error) {
	prompt := fmt.Sprintf(`Recommend a fertilizer program for %s on %s soil (pH %.2f, N=%.1f P=%.1f K=%.1f).
Reply ONLY valid JSON: {"fertilizer":"...","dosage_kg_ha":0,"timing":"...","notes":"...","alternatives":["..."]}`,
		q.Crop, q.SoilType, q.SoilPh, q.Nitrogen, q.Phosphorus, q.Potassium)

	content, err := c.chat([]map[string]any{
		{"role": "system", "content": "You are an agronomist. Reply ONLY valid JSON."},
		{"role": "user", "content": prompt},
	})
	if err != nil {
		return nil, err
	}
	var advice FertilizerAdvice
	if err := json.Unmarshal([]byte(stripFence(content)), &advice); err != nil {
		return nil, fmt.Errorf("parse fertilizer advice: %v / raw: %s", err, content)
	}
	return &advice, nil
}

func (c *openAI) AnalyzePest(imagePath, crop string) (*PestReport, error) {
	img, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, err
	}
	dataURI := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(img)
	prompt := fmt.Sprintf(`Identify the pest or disease on this %s plant.
Reply ONLY valid JSON: {"pest":"...","confidence":0.0,"severity":"low|medium|high","treatment":"...","prevention":"..."}`, crop)

	content, err := c.chat([]map[string]any{
		{"role": "system", "content": "You are a plant pathologist. Reply ONLY valid JSON."},
		{"role": "user", "content": []map[string]any{
			{"type": "text", "text": prompt},
			{"type": "image_url", "image_url": map[string]string{"url": dataURI}},
		}},
	})
	if err != nil {
		return nil, err
	}
	var report PestReport
	if err := json.Unmarshal([]byte(stripFence(content)), &report); err != nil {
		return nil, fmt.Errorf("parse pest report: %v / raw: %s", err, content)
	}
	return &report, nil
}
