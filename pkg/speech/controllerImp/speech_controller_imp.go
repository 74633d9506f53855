package controllerImp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type SpeechCtrl struct {
	endpoint string
	httpc    *http.Client
}

func New(endpoint string) *SpeechCtrl {
	return &SpeechCtrl{endpoint: endpoint, httpc: &http.Client{Timeout: 30 * time.Second}}
}

type speakReq struct {
	Text string `json:"text"`
}

// Speak forwards the text to the configured TTS endpoint and streams the
// audio back as-is.
func (h *SpeechCtrl) Speak(c echo.Context) error {
	var req speakReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text is required"})
	}
	if h.endpoint == "" {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "speech synthesis is not configured"})
	}

	b, _ := json.Marshal(req)
	upReq, err := http.NewRequestWithContext(c.Request().Context(), http.MethodPost, h.endpoint, bytes.NewReader(b))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	upReq.Header.Set("Content-Type", "application/json")

	resp, err := h.httpc.Do(upReq)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "speech service unavailable"})
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "speech service returned " + resp.Status})
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = "audio/mpeg"
	}
	return c.Stream(http.StatusOK, ct, resp.Body)
}
