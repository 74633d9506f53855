package controllerImp

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"agribot/pkg/ai"
)

// AdvisoryCtrl fronts the model-backed endpoints. The model call is opaque:
// any failure maps to 502 rather than leaking transport details.
type AdvisoryCtrl struct {
	llm    ai.Client
	tmpDir string
}

func New(llm ai.Client, tmpDir string) *AdvisoryCtrl {
	if tmpDir == "" {
		tmpDir = os.TempDir()
	}
	return &AdvisoryCtrl{llm: llm, tmpDir: tmpDir}
}

func (h *AdvisoryCtrl) CropRecommendations(c echo.Context) error {
	var q ai.CropQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	picks, err := h.llm.RecommendCrops(q)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, picks)
}

func (h *AdvisoryCtrl) FertilizerRecommendation(c echo.Context) error {
	var q ai.FertilizerQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if q.Crop == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop required"})
	}
	advice, err := h.llm.RecommendFertilizer(q)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, advice)
}

func (h *AdvisoryCtrl) PestDetection(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "image file required"})
	}
	crop := c.FormValue("crop")

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read upload"})
	}
	defer src.Close()

	tmp := filepath.Join(h.tmpDir, uuid.NewString()+filepath.Ext(file.Filename))
	dst, err := os.Create(tmp)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tmp)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	dst.Close()
	defer os.Remove(tmp)

	report, err := h.llm.AnalyzePest(tmp, crop)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, report)
}
