package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/podolab/podo-analyzer/internal/pressure"
	"github.com/podolab/podo-analyzer/internal/render"
	"github.com/podolab/podo-analyzer/internal/source"
)

// analyzeResponse is the successful /analyze payload.
type analyzeResponse struct {
	AnalysisResults *pressure.Result `json:"analysis_results"`
	ImageBase64     string           `json:"image_base64"`
}

// errorResponse carries a human-readable failure reason.
type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "podo-analyzer API is running",
	})
}

func (s *Server) handleAnalyze(c echo.Context) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	log := s.log.With().Str("request_id", requestID).Logger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "missing upload field 'file'"})
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".json") {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: "invalid file type: expected a .json upload"})
	}
	log.Info().Str("filename", fileHeader.Filename).Msg("analysis request received")

	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: fmt.Sprintf("cannot open upload: %v", err)})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: fmt.Sprintf("cannot read upload: %v", err)})
	}

	grid, err := source.ParseDocument(data)
	if err != nil {
		log.Warn().Err(err).Msg("malformed capture document")
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	result, err := pressure.Analyze(grid, s.cfg.Analysis)
	if err != nil {
		log.Warn().Err(err).Msg("analysis rejected input")
		return c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	}

	heatmap, err := render.RenderBase64(result, s.cfg.Render)
	if err != nil {
		log.Error().Err(err).Msg("heatmap rendering failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Detail: "heatmap rendering failed"})
	}

	log.Info().Msg("analysis complete")
	return c.JSON(http.StatusOK, analyzeResponse{
		AnalysisResults: result,
		ImageBase64:     heatmap.ImageBase64,
	})
}
