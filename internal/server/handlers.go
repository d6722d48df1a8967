package server

import (
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clinseq/varank/internal/output"
	"github.com/clinseq/varank/internal/vcf"
)

// errorResponse is the body returned for rejected or failed requests.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "varank",
		"version":   Version,
		"timestamp": time.Now().UTC(),
		"components": gin.H{
			"parser":     "operational",
			"annotation": "operational",
			"classifier": "operational",
			"pipeline":   "operational",
		},
	})
}

// handleProcessVCF accepts a multipart VCF upload, runs the pipeline and
// returns the ranked result. A structurally invalid file is a 400; rejected
// data lines surface as warnings alongside a successful result.
func (s *Server) handleProcessVCF(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "missing file upload field \"file\""})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		s.logger.Error("open upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "could not read uploaded file"})
		return
	}
	defer file.Close()

	s.processStream(c, file)
}

// handleProcessSample processes the configured sample VCF file.
func (s *Server) handleProcessSample(c *gin.Context) {
	if s.cfg.SamplePath == "" {
		c.JSON(http.StatusNotFound, errorResponse{Message: "no sample file configured"})
		return
	}

	file, err := os.Open(s.cfg.SamplePath)
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Message: "sample file not found: " + s.cfg.SamplePath})
		return
	}
	defer file.Close()

	s.processStream(c, file)
}

func (s *Server) processStream(c *gin.Context, r io.Reader) {
	parser, err := vcf.NewParserFromReader(r)
	if err != nil {
		var parseErr *vcf.ParseError
		if errors.As(err, &parseErr) {
			c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid VCF file: " + parseErr.Message})
			return
		}
		s.logger.Error("read vcf", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "could not read VCF input"})
		return
	}

	result, err := s.pipeline.Run(parser)
	if err != nil {
		s.logger.Error("pipeline run", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Message: "error processing VCF file"})
		return
	}

	c.JSON(http.StatusOK, output.NewResponse(result, parser.Diagnostics()))
}

// handleClassificationRules reports the rule list and thresholds in
// evaluation order.
func (s *Server) handleClassificationRules(c *gin.Context) {
	engine := s.pipeline.Engine()
	cfg := engine.Config()

	c.JSON(http.StatusOK, gin.H{
		"frequency_thresholds": gin.H{
			"pathogenic": cfg.PathogenicFreq,
			"benign":     cfg.BenignFreq,
			"moderate":   cfg.ModerateFreq,
		},
		"rules": engine.Rules(),
	})
}
