package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinseq/varank/internal/annotation"
	"github.com/clinseq/varank/internal/classify"
	"github.com/clinseq/varank/internal/output"
)

const sampleVCF = "##fileformat=VCFv4.2\n" +
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
	"17\t43044295\trs121913530\tA\tT\t100.0\tPASS\tGENE=BRCA1;IMPACT=HIGH\n" +
	"22\t19963748\trs4680\tG\tA\t85.0\tPASS\tGENE=COMT;IMPACT=MODERATE\n" +
	"22\tbadpos\trs1\tG\tA\t.\tPASS\t.\n"

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	cfg.Classify = classify.DefaultConfig()
	return New(cfg, annotation.NewStore(), nil)
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, path := range []string{"/", "/health"} {
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, rec.Code, path)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "varank", body["service"])
		assert.Contains(t, body, "components")
	}
}

func TestProcessVCF(t *testing.T) {
	srv := newTestServer(t, Config{})

	buf, contentType := multipartBody(t, "file", "variants.vcf", sampleVCF)
	req := httptest.NewRequest(http.MethodPost, "/process-vcf", buf)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var resp output.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "Successfully processed 2 variants", resp.Message)
	assert.Equal(t, 2, resp.TotalVariants)
	require.NotEmpty(t, resp.TopVariants)
	assert.Equal(t, "rs121913530", resp.TopVariants[0].VariantID)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "line 5")
}

func TestProcessVCF_MissingFile(t *testing.T) {
	srv := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/process-vcf", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "file")
}

func TestProcessVCF_InvalidHeader(t *testing.T) {
	srv := newTestServer(t, Config{})

	buf, contentType := multipartBody(t, "file", "bad.vcf",
		"1\t100\trs1\tA\tT\t50.0\tPASS\t.\n")
	req := httptest.NewRequest(http.MethodPost, "/process-vcf", buf)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "invalid VCF file")
}

func TestProcessSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.vcf")
	require.NoError(t, os.WriteFile(path, []byte(sampleVCF), 0o644))

	srv := newTestServer(t, Config{SamplePath: path})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/process-vcf-sample", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp output.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalVariants)
}

func TestProcessSample_NotConfigured(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/process-vcf-sample", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClassificationRules(t *testing.T) {
	srv := newTestServer(t, Config{})

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/classification-rules", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Thresholds map[string]float64  `json:"frequency_thresholds"`
		Rules      []classify.RuleInfo `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 0.01, body.Thresholds["pathogenic"])
	assert.Equal(t, 0.05, body.Thresholds["benign"])
	require.Len(t, body.Rules, 7)
	assert.Equal(t, classify.Uncertain, body.Rules[6].Classification)
}

func TestRequestID_Propagated(t *testing.T) {
	srv := newTestServer(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
