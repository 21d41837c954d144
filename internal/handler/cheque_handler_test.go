package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chequero/internal/config"
	"chequero/internal/domain"
	"chequero/internal/handler"
	"chequero/internal/router"
	"chequero/mocks"
)

func newTestRouter(svc *mocks.MockChequeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	return router.Setup(
		cfg,
		handler.NewChequeHandler(svc),
		handler.NewCreditHandler(svc),
		handler.NewHealthHandler(nil),
	)
}

func multipartUpload(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp
}

func TestProcess_Success(t *testing.T) {
	svc := new(mocks.MockChequeService)
	svc.On("ProcessDocument", mock.Anything, mock.Anything).
		Return([]domain.ChequeRecord{{PayerCUIT: "30-69163759-6", Amount: 1000}}, nil)

	r := newTestRouter(svc)

	body, ct := multipartUpload(t, "cheque.png", "image/png", []byte{0x89, 0x50})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cheques/process", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w.Body)
	assert.True(t, resp.Success)
	records := resp.Data.([]interface{})
	require.Len(t, records, 1)
	first := records[0].(map[string]interface{})
	assert.Equal(t, "30-69163759-6", first["cuit_librador"])
}

func TestProcess_MissingFile(t *testing.T) {
	r := newTestRouter(new(mocks.MockChequeService))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cheques/process", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_FILE", resp.Error.Code)
}

func TestProcess_UnsupportedType(t *testing.T) {
	svc := new(mocks.MockChequeService)
	svc.On("ProcessDocument", mock.Anything, mock.Anything).
		Return(nil, domain.ErrUnsupportedFileType)

	r := newTestRouter(svc)

	body, ct := multipartUpload(t, "cheque.txt", "text/plain", []byte("hi"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cheques/process", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
}

func TestProcess_VisionUnavailable(t *testing.T) {
	svc := new(mocks.MockChequeService)
	svc.On("ProcessDocument", mock.Anything, mock.Anything).
		Return(nil, domain.ErrVisionUnavailable)

	r := newTestRouter(svc)

	body, ct := multipartUpload(t, "cheque.png", "image/png", []byte{0x89, 0x50})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cheques/process", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestProcess_CSVFormat(t *testing.T) {
	svc := new(mocks.MockChequeService)
	svc.On("ProcessDocument", mock.Anything, mock.Anything).
		Return([]domain.ChequeRecord{{PayerCUIT: "30-69163759-6", Bank: "Banco Nación", Amount: 1000}}, nil)

	r := newTestRouter(svc)

	body, ct := multipartUpload(t, "cheque.png", "image/png", []byte{0x89, 0x50})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cheques/process?format=csv", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "30-69163759-6")
	assert.Contains(t, w.Body.String(), "CUIT Librador")
}

func TestCreditCheck_Success(t *testing.T) {
	svc := new(mocks.MockChequeService)
	svc.On("CheckCredit", mock.Anything, "30-69163759-6").
		Return(&domain.CreditStatus{StatusLabel: "Sin deuda", RiskTier: domain.RiskTierA}, nil)

	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credit/30-69163759-6", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w.Body)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "A", data["riesgo_crediticio"])
}

func TestCreditCheck_InvalidCUIT(t *testing.T) {
	svc := new(mocks.MockChequeService)
	svc.On("CheckCredit", mock.Anything, "abc").
		Return(nil, domain.ErrInvalidCUIT)

	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/credit/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w.Body)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_CUIT", resp.Error.Code)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(new(mocks.MockChequeService))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
