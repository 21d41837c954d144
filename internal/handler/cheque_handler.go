package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"chequero/internal/domain"
	"chequero/internal/export"
	"chequero/internal/service"
)

// ChequeHandler handles document processing endpoints.
type ChequeHandler struct {
	chequeService service.ChequeService
}

// NewChequeHandler creates a new ChequeHandler.
func NewChequeHandler(chequeService service.ChequeService) *ChequeHandler {
	return &ChequeHandler{chequeService: chequeService}
}

// Process handles POST /api/v1/cheques/process
// @Summary Process a cheque document
// @Description Upload a cheque image or PDF, extract its fields and enrich each record with the payer's BCRA credit status
// @Tags cheques
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to process (PDF, JPG, or PNG)"
// @Param format query string false "Response format: json (default), csv or xlsx"
// @Success 200 {object} APIResponse{data=[]domain.ChequeRecord} "Extracted and enriched records"
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 502 {object} APIResponse "Vision provider unavailable"
// @Router /cheques/process [post]
func (h *ChequeHandler) Process(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	input := &service.ProcessDocumentInput{
		FileBytes:   fileBytes,
		ContentType: resolveContentType(header.Header.Get("Content-Type"), header.Filename),
		FileName:    header.Filename,
	}

	records, err := h.chequeService.ProcessDocument(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch strings.ToLower(c.DefaultQuery("format", "json")) {
	case "csv":
		h.respondCSV(c, header.Filename, records)
	case "xlsx":
		h.respondXLSX(c, header.Filename, records)
	default:
		RespondOK(c, records)
	}
}

func (h *ChequeHandler) respondCSV(c *gin.Context, name string, records []domain.ChequeRecord) {
	filename := export.BuildFilename(name, "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}
	w := export.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteRecords(records); err != nil {
		return
	}
	w.Flush()
}

func (h *ChequeHandler) respondXLSX(c *gin.Context, name string, records []domain.ChequeRecord) {
	filename := export.BuildFilename(name, "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := export.WriteXLSX(c.Writer, records); err != nil {
		// Headers are already out; nothing useful left to send.
		_ = c.Error(err)
	}
}

// resolveContentType prefers the multipart part's declared content type and
// falls back to the file extension. Browsers sometimes send
// application/octet-stream for images.
func resolveContentType(declared, filename string) string {
	if _, ok := domain.AllowedContentTypes[declared]; ok {
		return declared
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ft, ok := domain.AllowedExtensions[ext]; ok {
		return domain.AllowedFileTypes[ft]
	}
	return declared
}
