package domain

// RiskTier is the credit risk classification derived from BCRA data.
type RiskTier string

const (
	RiskTierA      RiskTier = "A"
	RiskTierB      RiskTier = "B"
	RiskTierBMinus RiskTier = "B-"
	RiskTierC      RiskTier = "C"
	RiskTierNone   RiskTier = "N/A"
)

// DocumentTypeCheque is the only document type this service produces records for.
const DocumentTypeCheque = "cheque"

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}
