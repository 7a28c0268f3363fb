package security

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Resume uploads are restricted to document formats the parser can read.

// Magic byte signatures per allowed extension.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
	".txt":  {},                                                 // no magic bytes
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// FileValidationResult contains the result of resume file validation.
type FileValidationResult struct {
	Valid     bool
	Extension string
	Error     string
}

// ValidateResumeFile checks an uploaded resume before parsing:
// extension whitelist, size cap, and magic-byte verification so a renamed
// binary cannot masquerade as a document.
func ValidateResumeFile(filename string, data []byte, maxSizeBytes int64) FileValidationResult {
	result := FileValidationResult{}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "file has no extension"
		return result
	}
	result.Extension = ext

	if !allowedExtensions[ext] {
		result.Error = "file type not allowed: " + ext + " (upload PDF or DOCX)"
		return result
	}

	if int64(len(data)) > maxSizeBytes {
		result.Error = fmt.Sprintf("file exceeds the %d MB size limit", maxSizeBytes/(1024*1024))
		return result
	}
	if len(data) == 0 {
		result.Error = "file is empty"
		return result
	}

	if ext != ".txt" && !validateMagicBytes(ext, data) {
		result.Error = "file content does not match its extension"
		return result
	}

	result.Valid = true
	return result
}

func validateMagicBytes(ext string, data []byte) bool {
	signatures, ok := magicBytes[ext]
	if !ok || len(signatures) == 0 {
		return true
	}
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.Equal(data[:len(sig)], sig) {
			return true
		}
	}
	return false
}
