package extractor

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"

	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDoc  = "application/msword"
	mimeText = "text/plain"
)

// Extractor pulls plain UTF-8 text out of uploaded briefing documents.
type Extractor struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Extractor {
	return &Extractor{log: log.With("component", "TextExtractor")}
}

// Extract never fails: parse errors for structured formats surface as empty
// text, and unknown formats fall back to permissive UTF-8 decoding.
func (e *Extractor) Extract(filename, mimeType string, data []byte) string {
	if len(data) == 0 {
		return ""
	}

	switch resolveKind(filename, mimeType) {
	case "pdf":
		text, err := extractPDF(data)
		if err != nil {
			e.log.Warn("pdf extraction failed", "filename", filename, "error", err)
			return ""
		}
		return text
	case "docx":
		text, err := extractDocx(data)
		if err != nil {
			e.log.Warn("docx extraction failed", "filename", filename, "error", err)
			return ""
		}
		return text
	default:
		return decodeBestEffort(data)
	}
}

func resolveKind(filename, mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case mimePDF:
		return "pdf"
	case mimeDocx, mimeDoc:
		return "docx"
	case mimeText:
		return "text"
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx", ".doc":
		return "docx"
	}
	return "text"
}

// extractPDF concatenates the text of each page in page order, one page per
// line. The parser panics on some malformed files; recovered into an error.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parser panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// extractDocx concatenates paragraph texts in document order, one per line.
func extractDocx(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("docx parser panic: %v", r)
		}
	}()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		sb.WriteString(para.String())
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func decodeBestEffort(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
