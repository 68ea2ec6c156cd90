package services

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	// ExtractText returns the text of every page, in page order, with no
	// separator between pages.
	ExtractText(data []byte) (string, error)
	ExtractTextFromFile(path string) (string, error)
}

type pdfParserService struct {
	log *slog.Logger
}

func NewPDFParserService(log *slog.Logger) PDFParserService {
	if log == nil {
		log = slog.Default()
	}
	return &pdfParserService{log: log}
}

func (p *pdfParserService) ExtractText(data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}

		textBuilder.WriteString(pageText)
	}

	text = textBuilder.String()
	if strings.TrimSpace(text) == "" {
		p.log.Warn("no text layer found in PDF", "pages", totalPage)
	} else {
		p.log.Debug("extracted resume text", "pages", totalPage, "chars", len(text))
	}

	return text, nil
}

func (p *pdfParserService) ExtractTextFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return p.ExtractText(data)
}
