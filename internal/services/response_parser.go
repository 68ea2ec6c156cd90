package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"alfredoptarigan/smart-ats/internal/models"
)

const (
	keyMatch           = "JD Match"
	keyMissingKeywords = "MissingKeywords"
	keyProfileSummary  = "Profile Summary"
)

var (
	ErrMalformedJSON   = errors.New("analysis response is not valid JSON")
	ErrUnexpectedShape = errors.New("analysis response has an unexpected shape")
)

// ParseError carries the unparsed model output alongside the failure kind.
type ParseError struct {
	Kind   error
	Detail string
	Raw    string
}

func (e *ParseError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// ParseAnalysis reads the three expected keys from raw. Markdown fences or
// any other wrapping around the JSON make the text malformed.
func ParseAnalysis(raw string) (*models.AnalysisResult, error) {
	if !gjson.Valid(raw) {
		return nil, &ParseError{Kind: ErrMalformedJSON, Raw: raw}
	}

	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, shapeError(raw, "top-level value is not an object")
	}

	match := lastField(doc, keyMatch)
	if !match.Exists() {
		return nil, shapeError(raw, "missing %q", keyMatch)
	}
	percent, err := parsePercent(match)
	if err != nil {
		return nil, shapeError(raw, "%q: %v", keyMatch, err)
	}

	keywordsField := lastField(doc, keyMissingKeywords)
	if !keywordsField.Exists() {
		return nil, shapeError(raw, "missing %q", keyMissingKeywords)
	}
	if !keywordsField.IsArray() {
		return nil, shapeError(raw, "%q is not an array", keyMissingKeywords)
	}
	keywords := make([]string, 0, len(keywordsField.Array()))
	for i, kw := range keywordsField.Array() {
		if kw.Type != gjson.String {
			return nil, shapeError(raw, "%q[%d] is not a string", keyMissingKeywords, i)
		}
		keywords = append(keywords, kw.String())
	}

	summary := lastField(doc, keyProfileSummary)
	if !summary.Exists() {
		return nil, shapeError(raw, "missing %q", keyProfileSummary)
	}
	if summary.Type != gjson.String {
		return nil, shapeError(raw, "%q is not a string", keyProfileSummary)
	}

	return &models.AnalysisResult{
		MatchPercent:    percent,
		MissingKeywords: keywords,
		ProfileSummary:  summary.String(),
	}, nil
}

// lastField returns the final occurrence of key, so a repeated key
// resolves to its last value.
func lastField(doc gjson.Result, key string) gjson.Result {
	var field gjson.Result
	doc.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			field = v
		}
		return true
	})
	return field
}

// parsePercent accepts "85%", "85" or a bare integer 85.
func parsePercent(v gjson.Result) (int, error) {
	var n int
	switch v.Type {
	case gjson.String:
		s := strings.TrimSpace(v.String())
		s = strings.TrimSuffix(s, "%")
		parsed, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer percentage", v.String())
		}
		n = parsed
	case gjson.Number:
		parsed, err := strconv.Atoi(v.Raw)
		if err != nil {
			return 0, fmt.Errorf("%s is not an integer", v.Raw)
		}
		n = parsed
	default:
		return 0, fmt.Errorf("want a string or number, got %s", v.Type)
	}

	if n < 0 || n > 100 {
		return 0, fmt.Errorf("%d is outside 0-100", n)
	}
	return n, nil
}

func shapeError(raw, format string, args ...any) error {
	return &ParseError{Kind: ErrUnexpectedShape, Detail: fmt.Sprintf(format, args...), Raw: raw}
}

// PrettyJSON indents a valid JSON document for the raw-data view.
func PrettyJSON(raw string) string {
	return gjson.Get(raw, "@pretty").String()
}
