package models

// SubmissionState is where one submission ended up. Validating and
// Processing are transient and never rendered.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateParsed     SubmissionState = "parsed"
	StateParseError SubmissionState = "parse_error"
	StateFailed     SubmissionState = "failed"
)

type ErrorKind string

const (
	ErrorKindNone            ErrorKind = ""
	ErrorKindMissingResume   ErrorKind = "missing_resume"
	ErrorKindMissingJD       ErrorKind = "missing_job_description"
	ErrorKindInvalidUpload   ErrorKind = "invalid_upload"
	ErrorKindBusy            ErrorKind = "submission_in_flight"
	ErrorKindExtraction      ErrorKind = "extraction_failed"
	ErrorKindCompletion      ErrorKind = "completion_failed"
	ErrorKindMalformedJSON   ErrorKind = "malformed_json"
	ErrorKindUnexpectedShape ErrorKind = "unexpected_shape"
)

// Submission is the view of one submission, shared by the page and the JSON API.
type Submission struct {
	ID             string
	State          SubmissionState
	Notice         string
	ErrorKind      ErrorKind
	Result         *AnalysisResult
	Tier           MatchTier
	RawResponse    string
	PrettyJSON     string
	JobDescription string
}

func (s *Submission) TierLabel() string {
	return s.Tier.Label()
}

func (s *Submission) HasMissingKeywords() bool {
	return s.Result != nil && len(s.Result.MissingKeywords) > 0
}

type AnalyzeResponse struct {
	ID              string          `json:"id,omitempty"`
	State           SubmissionState `json:"state"`
	Notice          string          `json:"notice,omitempty"`
	ErrorKind       ErrorKind       `json:"error_kind,omitempty"`
	MatchPercent    *int            `json:"match_percent,omitempty"`
	Tier            MatchTier       `json:"tier,omitempty"`
	TierLabel       string          `json:"tier_label,omitempty"`
	MissingKeywords []string        `json:"missing_keywords"`
	ProfileSummary  string          `json:"profile_summary,omitempty"`
	RawResponse     string          `json:"raw_response,omitempty"`
}

func (s *Submission) ToResponse() AnalyzeResponse {
	resp := AnalyzeResponse{
		ID:          s.ID,
		State:       s.State,
		Notice:      s.Notice,
		ErrorKind:   s.ErrorKind,
		RawResponse: s.RawResponse,
	}
	if s.Result != nil {
		percent := s.Result.MatchPercent
		resp.MatchPercent = &percent
		resp.Tier = s.Tier
		resp.TierLabel = s.Tier.Label()
		resp.MissingKeywords = s.Result.MissingKeywords
		if resp.MissingKeywords == nil {
			resp.MissingKeywords = []string{}
		}
		resp.ProfileSummary = s.Result.ProfileSummary
	}
	return resp
}
