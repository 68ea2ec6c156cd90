package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/smart-ats/internal/models"
)

const (
	NoticeResumeMissing   = "Please upload a resume PDF."
	NoticeJDMissing       = "Please paste a Job Description."
	NoticeInvalidUpload   = "Please upload a resume PDF."
	NoticeFileTooLarge    = "The resume PDF is too large. Please upload a smaller file."
	NoticeBusy            = "Your previous resume is still being analyzed. Please wait for it to finish."
	NoticeMalformedJSON   = "Error parsing response. Please try again."
	NoticeUnexpectedShape = "The analysis came back in an unexpected format. Please try again."
	NoticeFailed          = "Something went wrong while analyzing your resume. Please try again."
)

var (
	ErrResumeMissing         = errors.New("resume is required")
	ErrJobDescriptionMissing = errors.New("job description is required")
	ErrSubmissionInFlight    = errors.New("a submission from this client is already in progress")
)

type SubmissionInput struct {
	ClientKey      string
	JobDescription string
	Resume         *multipart.FileHeader
}

type SubmissionService interface {
	// Submit runs one submission to a terminal state. It never returns nil.
	Submit(ctx context.Context, in SubmissionInput) *models.Submission
}

type submissionService struct {
	uploads  UploadService
	parser   PDFParserService
	analyzer *AnalysisClient
	guard    *InFlightGuard
	ledger   Ledger
	log      *slog.Logger
}

func NewSubmissionService(
	uploads UploadService,
	parser PDFParserService,
	analyzer *AnalysisClient,
	guard *InFlightGuard,
	ledger Ledger,
	log *slog.Logger,
) SubmissionService {
	if log == nil {
		log = slog.Default()
	}
	if ledger == nil {
		ledger = NewNoopLedger()
	}
	return &submissionService{
		uploads:  uploads,
		parser:   parser,
		analyzer: analyzer,
		guard:    guard,
		ledger:   ledger,
		log:      log,
	}
}

func (s *submissionService) Submit(ctx context.Context, in SubmissionInput) *models.Submission {
	id := uuid.New()
	sub := &models.Submission{
		ID:             id.String(),
		State:          models.StateIdle,
		JobDescription: in.JobDescription,
	}
	log := s.log.With("submission_id", sub.ID)

	// The resume check runs before the job description check.
	if in.Resume == nil {
		return reject(sub, models.ErrorKindMissingResume, NoticeResumeMissing)
	}
	if strings.TrimSpace(in.JobDescription) == "" {
		return reject(sub, models.ErrorKindMissingJD, NoticeJDMissing)
	}

	release, ok := s.guard.Acquire(in.ClientKey)
	if !ok {
		log.Warn("submission refused", "client", in.ClientKey, "error", ErrSubmissionInFlight)
		return reject(sub, models.ErrorKindBusy, NoticeBusy)
	}
	defer release()

	data, err := s.uploads.ReadResume(in.Resume)
	if err != nil {
		log.Info("resume upload rejected", "file", in.Resume.Filename, "error", err)
		if errors.Is(err, ErrFileTooLarge) {
			return reject(sub, models.ErrorKindInvalidUpload, NoticeFileTooLarge)
		}
		return reject(sub, models.ErrorKindInvalidUpload, NoticeInvalidUpload)
	}

	start := time.Now()
	raw, err := s.process(ctx, in.JobDescription, data)
	if err != nil {
		s.fail(sub, err)
		log.Error("submission failed", "kind", sub.ErrorKind, "error", err)
		s.record(id, sub, start, err)
		return sub
	}

	sub.RawResponse = raw
	result, err := ParseAnalysis(raw)
	if err != nil {
		s.parseFailed(sub, err)
		log.Warn("analysis response rejected", "kind", sub.ErrorKind, "error", err)
		s.record(id, sub, start, err)
		return sub
	}

	sub.State = models.StateParsed
	sub.Result = result
	sub.Tier = models.TierFor(result.MatchPercent)
	sub.PrettyJSON = PrettyJSON(raw)

	log.Info("analysis completed", "match_percent", result.MatchPercent, "tier", sub.Tier,
		"missing_keywords", len(result.MissingKeywords), "took", time.Since(start))
	s.record(id, sub, start, nil)

	return sub
}

func (s *submissionService) process(ctx context.Context, jobDescription string, pdfData []byte) (string, error) {
	resumeText, err := s.parser.ExtractText(pdfData)
	if err != nil {
		return "", &stageError{kind: models.ErrorKindExtraction, err: err}
	}

	raw, err := s.analyzer.Analyze(ctx, models.AnalysisRequest{
		JobDescription: jobDescription,
		ResumeText:     resumeText,
	})
	if err != nil {
		return "", &stageError{kind: models.ErrorKindCompletion, err: err}
	}

	return raw, nil
}

func (s *submissionService) fail(sub *models.Submission, err error) {
	sub.State = models.StateFailed
	sub.Notice = NoticeFailed
	sub.ErrorKind = models.ErrorKindCompletion

	var se *stageError
	if errors.As(err, &se) {
		sub.ErrorKind = se.kind
	}
}

func (s *submissionService) parseFailed(sub *models.Submission, err error) {
	sub.State = models.StateParseError
	if errors.Is(err, ErrUnexpectedShape) {
		sub.ErrorKind = models.ErrorKindUnexpectedShape
		sub.Notice = NoticeUnexpectedShape
		return
	}
	sub.ErrorKind = models.ErrorKindMalformedJSON
	sub.Notice = NoticeMalformedJSON
}

func (s *submissionService) record(id uuid.UUID, sub *models.Submission, start time.Time, err error) {
	rec := &models.AnalysisRecord{
		ID:         id,
		Provider:   s.analyzer.Provider(),
		Model:      s.analyzer.Model(),
		DurationMs: time.Since(start).Milliseconds(),
		CreatedAt:  time.Now(),
	}

	switch sub.ErrorKind {
	case models.ErrorKindNone:
		rec.Status = models.StatusCompleted
		percent := sub.Result.MatchPercent
		tier := sub.Tier
		rec.MatchPercent = &percent
		rec.Tier = &tier
		rec.MissingKeywordCount = len(sub.Result.MissingKeywords)
	case models.ErrorKindMalformedJSON:
		rec.Status = models.StatusParseError
	case models.ErrorKindUnexpectedShape:
		rec.Status = models.StatusShapeError
	default:
		rec.Status = models.StatusFailed
	}
	if err != nil {
		msg := err.Error()
		rec.ErrorMessage = &msg
	}

	s.ledger.Record(rec)
}

func reject(sub *models.Submission, kind models.ErrorKind, notice string) *models.Submission {
	sub.State = models.StateIdle
	sub.ErrorKind = kind
	sub.Notice = notice
	return sub
}

type stageError struct {
	kind models.ErrorKind
	err  error
}

func (e *stageError) Error() string { return fmt.Sprintf("%s: %v", e.kind, e.err) }

func (e *stageError) Unwrap() error { return e.err }
