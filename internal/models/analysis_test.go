package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierFor(t *testing.T) {
	cases := []struct {
		percent int
		want    MatchTier
	}{
		{100, TierPositive},
		{80, TierPositive},
		{79, TierNeutral},
		{50, TierNeutral},
		{49, TierNegative},
		{0, TierNegative},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TierFor(tc.percent), "percent %d", tc.percent)
	}
}

func TestTierLabel(t *testing.T) {
	assert.Equal(t, "Great Match!", TierPositive.Label())
	assert.Equal(t, "Average Match", TierNeutral.Label())
	assert.Equal(t, "Low Match", TierNegative.Label())
	assert.Empty(t, MatchTier("").Label())
}

func TestSubmissionToResponse(t *testing.T) {
	s := &Submission{
		ID:     "abc",
		State:  StateParsed,
		Result: &AnalysisResult{MatchPercent: 60, ProfileSummary: "Python dev"},
		Tier:   TierNeutral,
	}

	resp := s.ToResponse()

	if assert.NotNil(t, resp.MatchPercent) {
		assert.Equal(t, 60, *resp.MatchPercent)
	}
	assert.Equal(t, "Average Match", resp.TierLabel)
	assert.NotNil(t, resp.MissingKeywords)
	assert.Empty(t, resp.MissingKeywords)
	assert.False(t, s.HasMissingKeywords())

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"missing_keywords":[]`)
}

func TestSubmissionToResponseWithoutResult(t *testing.T) {
	s := &Submission{State: StateParseError, ErrorKind: ErrorKindMalformedJSON, RawResponse: "nope"}

	resp := s.ToResponse()

	assert.Nil(t, resp.MatchPercent)
	assert.Empty(t, resp.Tier)
	assert.Equal(t, "nope", resp.RawResponse)
}
