package services

import (
	"fmt"
)

// atsInstructions is sent unchanged with every analysis. The model is asked
// for exactly the three keys ParseAnalysis reads back.
const atsInstructions = "\n" +
	"    Act as an expert Applicant Tracking System (ATS). \n" +
	"    Your task is to evaluate the resume against the job description.\n" +
	"\n" +
	"    1. Assign a Match Percentage (0-100%).\n" +
	"    2. List Missing Keywords that are critical for the role.\n" +
	"    3. Profile Summary: If the resume has a summary, refine it. If it DOES NOT have a summary, GENERATE a strong, professional profile summary (3-4 lines) based on the candidate's skills and projects.\n" +
	"\n" +
	"Output strictly in this JSON format:\n" +
	`{"JD Match": "85%", "MissingKeywords": ["keyword1", "keyword2"], "Profile Summary": "Candidate is a..."}` + "\n"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildATSPrompt interpolates both inputs verbatim. Nothing is escaped or
// trimmed, so braces or quotes in either input reach the model as typed.
func (pb *PromptBuilder) BuildATSPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf("%s\n\nJob Description: %s\n\nResume: %s", atsInstructions, jobDescription, resumeText)
}

func (pb *PromptBuilder) Instructions() string {
	return atsInstructions
}
