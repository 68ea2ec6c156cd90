package main

import (
	"fmt"
	"os"

	"alfredoptarigan/smart-ats/internal/logger"
	"alfredoptarigan/smart-ats/internal/services"
)

// Prints the text the analyzer would see for a resume PDF. With a second
// argument naming a job description file, prints the full prompt instead.
//
//	go run ./scripts/extract_resume.go resume.pdf [jd.txt]
func main() {
	logger.Setup("development")
	log := logger.Component("extract")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: extract_resume <resume.pdf> [job_description.txt]")
		os.Exit(2)
	}

	parser := services.NewPDFParserService(log)
	text, err := parser.ExtractTextFromFile(os.Args[1])
	if err != nil {
		log.Error("extraction failed", "file", os.Args[1], "error", err)
		os.Exit(1)
	}

	if len(os.Args) < 3 {
		fmt.Println(text)
		return
	}

	jd, err := os.ReadFile(os.Args[2])
	if err != nil {
		log.Error("failed to read job description", "file", os.Args[2], "error", err)
		os.Exit(1)
	}

	fmt.Println(services.NewPromptBuilder().BuildATSPrompt(string(jd), text))
}
