package main

// Exercise the enhancement flow against a resume file without the
// server:
//   go run ./cmd/enhancetest -resume ./resume.txt -section experience

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-editor/internal/enhance"
	"resume-editor/internal/enhance/openai"
	"resume-editor/internal/parse"
	"resume-editor/internal/resume"
	"resume-editor/internal/shared/config"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf, docx, or txt)")
	section := flag.String("section", "experience", "Section to enhance (experience, education, skills)")
	provider := flag.String("provider", cfg.EnhancerProvider, "Enhancer provider (mock or openai)")
	model := flag.String("model", cfg.EnhancerModel, "Model for the openai provider")
	outPath := flag.String("out", "", "Path to write the enhanced document JSON (optional)")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}

	kind, err := resume.ParseSectionKind(*section)
	if err != nil {
		exitErr(err.Error())
	}

	mimeType, err := mimeFromExt(*resumePath)
	if err != nil {
		exitErr(err.Error())
	}

	data, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}

	var parser parse.TextParser
	doc, err := parser.Parse(context.Background(), data, mimeType, filepath.Base(*resumePath))
	if err != nil {
		exitErr(fmt.Sprintf("parse resume: %v", err))
	}

	enhancer, err := buildEnhancer(*provider, *model)
	if err != nil {
		exitErr(err.Error())
	}
	orch := &enhance.Orchestrator{Enhancer: enhancer}

	var value any
	switch kind {
	case resume.SectionExperience:
		value, err = orch.Experience(context.Background(), doc.Experience)
	case resume.SectionEducation:
		value, err = orch.Education(context.Background(), doc.Education)
	case resume.SectionSkills:
		value, err = orch.Skills(context.Background(), doc.Skills)
	default:
		exitErr(fmt.Sprintf("section %s is not enhanceable", kind))
	}
	if err != nil {
		exitErr(fmt.Sprintf("enhance: %v", err))
	}

	enhanced, err := doc.WithSection(kind, value)
	if err != nil {
		exitErr(err.Error())
	}

	pretty, err := json.MarshalIndent(enhanced, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			exitErr(fmt.Sprintf("write output: %v", err))
		}
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	_, _ = os.Stdout.Write([]byte("\n"))
}

func buildEnhancer(provider, model string) (enhance.Enhancer, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "mock":
		return enhance.Rewriter{}, nil
	case "openai":
		return openai.NewClient(os.Getenv("OPENAI_API_KEY"), model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return parse.MimePDF, nil
	case ".docx":
		return parse.MimeDOCX, nil
	case ".txt":
		return "text/plain", nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", path)
	}
}

func exitErr(message string) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(1)
}
