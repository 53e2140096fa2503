package parse

import (
	"context"
	"fmt"
	"time"

	"resume-editor/internal/resume"
)

// Parser turns raw file bytes plus a declared media type into a
// populated document, or fails with a parse error. Upload validation
// (type, size) is the caller's job and happens before Parse.
type Parser interface {
	Parse(ctx context.Context, data []byte, contentType, fileName string) (resume.Document, error)
}

// TextParser extracts plain text from the payload and applies
// line-based heuristics to build a document skeleton. It recovers
// contact details and a skills line reliably; experience and education
// entries are left for the user to fill in through the editor.
type TextParser struct{}

// Parse implements Parser.
func (TextParser) Parse(ctx context.Context, data []byte, contentType, fileName string) (resume.Document, error) {
	if err := ctx.Err(); err != nil {
		return resume.Document{}, err
	}
	text, err := ExtractText(data, contentType, fileName)
	if err != nil {
		return resume.Document{}, fmt.Errorf("parse %s: %w", fileName, err)
	}
	return buildDocument(text), nil
}

// Stub returns a fixed sample document after a configurable delay,
// standing in for a real parsing service during development and tests.
type Stub struct {
	Delay time.Duration
}

// Parse implements Parser. It ignores the payload and returns the
// sample document once the delay elapses or the context is canceled.
func (s Stub) Parse(ctx context.Context, data []byte, contentType, fileName string) (resume.Document, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return resume.Document{}, ctx.Err()
		case <-timer.C:
		}
	}
	return SampleDocument(), nil
}

// SampleDocument is the canned parse result used by Stub.
func SampleDocument() resume.Document {
	return resume.Document{
		PersonalInfo: resume.PersonalInfo{
			Name:     "Sarah Johnson",
			Email:    "sarah.johnson@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
		},
		Experience: []resume.Experience{
			{
				Company:     "TechCorp Inc.",
				Position:    "Senior Frontend Developer",
				StartDate:   "Jan 2021",
				EndDate:     "Present",
				Description: "Led development of responsive web applications using React and TypeScript. Collaborated with design team to implement pixel-perfect UI components. Mentored junior developers and established coding standards.",
			},
			{
				Company:     "StartupXYZ",
				Position:    "Frontend Developer",
				StartDate:   "Jun 2019",
				EndDate:     "Dec 2020",
				Description: "Built dynamic user interfaces for B2B SaaS platform. Implemented state management with Redux and integrated RESTful APIs. Improved application performance by 40% through code optimization.",
			},
		},
		Education: []resume.Education{
			{
				School:         "University of California, Berkeley",
				Degree:         "Bachelor's",
				Field:          "Computer Science",
				GraduationDate: "May 2019",
				GPA:            "3.8/4.0",
			},
		},
		Skills: []string{
			"JavaScript", "React", "TypeScript", "Node.js", "Python",
			"SQL", "Git", "AWS", "Agile Methodology", "Problem Solving",
		},
	}
}
