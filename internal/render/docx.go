package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"resume-editor/internal/resume"
)

// ContentTypeDOCX is the media type of rendered artifacts.
const ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Extension is the artifact file extension, including the dot.
const Extension = ".docx"

// Artifact is a rendered résumé document.
type Artifact struct {
	Data        []byte
	FileName    string
	ContentType string
}

// Document renders the résumé into a DOCX artifact. The package is
// assembled directly (content types, relationships, document body)
// rather than from a template, so rendering has no filesystem
// dependencies.
func Document(doc resume.Document) (Artifact, error) {
	body, err := documentXML(doc)
	if err != nil {
		return Artifact{}, err
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)

	files := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", body},
	}
	for _, f := range files {
		w, err := writer.Create(f.name)
		if err != nil {
			return Artifact{}, fmt.Errorf("render docx: %w", err)
		}
		if _, err := w.Write([]byte(f.content)); err != nil {
			return Artifact{}, fmt.Errorf("render docx: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return Artifact{}, fmt.Errorf("render docx: %w", err)
	}

	return Artifact{
		Data:        output.Bytes(),
		FileName:    SuggestedFileName(doc.PersonalInfo.Name),
		ContentType: ContentTypeDOCX,
	}, nil
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func documentXML(doc resume.Document) (string, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	writeHeader(&b, doc.PersonalInfo)

	if len(doc.Experience) > 0 {
		writeHeading(&b, "Experience")
		for _, exp := range doc.Experience {
			writeParagraph(&b, fmt.Sprintf("%s — %s", exp.Position, exp.Company), true)
			if exp.StartDate != "" || exp.EndDate != "" {
				writeParagraph(&b, fmt.Sprintf("%s - %s", exp.StartDate, exp.EndDate), false)
			}
			if exp.Description != "" {
				writeParagraph(&b, exp.Description, false)
			}
		}
	}

	if len(doc.Education) > 0 {
		writeHeading(&b, "Education")
		for _, edu := range doc.Education {
			writeParagraph(&b, fmt.Sprintf("%s in %s, %s", edu.Degree, edu.Field, edu.School), true)
			line := edu.GraduationDate
			if edu.GPA != "" {
				if line != "" {
					line += " · "
				}
				line += "GPA: " + edu.GPA
			}
			if line != "" {
				writeParagraph(&b, line, false)
			}
		}
	}

	if len(doc.Skills) > 0 {
		writeHeading(&b, "Skills")
		writeParagraph(&b, strings.Join(doc.Skills, ", "), false)
	}

	b.WriteString(`</w:body></w:document>`)
	return b.String(), nil
}

func writeHeader(b *strings.Builder, info resume.PersonalInfo) {
	name := info.Name
	if name == "" {
		name = "Resume"
	}
	writeParagraph(b, name, true)

	var contact []string
	for _, field := range []string{info.Email, info.Phone, info.Location} {
		if field != "" {
			contact = append(contact, field)
		}
	}
	if len(contact) > 0 {
		writeParagraph(b, strings.Join(contact, " · "), false)
	}
}

func writeHeading(b *strings.Builder, title string) {
	writeParagraph(b, title, true)
}

func writeParagraph(b *strings.Builder, text string, bold bool) {
	b.WriteString(`<w:p><w:r>`)
	if bold {
		b.WriteString(`<w:rPr><w:b/></w:rPr>`)
	}
	b.WriteString(`<w:t xml:space="preserve">`)
	b.WriteString(escapeXML(text))
	b.WriteString(`</w:t></w:r></w:p>`)
}

func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
