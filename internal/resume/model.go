package resume

import "fmt"

// Document is the canonical in-memory representation of a résumé. A
// Document is owned by exactly one editing session; every mutation goes
// through WithSection, which returns a new value and leaves the other
// sections referentially unchanged.
type Document struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
}

// PersonalInfo captures contact details. All fields are optional.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Experience is a work history entry. Identity is positional: the index
// in Document.Experience, shifting on insertion and deletion.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is an education entry with the same positional-identity rule
// as Experience.
type Education struct {
	School         string `json:"school"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

// New returns the all-empty "start from scratch" skeleton. Section
// slices are materialized so no consumer ever sees a nil section.
func New() Document {
	return Document{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []string{},
	}
}

// Normalize materializes nil section slices. Parser output and decoded
// payloads pass through here before entering a session.
func (d Document) Normalize() Document {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	return d
}

// WithSection returns a copy of the document with exactly the named
// section replaced. The replacement slice is copied, so callers cannot
// alias into the document afterwards. The value's concrete type must
// match the section kind.
func (d Document) WithSection(kind SectionKind, value any) (Document, error) {
	switch kind {
	case SectionPersonalInfo:
		info, ok := value.(PersonalInfo)
		if !ok {
			return Document{}, fmt.Errorf("section %s requires PersonalInfo, got %T", kind, value)
		}
		d.PersonalInfo = info
	case SectionExperience:
		entries, ok := value.([]Experience)
		if !ok {
			return Document{}, fmt.Errorf("section %s requires []Experience, got %T", kind, value)
		}
		d.Experience = append([]Experience{}, entries...)
	case SectionEducation:
		entries, ok := value.([]Education)
		if !ok {
			return Document{}, fmt.Errorf("section %s requires []Education, got %T", kind, value)
		}
		d.Education = append([]Education{}, entries...)
	case SectionSkills:
		skills, ok := value.([]string)
		if !ok {
			return Document{}, fmt.Errorf("section %s requires []string, got %T", kind, value)
		}
		d.Skills = append([]string{}, skills...)
	default:
		return Document{}, fmt.Errorf("unknown section: %s", kind)
	}
	return d, nil
}

// Empty reports whether the document has no content at all.
func (d Document) Empty() bool {
	return d.PersonalInfo == PersonalInfo{} &&
		len(d.Experience) == 0 &&
		len(d.Education) == 0 &&
		len(d.Skills) == 0
}
