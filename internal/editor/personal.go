package editor

import "resume-editor/internal/resume"

// SetPersonalField writes one field of the personal info record by its
// wire name. Personal info has no edit buffer: the change propagates
// immediately through the session's update path.
func SetPersonalField(info resume.PersonalInfo, field, value string) (resume.PersonalInfo, error) {
	switch field {
	case "name":
		info.Name = value
	case "email":
		info.Email = value
	case "phone":
		info.Phone = value
	case "location":
		info.Location = value
	default:
		return resume.PersonalInfo{}, ErrUnknownField
	}
	return info, nil
}

// SetExperienceField writes one draft field of an experience record by
// its wire name.
func SetExperienceField(exp *resume.Experience, field, value string) error {
	switch field {
	case "company":
		exp.Company = value
	case "position":
		exp.Position = value
	case "startDate":
		exp.StartDate = value
	case "endDate":
		exp.EndDate = value
	case "description":
		exp.Description = value
	default:
		return ErrUnknownField
	}
	return nil
}

// SetEducationField writes one draft field of an education record by
// its wire name.
func SetEducationField(edu *resume.Education, field, value string) error {
	switch field {
	case "school":
		edu.School = value
	case "degree":
		edu.Degree = value
	case "field":
		edu.Field = value
	case "graduationDate":
		edu.GraduationDate = value
	case "gpa":
		edu.GPA = value
	default:
		return ErrUnknownField
	}
	return nil
}
