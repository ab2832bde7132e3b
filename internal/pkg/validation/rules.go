package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// Email validation pattern - permissive local@domain.tld shape
	EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	// Phone pattern - optional leading +, then at least 10 digits/spaces/hyphens/parentheses
	PhonePattern = `^\+?[\d\s\-\(\)]{10,}$`

	// Name max length shared by course types and courses
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// Required reports whether the trimmed value is non-empty.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxLength reports whether the value is at most max characters long.
// Characters, not bytes, so multi-byte names are not under-counted.
func MaxLength(value string, max int) bool {
	return utf8.RuneCountInString(value) <= max
}

// Unique reports whether value collides with none of existing under
// trim + case-fold comparison. Callers editing an entity must filter that
// entity's own name out of existing before calling; there is no exclusion
// mechanism here.
func Unique(value string, existing []string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, e := range existing {
		if strings.ToLower(strings.TrimSpace(e)) == normalized {
			return false
		}
	}
	return true
}

// Email reports whether the value looks like local@domain.tld. Deliberately
// permissive: any non-space, non-@ runs either side of a single @ with at
// least one dot in the domain part.
func Email(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// Phone reports whether the value is an optional leading + followed by at
// least 10 digits, spaces, hyphens or parentheses.
func Phone(value string) bool {
	return CompiledPatterns.Phone.MatchString(value)
}

// Result is the outcome of a composite validation: all failed rules, one
// human-readable message per rule, in rule order.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func newResult(errors []string) Result {
	return Result{IsValid: len(errors) == 0, Errors: errors}
}

// ValidateCourseType checks a course type name: required, max length 100,
// unique among existingNames. existingNames must already exclude the record
// being edited.
func ValidateCourseType(name string, existingNames []string) Result {
	var errors []string

	if !Required(name) {
		errors = append(errors, "Course type name is required")
	}
	if !MaxLength(name, NameMaxLength) {
		errors = append(errors, "Course type name must be 100 characters or less")
	}
	if !Unique(name, existingNames) {
		errors = append(errors, "Course type name must be unique")
	}

	return newResult(errors)
}

// ValidateCourse checks a course name with the same rules as course types.
func ValidateCourse(name string, existingNames []string) Result {
	var errors []string

	if !Required(name) {
		errors = append(errors, "Course name is required")
	}
	if !MaxLength(name, NameMaxLength) {
		errors = append(errors, "Course name must be 100 characters or less")
	}
	if !Unique(name, existingNames) {
		errors = append(errors, "Course name must be unique")
	}

	return newResult(errors)
}

// ValidateStudent checks student fields: first name required, email and phone
// validated only when non-empty, last name unconstrained.
func ValidateStudent(firstName, lastName, email, phone string) Result {
	var errors []string

	if !Required(firstName) {
		errors = append(errors, "First name is required")
	}
	if strings.TrimSpace(email) != "" && !Email(email) {
		errors = append(errors, "Please enter a valid email address")
	}
	if strings.TrimSpace(phone) != "" && !Phone(phone) {
		errors = append(errors, "Please enter a valid phone number")
	}

	return newResult(errors)
}
