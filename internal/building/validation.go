package building

import "fmt"

// Severity grades a validation issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is one validation finding on a field
type Issue struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Field, i.Message)
}

// ValidationResult collects errors and warnings. Errors make the result
// invalid; warnings never do.
type ValidationResult struct {
	IsValid  bool    `json:"is_valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// NewValidationResult returns an empty, valid result.
func NewValidationResult() ValidationResult {
	return ValidationResult{IsValid: true, Errors: []Issue{}, Warnings: []Issue{}}
}

// AddError records an error and marks the result invalid.
func (r *ValidationResult) AddError(field, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityError})
	r.IsValid = false
}

// AddWarning records a warning.
func (r *ValidationResult) AddWarning(field, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Field: field, Message: fmt.Sprintf(format, args...), Severity: SeverityWarning})
}

// Merge appends the issues of o to r.
func (r *ValidationResult) Merge(o ValidationResult) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
	r.IsValid = r.IsValid && o.IsValid && len(r.Errors) == 0
}
