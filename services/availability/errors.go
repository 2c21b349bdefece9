package availability

import "fmt"

// Error codes for recoverable, user-facing outcomes. None of these are
// crashes; persistence and transport failures propagate unchanged as
// generic errors.
const (
	CodeInvalidRule     = "invalidRule"
	CodeConflictingRule = "conflictingRule"
	CodeRuleNotFound    = "ruleNotFound"
)

type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidRuleError(msg string) error {
	return &ServiceError{Code: CodeInvalidRule, Message: msg}
}
