package service

// InputValidator checks struct-tagged input DTOs at the service boundary.
// Failures are reported as domainerrors.ErrValidationFailed with field details.
type InputValidator interface {
	Struct(input any) error
}
