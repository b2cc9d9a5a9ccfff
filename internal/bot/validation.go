package bot

import "strings"

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// validateProgramName validates program name
func validateProgramName(name string) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 2 {
		return ValidationError{Field: "program_name", Message: "Название слишком короткое (минимум 2 символа)"}
	}
	if len([]rune(name)) > 100 {
		return ValidationError{Field: "program_name", Message: "Название слишком длинное (максимум 100 символов)"}
	}
	return nil
}

// validateExerciseName validates exercise name
func validateExerciseName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "exercise_name", Message: "Название упражнения не может быть пустым"}
	}
	if len([]rune(name)) < 2 {
		return ValidationError{Field: "exercise_name", Message: "Название слишком короткое (минимум 2 символа)"}
	}
	if len([]rune(name)) > 100 {
		return ValidationError{Field: "exercise_name", Message: "Название слишком длинное (максимум 100 символов)"}
	}
	return nil
}
