package validation

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings attaches the domain validation rules to gin's binding
// engine so DTOs can enforce them with struct tags.
func RegisterBindings() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	rules := map[string]validator.Func{
		"academic_year": func(fl validator.FieldLevel) bool {
			return IsValidAcademicYear(fl.Field().String())
		},
		"roll_number": func(fl validator.FieldLevel) bool {
			return IsValidRollNumber(fl.Field().String())
		},
		"employee_id": func(fl validator.FieldLevel) bool {
			return CompiledPatterns.EmployeeID.MatchString(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
