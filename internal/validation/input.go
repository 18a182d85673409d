package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/bodysoul/internal/errors"
	"github.com/julianstephens/bodysoul/internal/utils"
)

// RegistrationInput is the identity part of the profile collected on sign-up.
type RegistrationInput struct {
	Name          string  `json:"name" validate:"required,max=64"`
	Age           int     `json:"age" validate:"required,gte=13,lte=120"`
	Gender        string  `json:"gender" validate:"required,oneof=female male other"`
	InitialWeight float64 `json:"initialWeight" validate:"required,gt=20,lt=500"`
	Height        float64 `json:"height" validate:"required,gt=50,lt=275"`
}

// BaselineInput is the fitness baseline collected before the challenge starts.
type BaselineInput struct {
	CurrentWeight        float64 `json:"currentWeight" validate:"omitempty,gt=20,lt=500"`
	CaloricDeficitTarget int     `json:"caloricDeficitTarget" validate:"omitempty,gte=100,lte=1500"`
	BaselineCardio       string  `json:"baselineCardio" validate:"required,max=280"`
	BaselineStrength     string  `json:"baselineStrength" validate:"required,max=280"`
	ExerciseTrack        string  `json:"exerciseTrack" validate:"required,oneof=beginner intermediate advanced"`
	SleepTargetBedtime   string  `json:"sleepTargetBedtime" validate:"omitempty,hhmm"`
	SleepTargetWaketime  string  `json:"sleepTargetWaketime" validate:"omitempty,hhmm"`
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return utils.ValidateTimeFormat(fl.Field().String())
	})
	return v
}

// Struct validates s against its struct tags. Failures are returned as an
// *errors.ValidationError naming every rejected field.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	out := &errors.ValidationError{}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, errors.FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "hhmm":
		return "must be a time in HH:MM format"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
