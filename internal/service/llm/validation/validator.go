package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/Ankit-3010/novacreate-hack2skill/internal/service/llm"
	"github.com/Ankit-3010/novacreate-hack2skill/internal/utils/datauri"
)

// Validator checks generation requests against their input schema and
// decoded results against their output contract
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the flow-specific rules registered
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Errors are only possible for an empty tag name
	_ = v.RegisterValidation("videodatauri", isVideoDataURI)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("postingtime", isPostingTime)

	v.RegisterStructValidation(hashtagsStructLevel, llm.HashtagsResult{})

	return &Validator{validate: v}
}

// Validate runs the struct rules on request and converts failures into
// a *llm.ValidationError for feature
func (iv *Validator) Validate(feature llm.Feature, request interface{}) error {
	err := iv.validate.Struct(request)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &llm.ValidationError{
			Feature: feature,
			Fields:  []llm.FieldError{{Field: "", Rule: "invalid", Message: err.Error()}},
		}
	}

	fields := make([]llm.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, llm.FieldError{
			Field:   fieldPath(fe),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		})
	}

	return &llm.ValidationError{Feature: feature, Fields: fields}
}

// Check runs the output rules on a decoded result and returns one issue per
// failing field. Results that are not structs carry no tags and pass.
func (iv *Validator) Check(out interface{}) []string {
	if reflect.Indirect(reflect.ValueOf(out)).Kind() != reflect.Struct {
		return nil
	}

	err := iv.validate.Struct(out)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	issues := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, message(fe))
	}
	return issues
}

// isVideoDataURI accepts only base64 data URIs carrying a video/* payload
func isVideoDataURI(fl validator.FieldLevel) bool {
	uri, err := datauri.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return strings.HasPrefix(uri.MIMEType, "video/")
}

// fieldPath strips the top-level struct name from the namespace,
// so "RemixRequest.formats[0]" becomes "formats[0]"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// message renders a human readable message for a single failing rule
func message(fe validator.FieldError) string {
	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must contain exactly %s item(s)", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("%s is empty", field)
	case "startsnotwith":
		return fmt.Sprintf("%s %q must not start with '%s'", field, fe.Value(), fe.Param())
	case "postingtime":
		return fmt.Sprintf("%s %q is not an ISO-8601 date-time", field, fe.Value())
	case "brandedcount":
		return fmt.Sprintf("%s must contain %s or 0 item(s)", field, fe.Param())
	case "crossunique":
		return fmt.Sprintf("%s %q repeats a tag from %s", field, fe.Value(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", field)
	case "videodatauri":
		return fmt.Sprintf("%s must be a base64 data URI with a video MIME type", field)
	default:
		return fmt.Sprintf("%s failed the %q rule", field, fe.Tag())
	}
}
