package util

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	rgxIndex = regexp.MustCompile(`\[\d+\]`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("latitude", validateLatitude)
	validate.RegisterValidation("longitude", validateLongitude)
	validate.RegisterValidation("richtext_min", validateRichTextMin)
	validate.RegisterValidation("slug", validateSlug)
	validate.RegisterValidation("loose_url", validateLooseURL)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateLatitude(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90 && lat <= 90
}

func validateLongitude(fl validator.FieldLevel) bool {
	lon := fl.Field().Float()
	return lon >= -180 && lon <= 180
}

// richtext_min=N counts characters after markup is removed.
func validateRichTextMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len([]rune(StripHTML(fl.Field().String()))) >= min
}

func validateSlug(fl validator.FieldLevel) bool {
	return RgxSlug.MatchString(fl.Field().String())
}

func validateLooseURL(fl validator.FieldLevel) bool {
	return RgxLooseURL.MatchString(fl.Field().String())
}

// RegisterStructValidation attaches a cross-field rule to the given struct types.
func RegisterStructValidation(fn validator.StructLevelFunc, types ...interface{}) {
	validate.RegisterStructValidation(fn, types...)
}

// Messages maps "field.tag" (or just "field") to a user facing message.
type Messages map[string]string

// FieldErrors validates s and returns the first message per field,
// keyed by the JSON path of the field ("route_b.name"). A nil map means valid.
func FieldErrors(s interface{}, messages Messages) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if _, seen := out[path]; seen {
			continue
		}
		out[path] = messageFor(path, fe, messages)
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// messageFor looks up "path.tag" then "path". List elements also match
// with the index dropped: "itinerary[2].title" finds "itinerary[].title".
func messageFor(path string, fe validator.FieldError, messages Messages) string {
	for _, p := range []string{path, rgxIndex.ReplaceAllString(path, "[]")} {
		if msg, ok := messages[p+"."+fe.Tag()]; ok {
			return msg
		}
		if msg, ok := messages[p]; ok {
			return msg
		}
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be %s characters or less", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "email":
		return "Must be a valid email"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
