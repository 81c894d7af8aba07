package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/aussiebroadwan/onboard/internal/registry/domain"
	"github.com/go-playground/validator/v10"
)

// emailPart excludes '@' and Unicode whitespace: RE2's \s only covers ASCII,
// so \v, the Z categories and the BOM are listed explicitly.
const emailPart = `[^\t\n\v\f\r \p{Z}\x{FEFF}@]+`

var emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// validate is shared; validator caches struct metadata per instance.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	err := v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("service: registering basic_email: %v", err))
	}

	return v
}

type clientInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,basic_email"`
	BusinessName string `json:"business_name" validate:"required"`
}

// validateNewClient trims the input and checks it. Presence is reported
// before format, so an empty email yields the missing-fields error.
func validateNewClient(nc domain.NewClient) (domain.NewClient, error) {
	in := clientInput{
		Name:         strings.TrimSpace(nc.Name),
		Email:        strings.TrimSpace(nc.Email),
		BusinessName: strings.TrimSpace(nc.BusinessName),
	}

	err := validate.Struct(in)
	if err == nil {
		return domain.NewClient{Name: in.Name, Email: in.Email, BusinessName: in.BusinessName}, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewClient{}, err
	}

	var missing, malformed []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			malformed = append(malformed, fe.Field())
		}
	}

	if len(missing) > 0 {
		return domain.NewClient{}, &ValidationError{Message: MsgMissingFields, Fields: missing}
	}
	return domain.NewClient{}, &ValidationError{Message: MsgInvalidEmail, Fields: malformed}
}
