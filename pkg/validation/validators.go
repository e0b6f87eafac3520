package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Letters, spaces and the punctuation people actually put in names: . ' - /
var nameRegex = regexp.MustCompile(`^[\p{L} .'/-]+$`)

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
}

// ValidName rejects digits and most symbols. Empty values pass; combine with required.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		// supplementary planes are mostly emoji and pictographs
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}
