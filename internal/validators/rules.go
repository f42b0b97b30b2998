package validators

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Custom tag names registered on the underlying validator.
const (
	TagNotBlank       = "notblank"
	TagEmailFormat    = "email_format"
	TagStrongPassword = "strong_password"
	TagPhoneNumber    = "phone_number"
	TagCityCode       = "city_code"
	TagCountryCode    = "country_dial_code"
)

const (
	minPasswordLength  = 8
	passwordSpecials   = "@$!%*?&"
	passwordAlphabet   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" + passwordSpecials
	passwordLowercases = "abcdefghijklmnopqrstuvwxyz"
	passwordUppercases = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordDigits     = "0123456789"
)

var (
	emailRegexp       = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,6}$`)
	phoneNumberRegexp = regexp.MustCompile(`^[0-9]{7,15}$`)
	shortCodeRegexp   = regexp.MustCompile(`^[0-9]{1,4}$`)
)

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func isEmailFormat(fl validator.FieldLevel) bool {
	return emailRegexp.MatchString(fl.Field().String())
}

func isPhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegexp.MatchString(fl.Field().String())
}

func isShortCode(fl validator.FieldLevel) bool {
	return shortCodeRegexp.MatchString(fl.Field().String())
}

func isStrongPassword(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

// IsStrongPassword reports whether password has at least 8 characters, all
// of them ASCII letters, digits or one of "@$!%*?&", with at least one
// lowercase letter, one uppercase letter, one digit and one special character.
func IsStrongPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		if !strings.ContainsRune(passwordAlphabet, r) {
			return false
		}
		switch {
		case strings.ContainsRune(passwordLowercases, r):
			lower = true
		case strings.ContainsRune(passwordUppercases, r):
			upper = true
		case strings.ContainsRune(passwordDigits, r):
			digit = true
		default:
			special = true
		}
	}

	return lower && upper && digit && special
}

// messages holds the user-facing text of every rule, keyed by struct field
// name and validation tag.
var messages = map[string]map[string]string{
	"Name": {
		TagNotBlank: "Name cannot be blank",
	},
	"Email": {
		TagNotBlank:    "Email cannot be blank",
		TagEmailFormat: "Formato de email inválido",
	},
	"Password": {
		TagNotBlank:       "Password cannot be blank",
		TagStrongPassword: "La contraseña debe tener al menos 8 caracteres, una mayúscula, una minúscula, un número y un carácter especial",
	},
	"Phones": {
		"required": "Phones list cannot be empty",
		"gt":       "Phones list cannot be empty",
	},
	"Number": {
		TagNotBlank:    "Phone number cannot be blank",
		TagPhoneNumber: "Phone number must contain only digits and be between 7 and 15 characters",
	},
	"CityCode": {
		TagNotBlank: "City code cannot be blank",
		TagCityCode: "City code must contain only digits and be between 1 and 4 characters",
	},
	"CountryCode": {
		TagNotBlank:    "Country code cannot be blank",
		TagCountryCode: "Country code must contain 1 to 4 digits",
	},
}

func messageFor(fe validator.FieldError) string {
	if byTag, ok := messages[fe.StructField()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return "failed on '" + fe.Tag() + "' validation"
}
