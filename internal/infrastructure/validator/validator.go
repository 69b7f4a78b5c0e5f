package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
	passwordSymbols  = "!@#$%^&*()_+-=[]{};:'\\|,.<>/?~`\""
)

// passwordRule is one character-class requirement. Each rule doubles as a gin binding tag.
type passwordRule struct {
	tag         string
	requirement string
	check       func(rune) bool
}

var passwordRules = []passwordRule{
	{tag: "containsuppercase", requirement: "an uppercase letter", check: unicode.IsUpper},
	{tag: "containslowercase", requirement: "a lowercase letter", check: unicode.IsLower},
	{tag: "containsdigit", requirement: "a digit", check: unicode.IsDigit},
	{tag: "containssymbol", requirement: "a symbol", check: func(r rune) bool { return strings.ContainsRune(passwordSymbols, r) }},
}

func (r passwordRule) satisfiedBy(s string) bool {
	return strings.IndexFunc(s, r.check) >= 0
}

func (r passwordRule) fieldLevel(fl validator.FieldLevel) bool {
	return r.satisfiedBy(fl.Field().String())
}

// AppValidator implements the IValidator contract on top of go-playground/validator.
type AppValidator struct {
	validate *validator.Validate
}

var _ usecasecontract.IValidator = (*AppValidator)(nil)

func NewValidator() usecasecontract.IValidator {
	return &AppValidator{validate: validator.New()}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	if err := av.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePasswordStrength reports every unmet requirement at once.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("password must be at most %d bytes long", maxPasswordBytes)
	}
	var missing []string
	for _, rule := range passwordRules {
		if !rule.satisfiedBy(password) {
			missing = append(missing, rule.requirement)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("password must contain %s", strings.Join(missing, ", "))
	}
	return nil
}

// RegisterCustomValidators registers the password rules and slugsafe with gin's validator.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	for _, rule := range passwordRules {
		_ = v.RegisterValidation(rule.tag, rule.fieldLevel)
	}
	_ = v.RegisterValidation("slugsafe", slugSafeFL)
}

// slugSafeFL rejects titles that would reduce to an empty slug.
func slugSafeFL(fl validator.FieldLevel) bool {
	return strings.IndexFunc(strings.ToLower(fl.Field().String()), func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
	}) >= 0
}
