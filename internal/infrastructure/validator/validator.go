package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/Folio/internal/usecase/contract"
)

// MaxTitleLength bounds blog and category titles.
const MaxTitleLength = 200

// AppValidator implements the usecasecontract.IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecasecontract.IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerTitle(v)
	return &AppValidator{validate: v}
}

// ValidateTitle checks that a title is present and within bounds.
func (av *AppValidator) ValidateTitle(title string) error {
	if err := av.validate.Var(title, "required,title"); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}
	return nil
}

// ValidateID checks that an id-addressed request carries an id.
func (av *AppValidator) ValidateID(id string) error {
	if err := av.validate.Var(strings.TrimSpace(id), "required,max=64"); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerTitle(v)
	}
}

func registerTitle(v *validator.Validate) {
	_ = v.RegisterValidation("title", titleFL)
}

// titleFL rejects blank titles and titles longer than MaxTitleLength runes.
func titleFL(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	return s != "" && utf8.RuneCountInString(s) <= MaxTitleLength
}
