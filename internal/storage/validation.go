// Package storage provides the record store backends for the ledger.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/sebastianlopezramirez/ledger/internal/common"
	"github.com/sebastianlopezramirez/ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Validation errors.
var (
	ErrNilContext = errors.New("context cannot be nil")
)

// entryValidator checks entries against their struct tags and renders
// failures as English sentences.
type entryValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var (
	sharedValidator     *entryValidator
	sharedValidatorOnce sync.Once
)

func entryRules() *entryValidator {
	sharedValidatorOnce.Do(func() {
		sharedValidator = newEntryValidator()
	})
	return sharedValidator
}

func newEntryValidator() *entryValidator {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails on programmer error: empty tag or nil func.
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		c, ok := fl.Field().Interface().(model.Category)
		return ok && c.Valid()
	})
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterTranslation("positive", trans,
		func(t ut.Translator) error {
			return t.Add("positive", "{0} must be greater than zero", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("positive", fe.Field())
			return msg
		},
	)
	_ = v.RegisterTranslation("category", trans,
		func(t ut.Translator) error {
			return t.Add("category", "{0} must be one of the fixed categories", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("category", fe.Field())
			return msg
		},
	)

	return &entryValidator{validate: v, translator: trans}
}

func (ev *entryValidator) check(entry any) error {
	err := ev.validate.Struct(entry)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", common.ErrInvalidEntry, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fe.Translate(ev.translator))
	}
	return common.NewUserError(strings.Join(msgs, "; "), fmt.Errorf("%w: %v", common.ErrInvalidEntry, err))
}

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateIncome validates an income entry before it is stored.
func validateIncome(entry model.IncomeEntry) error {
	entry.Description = strings.TrimSpace(entry.Description)
	return entryRules().check(entry)
}

// validateExpense validates an expense entry before it is stored.
func validateExpense(entry model.ExpenseEntry) error {
	entry.Name = strings.TrimSpace(entry.Name)
	return entryRules().check(entry)
}

// validatePosition ensures position addresses one of size entries.
func validatePosition(collection string, position, size int) error {
	if position < 1 || position > size {
		return &common.PositionError{Collection: collection, Position: position, Size: size}
	}
	return nil
}
