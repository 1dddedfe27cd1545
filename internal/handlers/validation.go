package handlers

import (
	"fmt"

	"github.com/SscSPs/cross_currency_wallet/internal/apperrors"
	"github.com/SscSPs/cross_currency_wallet/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseCurrencyCode(fl.Field().String())
		return ok
	})
}

// parseCurrencyParam reads a currency path parameter such as "ngn" or "USDT".
func parseCurrencyParam(raw string) (domain.CurrencyCode, error) {
	code, ok := domain.ParseCurrencyCode(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, raw)
	}
	return code, nil
}
