package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weathrly.app/pkg/validation"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators installs custom binding rules on gin's shared validator engine
func registerValidators() error {
	validatorsOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		validatorsErr = engine.RegisterValidation("notblank", notBlank)
	})
	return validatorsErr
}

func notBlank(fl validator.FieldLevel) bool {
	return validation.IsNotBlank(fl.Field().String())
}
