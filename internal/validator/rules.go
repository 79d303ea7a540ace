package validator

import (
	"log"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SQLDrivers lists the relational engines the server can run on.
var SQLDrivers = []string{"mysql", "postgres"}

// DocStoreTypes lists the supported resume image store backends.
var DocStoreTypes = []string{"mongo", "s3", "local"}

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-sql-driver", oneOfFold(SQLDrivers))
	mustRegister("is-docstore-type", oneOfFold(DocStoreTypes))
}

func oneOfFold(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true // для пустых значений есть 'required'
		}
		return slices.Contains(allowed, strings.ToLower(value))
	}
}
