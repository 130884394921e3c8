package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// upiAddressRe matches the handle@provider shape of a UPI routing address.
var upiAddressRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z][a-zA-Z0-9]*$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("upi_address", validateUPIAddress)
	}
}

func validateUPIAddress(fl validator.FieldLevel) bool {
	return upiAddressRe.MatchString(fl.Field().String())
}
