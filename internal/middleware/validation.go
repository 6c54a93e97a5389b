package middleware

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	fieldvalidator "github.com/jwalitptl/noill-admin/pkg/validator"
)

var registerOnce sync.Once

// RegisterValidation makes gin's binding validator report fields by their
// wire names. It is safe to call more than once.
func RegisterValidation() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			fieldvalidator.Register(v)
		}
	})
}
