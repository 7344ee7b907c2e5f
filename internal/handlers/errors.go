package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupValidator sync.Once

// registerValidations makes validation errors report the JSON name of a field
// and adds the rules tags cannot express.
func registerValidations() {
	setupValidator.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterStructValidation(validateLocation, locationRequest{})
	})
}

// validateLocation rejects a point with only one coordinate.
func validateLocation(sl validator.StructLevel) {
	l := sl.Current().Interface().(locationRequest)
	switch {
	case l.Latitude == nil && l.Longitude != nil:
		sl.ReportError(l.Latitude, "latitude", "Latitude", "required_with", "longitude")
	case l.Latitude != nil && l.Longitude == nil:
		sl.ReportError(l.Longitude, "longitude", "Longitude", "required_with", "latitude")
	}
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"errors": []gin.H{{"message": msg}}})
}

// respondInternal logs err through the request logger and returns a generic 500.
func respondInternal(c *gin.Context, err error, msg string) {
	_ = c.Error(err)
	respondError(c, http.StatusInternalServerError, msg)
}

// respondBindError reports each failing field, or a generic 400 when the body
// could not be decoded at all.
func respondBindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		respondError(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	out := make([]gin.H, 0, len(ve))
	for _, fe := range ve {
		out = append(out, gin.H{"field": fe.Field(), "message": fieldMessage(fe)})
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": out})
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		return msgNameRequired
	case "email":
		if fe.Tag() == "email" {
			return msgEmailInvalid
		}
		return msgEmailRequired
	case "password":
		if fe.Tag() == "min" {
			return msgPasswordTooShort
		}
		return msgPasswordRequired
	case "userType":
		return msgUserTypeInvalid
	case "specialization":
		return msgSpecializationRequired
	case "address":
		return msgAddressRequired
	case "phone":
		return msgPhoneRequired
	case "workingHours":
		return msgWorkingHoursRequired
	case "latitude", "longitude":
		return msgLocationInvalid
	}
	return msgInvalidRequest
}
