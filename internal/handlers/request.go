package handlers

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
	"github.com/emilythestrangee/videotube/backend/internal/ids"
	"github.com/emilythestrangee/videotube/backend/internal/middleware"
	"github.com/emilythestrangee/videotube/backend/internal/service"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules and makes validation
// errors report json field names. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", notBlank)
	})
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String {
		return strings.TrimSpace(field.String()) != ""
	}
	return !field.IsZero()
}

// currentUser returns the id the auth middleware resolved. It writes a 401
// when there is none.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		apperror.HandleError(c, apperror.New(apperror.ErrUnauthorized, "authentication required"))
	}
	return id, ok
}

// pathID parses a path parameter as an entity id, writing a 400 on failure.
func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := ids.Parse(param, c.Param(param))
	if err != nil {
		apperror.HandleError(c, err)
		return uuid.Nil, false
	}
	return id, true
}

func listParams(c *gin.Context) service.ListParams {
	return service.ListParams{
		Page:     c.Query("page"),
		Limit:    c.Query("limit"),
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
	}
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperror.HandleError(c, bindError(err))
		return false
	}
	return true
}

// bindError reports the first failing field. Absent and blank required
// fields are MissingField, every other rule is Validation.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Wrap(apperror.ErrValidation, "invalid request body", err)
	}
	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return apperror.MissingField(field)
	case "email":
		return apperror.New(apperror.ErrValidation, fmt.Sprintf("%s must be a valid email address", field))
	case "url":
		return apperror.New(apperror.ErrValidation, fmt.Sprintf("%s must be a valid URL", field))
	case "min":
		return apperror.New(apperror.ErrValidation, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
	case "max":
		return apperror.New(apperror.ErrValidation, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
	case "gte":
		return apperror.New(apperror.ErrValidation, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
	}
	return apperror.New(apperror.ErrValidation, fmt.Sprintf("%s is invalid", field))
}
