package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/GlebRadaev/stakeledger/internal/domain"
	"github.com/GlebRadaev/stakeledger/pkg/utils"
)

var validate = newValidator()

// newValidator reports fields by their json name so messages match the request body.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var statusByKind = map[domain.Kind]int{
	domain.KindValidation:          http.StatusBadRequest,
	domain.KindInsufficientBalance: http.StatusPaymentRequired,
	domain.KindScheduleRestriction: http.StatusUnprocessableEntity,
	domain.KindInvalidState:        http.StatusConflict,
	domain.KindDuplicateOperation:  http.StatusConflict,
	domain.KindNotFound:            http.StatusNotFound,
}

// Status maps a domain error to its HTTP status. Anything unknown is a 500.
func Status(err error) int {
	if kind, ok := domain.KindOf(err); ok {
		if code, ok := statusByKind[kind]; ok {
			return code
		}
	}
	return http.StatusInternalServerError
}

// Error replies with the domain reason, or a generic message for internal failures.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}

// StatusParam reads the optional ?status= filter. Empty means no filter.
func StatusParam(r *http.Request) (domain.Status, error) {
	status := domain.Status(r.URL.Query().Get("status"))
	switch status {
	case "", domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
		return status, nil
	default:
		return "", domain.NewError(domain.KindValidation, fmt.Sprintf("unknown status %q", status))
	}
}

// IDParam reads the {id} path segment.
func IDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewError(domain.KindValidation, "invalid id")
	}
	return id, nil
}

// Decode reads a JSON body into v, rejecting unknown fields, then checks v's validate tags.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewError(domain.KindValidation, "invalid request body")
	}

	err := validate.Struct(v)
	var fieldErrs validator.ValidationErrors
	switch {
	case err == nil:
		return nil
	case errors.As(err, &fieldErrs):
		return domain.NewError(domain.KindValidation, describe(fieldErrs[0]))
	default:
		return err
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max", "len", "oneof":
		return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be formatted as %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("invalid %s", fe.Field())
	}
}
