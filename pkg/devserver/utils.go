package devserver

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ctxKey string

const ctxKeyUserId ctxKey = "userId"

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	// Decode body
	contentType := r.Header.Get("Content-Type")
	if contentType != "application/json" && contentType != "" {
		returnErr(w, http.StatusBadRequest, ErrBadRequest, nil)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		returnErr(w, http.StatusBadRequest, ErrBadRequest, nil)
		return false
	}

	// Get struct type
	structType := reflect.TypeOf(v)
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}

	// Validate
	if err := validate.Struct(v); err != nil {
		errFields := make(map[string]string, len(err.(validator.ValidationErrors)))
		for _, err := range err.(validator.ValidationErrors) {
			field, _ := structType.FieldByName(err.StructField())
			errFields[field.Tag.Get("json")] = err.Error()
		}
		returnErr(w, http.StatusBadRequest, ErrBadRequest, errFields)
		return false
	}

	return true
}

func returnData(w http.ResponseWriter, code int, data interface{}) {
	marshaled, err := json.Marshal(data)
	if err != nil {
		sentry.CaptureException(err)
		returnErr(w, http.StatusInternalServerError, ErrInternal, nil)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(marshaled)
}

func returnErr(w http.ResponseWriter, code int, errType error, fields map[string]string) {
	marshaled, err := json.Marshal(struct {
		Error  bool              `json:"error"`
		Type   string            `json:"type"`
		Fields map[string]string `json:"fields,omitempty"`
	}{true, errType.Error(), fields})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("An error occurred while sending the error response."))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(marshaled)
}
