package respond

import (
	"encoding/json"
	"net/http"
)

// Machine-oriented error categories carried in every error body alongside the
// human-readable detail.
const (
	CategoryValidation = "validation_error"
	CategoryNotFound   = "not_found"
	CategoryConflict   = "conflict"
	CategoryBadRequest = "bad_request"
	CategoryInternal   = "internal"
)

type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

type messageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, category, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: category, Detail: detail})
}

func Message(w http.ResponseWriter, msg string) error {
	return JSON(w, http.StatusOK, messageBody{Message: msg})
}
