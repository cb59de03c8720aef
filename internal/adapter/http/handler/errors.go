package handler

import "net/http"

func errorResponse(w http.ResponseWriter, status int, message any) {
	env := envelope{"error": message}

	// Fall back to a bare 500 if even the error body cannot be written.
	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

// failedValidationResponse returns 422 Unprocessable Entity with the field
// errors collected by the validator.
func failedValidationResponse(w http.ResponseWriter, errors map[string]string) {
	errorResponse(w, http.StatusUnprocessableEntity, errors)
}

func badRequestResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusBadRequest, message)
}

func internalErrorResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusInternalServerError, message)
}
