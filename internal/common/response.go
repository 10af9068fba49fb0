package common

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is used for informational bodies and for 404s, which the
// front end reads from "message" rather than "error".
type MessageResponse struct {
	Message string `json:"message"`
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, ErrorResponse{Error: message})
}

func RespondWithMessage(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, MessageResponse{Message: message})
}

// RespondWithServiceError writes err using the status HTTPStatusFromError
// picks. Not-found errors use the {message} body.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	code := HTTPStatusFromError(err)
	if code == http.StatusNotFound {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			RespondWithMessage(w, code, nf.Error())
			return
		}
		RespondWithMessage(w, code, "Not found")
		return
	}
	RespondWithError(w, code, err.Error())
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
