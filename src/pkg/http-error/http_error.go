package httpError

import "net/http"

// CommonError is the transport-agnostic error carried by usecase results.
// Message is what the client sees; Code maps to the HTTP status.
type CommonError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:    http.StatusBadRequest,
		Status:  "BAD_REQUEST",
		Message: "requête invalide",
	}
}

func NewUnauthorized() *CommonError {
	return &CommonError{
		Code:    http.StatusUnauthorized,
		Status:  "UNAUTHORIZED",
		Message: "authentification requise",
	}
}

func NewForbidden() *CommonError {
	return &CommonError{
		Code:    http.StatusForbidden,
		Status:  "FORBIDDEN",
		Message: "accès refusé",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:    http.StatusNotFound,
		Status:  "NOT_FOUND",
		Message: "ressource introuvable",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:    http.StatusConflict,
		Status:  "CONFLICT",
		Message: "conflit de ressource",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:    http.StatusInternalServerError,
		Status:  "INTERNAL_SERVER_ERROR",
		Message: "erreur interne du serveur",
	}
}
