package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

// Guard builds the middleware protecting a route. Routes pass the
// permissions that grant access; any one of them is enough.
type Guard func(perms ...model.Permission) func(http.Handler) http.Handler

// OpenGuard lets every request through.
func OpenGuard(...model.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

// idParam reads the {id} path parameter. Ids that are not numbers cannot
// match a row, so the caller reports them as not found.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}
