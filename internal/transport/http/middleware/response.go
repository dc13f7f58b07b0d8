package middleware

import (
	"encoding/json"
	"net/http"
)

// writeFailure writes a failure envelope with the correct Content-Type.
// Status is always 200; clients branch on the success flag.
func writeFailure(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": msg})
}
