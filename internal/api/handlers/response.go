package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON はレスポンスボディをJSONとして書き出します。
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeJSONError はエラーメッセージをJSONとして書き出します。
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
