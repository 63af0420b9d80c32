package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxBodyBytes = 1 << 20 // 1 MiB

var (
	errTitleNotString   = errors.New("title must be a string")
	errCompletedNotBool = errors.New("completed must be a boolean")
	errInvalidID        = errors.New("id must be an integer")
	errBodyTooLarge     = errors.New("payload too large")
)

// decodeJSON reads one JSON object into v. An empty body decodes as {}.
// Type mismatches on title/completed come back as their field errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		var sizeErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.As(err, &sizeErr):
			return errBodyTooLarge
		case errors.As(err, &typeErr) && typeErr.Field == "title":
			return errTitleNotString
		case errors.As(err, &typeErr) && typeErr.Field == "completed":
			return errCompletedNotBool
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return errors.New("invalid JSON: multiple JSON values")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
