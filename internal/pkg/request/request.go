// Package request decodes JSON request bodies under the global size ceiling.
// The distinct sentinel errors let handlers keep the wire messages apart:
// an oversized body is not "invalid JSON", and an empty body is neither.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes is the absolute request payload ceiling. Bodies larger than
// this are rejected mid-read; there is no wall-clock timeout.
const MaxBodyBytes = 1_000_000

var (
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrInvalidJSON     = errors.New("invalid json")
	ErrEmptyBody       = errors.New("empty body")
)

// DecodeJSON reads the whole body and unmarshals it into dst.
func DecodeJSON(c *gin.Context, dst interface{}) error {
	raw, err := readBody(c)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

// DecodeJSONObject unmarshals the body twice: once as a raw key map so the
// caller can tell an empty object from a sparse one, and once into dst.
func DecodeJSONObject(c *gin.Context, dst interface{}) (map[string]json.RawMessage, error) {
	raw, err := readBody(c)
	if err != nil {
		return nil, err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, ErrInvalidJSON
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, ErrInvalidJSON
	}
	return keys, nil
}

// ParseID parses a positive integer path parameter. Zero, negatives and
// non-numeric input are all rejected.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func readBody(c *gin.Context) ([]byte, error) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, ErrPayloadTooLarge
		}
		return nil, ErrInvalidJSON
	}
	if len(raw) == 0 {
		return nil, ErrEmptyBody
	}
	return raw, nil
}
