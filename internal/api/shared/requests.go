package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared struct-tag validator; validator.Validate is safe for concurrent use.
var validate = validator.New()

// DecodeJSON unmarshals the request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// ValidateRequest checks a decoded request against its validation rules.
// Types carrying their own Validate method are validated through it;
// everything else goes through the struct-tag validator.
func ValidateRequest(dst any) error {
	if v, ok := dst.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return validate.Struct(dst)
}
