package request

import (
	"bytes"
	"encoding/json"

	"github.com/connaissance/fest-api/internal/domain"
)

// UpdateSiteConfigRequest is the settings body. Values are not validated;
// keys that name no setting are dropped whatever their value.
type UpdateSiteConfigRequest map[string]json.RawMessage

// Values returns the recognised settings as text. Strings are taken as is
// and any other JSON value keeps its literal form.
func (req UpdateSiteConfigRequest) Values() map[string]string {
	values := make(map[string]string, len(req))
	for key, raw := range req {
		if !domain.IsSiteConfigKey(key) {
			continue
		}

		raw = bytes.TrimSpace(raw)
		if len(raw) > 0 && raw[0] == '"' {
			values[key] = jsonText(raw)
			continue
		}
		values[key] = string(raw)
	}

	return values
}
