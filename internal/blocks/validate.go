package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-sitebuilder/internal/validation"
)

// ValidateData checks a block's payload against the schema registered for its
// kind. Unknown kinds validate clean: the renderer handles them with a
// placeholder, so validation never blocks a document that carries them.
func (r *Registry) ValidateData(block Block) error {
	entry, ok := r.Lookup(block.Kind)
	if !ok || len(entry.Schema) == 0 {
		return nil
	}

	payload, err := payloadMap(block.Data)
	if err != nil {
		return fmt.Errorf("blocks: inspect %s payload: %w", block.Kind, err)
	}
	return validation.ValidatePayload(entry.Schema, payload)
}

// ValidateRaw checks a raw JSON payload against the schema registered for a
// kind, for callers (template import) that validate before decoding.
func (r *Registry) ValidateRaw(kind Kind, raw json.RawMessage) error {
	entry, ok := r.Lookup(kind)
	if !ok || len(entry.Schema) == 0 {
		return nil
	}
	payload := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return fmt.Errorf("blocks: %s payload is not an object: %w", kind, err)
		}
	}
	return validation.ValidatePayload(entry.Schema, payload)
}

func payloadMap(data Data) (map[string]any, error) {
	switch typed := data.(type) {
	case nil:
		return map[string]any{}, nil
	case UnknownData:
		payload := map[string]any{}
		if len(typed.Raw) > 0 {
			if err := json.Unmarshal(typed.Raw, &payload); err != nil {
				return nil, err
			}
		}
		return payload, nil
	default:
		encoded, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{}
		if err := json.Unmarshal(encoded, &payload); err != nil {
			return nil, err
		}
		return payload, nil
	}
}
