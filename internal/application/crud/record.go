package crud

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Record is any JSON-encodable value carrying a unique "id" field.
type Record interface {
	RecordID() string
}

// displayFields are tried in order for confirmation messages.
var displayFields = []string{"name", "title"}

// DisplayName returns the record's name or title, falling back to its id.
func DisplayName[T Record](rec T) string {
	raw, err := json.Marshal(rec)
	if err != nil {
		return rec.RecordID()
	}
	return displayName(raw)
}

func displayName(raw []byte) string {
	for _, f := range displayFields {
		if v := gjson.GetBytes(raw, f); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return gjson.GetBytes(raw, "id").String()
}

// withID returns rec with its id field set.
func withID[T Record](rec T, id string) (T, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("encode record: %w", err)
	}
	raw, err = sjson.SetBytes(raw, "id", id)
	if err != nil {
		return rec, fmt.Errorf("set id: %w", err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return rec, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}

// merge overwrites the top-level fields of rec named in patch. The id field
// is never rewritten.
func merge[T Record](rec T, patch map[string]any) (T, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return rec, fmt.Errorf("encode record: %w", err)
	}
	keys := make([]string, 0, len(patch))
	for k := range patch {
		if k == "" || k == "id" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		raw, err = sjson.SetBytes(raw, gjson.Escape(k), patch[k])
		if err != nil {
			return rec, fmt.Errorf("set %s: %w", k, err)
		}
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return rec, fmt.Errorf("decode record: %w", err)
	}
	return out, nil
}
