package gtp

import (
	"encoding/json"
	"reflect"
	"strings"
)

// knownJSONKeys returns the json tag names of v's exported struct fields,
// skipping fields tagged "-". v must be a struct or pointer to one.
func knownJSONKeys(v any) map[string]struct{} {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		keys[name] = struct{}{}
	}
	return keys
}

// extraFields collects the top-level members of data that do not correspond
// to any json-tagged field of v. Unknown upstream fields are preserved here
// rather than silently dropped, so newly added upstream fields stay reachable
// without a schema change. Returns nil when there is nothing extra.
func extraFields(data []byte, v any) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	known := knownJSONKeys(v)
	for k := range raw {
		if _, ok := known[k]; ok {
			delete(raw, k)
		}
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// mergeExtra re-serializes the marshalled struct body with the preserved
// extra fields folded back in. Known fields win on key collision.
func mergeExtra(body []byte, extra map[string]json.RawMessage) ([]byte, error) {
	if len(extra) == 0 {
		return body, nil
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(body, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
