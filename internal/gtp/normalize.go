package gtp

import (
	"bytes"
	"encoding/json"
)

// Normalization maps raw upstream bodies onto the typed records in models.go.
// Upstream endpoints are inconsistent about shape: list endpoints may return a
// bare object for a single hit, single lookups may return a one-element array
// or an empty body for "not found". Both decoders absorb that variance so the
// tool layer sees one stable contract.

// DecodeList maps a JSON array onto an ordered slice of records, preserving
// upstream order (rank-order lists are significant). An empty or null body
// yields an empty, non-nil slice. A bare object is treated as a one-element
// list.
func DecodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '{' {
		var one T
		if err := json.Unmarshal(trimmed, &one); err != nil {
			return nil, &UpstreamMalformedResponseError{Err: err}
		}
		return []T{one}, nil
	}

	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, &UpstreamMalformedResponseError{Err: err}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// DecodeOne maps a single-object body onto exactly one record. An empty body,
// null, or empty array is the upstream's 404-equivalent payload and yields
// (nil, nil) — an explicit not-found, never a zero-valued record.
func DecodeOne[T any](body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		list, err := DecodeList[T](trimmed)
		if err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, nil
		}
		return &list[0], nil
	}

	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, &UpstreamMalformedResponseError{Err: err}
	}
	return &out, nil
}
