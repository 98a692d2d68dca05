package gtp

import (
	"errors"
	"testing"
)

func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestQuery_NilValuesOmitted(t *testing.T) {
	q := NewQuery().
		SetString("name", nil).
		SetBool("approved", nil).
		SetInt("targetId", nil).
		SetFloat("molWeight", nil).
		SetRange("logP", nil, nil)

	if got := q.Encode(); got != "" {
		t.Errorf("Expected empty query string, got %q", got)
	}
}

func TestQuery_EmptyStringOmitted(t *testing.T) {
	q := NewQuery().SetString("name", strPtr(""))
	if got := q.Encode(); got != "" {
		t.Errorf("Expected empty string filter to be omitted, got %q", got)
	}
}

func TestQuery_BoolSerializesLowercase(t *testing.T) {
	q := NewQuery().
		SetBool("immuno", boolPtr(true)).
		SetBool("malaria", boolPtr(false))

	v := q.Values()
	if got := v.Get("immuno"); got != "true" {
		t.Errorf("Expected immuno=true, got %q", got)
	}
	if got := v.Get("malaria"); got != "false" {
		t.Errorf("Expected malaria=false, got %q", got)
	}
}

func TestQuery_RangeBothBounds(t *testing.T) {
	q := NewQuery().SetRange("molWeight", floatPtr(100), floatPtr(300))

	v := q.Values()
	if got := v.Get("molWeightGt"); got != "100" {
		t.Errorf("Expected molWeightGt=100, got %q", got)
	}
	if got := v.Get("molWeightLt"); got != "300" {
		t.Errorf("Expected molWeightLt=300, got %q", got)
	}
}

func TestQuery_RangeSingleBound(t *testing.T) {
	q := NewQuery().SetRange("tpsa", floatPtr(75.5), nil)

	v := q.Values()
	if got := v.Get("tpsaGt"); got != "75.5" {
		t.Errorf("Expected tpsaGt=75.5, got %q", got)
	}
	if _, ok := v["tpsaLt"]; ok {
		t.Error("Expected tpsaLt to be absent")
	}
}

func TestQuery_FloatMinimalDigits(t *testing.T) {
	q := NewQuery().SetFloat("molWeightGt", floatPtr(100.0))
	if got := q.Values().Get("molWeightGt"); got != "100" {
		t.Errorf("Expected 100, got %q", got)
	}
}

func TestPathID_Valid(t *testing.T) {
	seg, err := PathID("target_id", 42)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if seg != "42" {
		t.Errorf("Expected segment 42, got %q", seg)
	}
}

func TestPathID_Invalid(t *testing.T) {
	for _, id := range []int{0, -1, -999} {
		_, err := PathID("target_id", id)
		if err == nil {
			t.Fatalf("Expected error for id %d", id)
		}
		var invalid *InvalidParameterError
		if !errors.As(err, &invalid) {
			t.Errorf("Expected InvalidParameterError for id %d, got %T", id, err)
		}
		if invalid.Param != "target_id" {
			t.Errorf("Expected param target_id, got %q", invalid.Param)
		}
	}
}
