package entities

import (
	"encoding/json"
	"testing"
)

func TestParseGenderLabels(t *testing.T) {
	cases := map[string]Gender{
		"Female": GenderFemale,
		"Male":   GenderMale,
		"Other":  GenderOther,
	}
	for label, want := range cases {
		got, err := ParseGender(label)
		if err != nil {
			t.Fatalf("ParseGender(%q) error: %v", label, err)
		}
		if got != want {
			t.Fatalf("ParseGender(%q) = %v, want %v", label, got, want)
		}
		if got.String() != label {
			t.Fatalf("label round-trip: got %q want %q", got.String(), label)
		}
	}
}

func TestParseGenderRejectsUnknown(t *testing.T) {
	for _, label := range []string{"Unknown", "male", "", "FEMALE"} {
		_, err := ParseGender(label)
		if !IsKind(err, KindInvalidEnumValue) {
			t.Fatalf("ParseGender(%q): expected invalid enum value, got %v", label, err)
		}
	}
}

func TestGenderScanAndValue(t *testing.T) {
	var g Gender
	if err := g.Scan([]byte("Other")); err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if g != GenderOther {
		t.Fatalf("Scan got %v", g)
	}

	v, err := g.Value()
	if err != nil {
		t.Fatalf("Value error: %v", err)
	}
	if v != "Other" {
		t.Fatalf("Value = %v, want Other", v)
	}

	if err := g.Scan("Droid"); err == nil {
		t.Fatalf("expected scan of unknown label to fail")
	}
	if _, err := Gender(0).Value(); err == nil {
		t.Fatalf("expected zero gender to be rejected")
	}
}

func TestGenderJSON(t *testing.T) {
	b, err := json.Marshal(GenderMale)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"Male"` {
		t.Fatalf("marshal = %s", b)
	}

	var g Gender
	if err := json.Unmarshal([]byte(`"Female"`), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if g != GenderFemale {
		t.Fatalf("unmarshal got %v", g)
	}
}
