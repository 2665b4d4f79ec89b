package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidCedula(t *testing.T) {
	valid := []string{"8-123-4567", "1-23-456", "PE-12-345", "E-8-123456", "N-23-1234", "4AV-56-789", "10PI-1-1"}
	invalid := []string{"", "8123-4567", "8-123", "X-12-345", "8--4567", "abc"}
	for _, cedula := range valid {
		if !IsValidCedula(cedula) {
			t.Errorf("IsValidCedula(%q) = false, want true", cedula)
		}
	}
	for _, cedula := range invalid {
		if IsValidCedula(cedula) {
			t.Errorf("IsValidCedula(%q) = true, want false", cedula)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	valid := []string{"2026-01", "2026-12", "2026-03-15", "2026-03-31"}
	invalid := []string{"2026-13", "2026-00", "2026-1", "2026-03-32", "26-03", "2026/03", ""}
	for _, p := range valid {
		if !IsValidPeriod(p) {
			t.Errorf("IsValidPeriod(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPeriod(p) {
			t.Errorf("IsValidPeriod(%q) = true, want false", p)
		}
	}
}

func TestIsValidYearMonth(t *testing.T) {
	valid := []string{"2026-01", "2026-12"}
	invalid := []string{"2026-03-15", "2026-13", "2026-1", ""}
	for _, p := range valid {
		if !IsValidYearMonth(p) {
			t.Errorf("IsValidYearMonth(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidYearMonth(p) {
			t.Errorf("IsValidYearMonth(%q) = true, want false", p)
		}
	}
}

func TestAreValidMonths(t *testing.T) {
	valid := [][]int{nil, {}, {1}, {1, 6, 12}}
	invalid := [][]int{{0}, {13}, {1, 0}, {-1}}
	for _, months := range valid {
		if !AreValidMonths(months) {
			t.Errorf("AreValidMonths(%v) = false, want true", months)
		}
	}
	for _, months := range invalid {
		if AreValidMonths(months) {
			t.Errorf("AreValidMonths(%v) = true, want false", months)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "cedula", Message: "invalid"},
		{Field: "base_salary", Message: "required"},
	}
	got := errs.Error()
	want := "cedula: invalid; base_salary: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "cedula", Message: "invalid"},
		{Field: "base_salary", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"cedula": "invalid", "base_salary": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
