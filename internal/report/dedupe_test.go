package report

import (
	"reflect"
	"testing"

	"AuditScanner/internal/domain"
)

func TestDedupeCollapsesRepeatedSections(t *testing.T) {
	t.Parallel()

	layout := defaultLayout(t)
	first := layout.ParseRow("FA23 MATH222 4 A Calc")
	second := layout.ParseRow("FA23 MATH222 4 A Calc")
	if first == nil || second == nil {
		t.Fatal("rows did not parse")
	}

	out := Dedupe([]domain.ParsedCourse{*first, *second})
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
}

func TestDedupeIgnoresTitleDifferences(t *testing.T) {
	t.Parallel()

	records := []domain.ParsedCourse{
		{Term: domain.TermFall, Year: 2023, Subject: "MATH", Number: "222", Credits: 4, Grade: "A", Title: "Calculus & Analytic Geometry 2"},
		{Term: domain.TermFall, Year: 2023, Subject: "math", Number: "222", Credits: 4, Grade: "a", Title: "Calc An Geom 2"},
	}

	out := Dedupe(records)
	if len(out) != 1 {
		t.Fatalf("expected title differences to collapse, got %d records", len(out))
	}
	if out[0].Title != "Calculus & Analytic Geometry 2" {
		t.Fatalf("first occurrence must win, got %q", out[0].Title)
	}
}

func TestDedupeKeepsDistinctEnrollments(t *testing.T) {
	t.Parallel()

	records := []domain.ParsedCourse{
		{Term: domain.TermFall, Year: 2023, Subject: "CS", Number: "300", Credits: 3, Grade: "A"},
		{Term: domain.TermSpring, Year: 2024, Subject: "CS", Number: "300", Credits: 3, Grade: "A"},
		{Term: domain.TermFall, Year: 2023, Subject: "CS", Number: "400", Credits: 3, Grade: "A"},
	}

	out := Dedupe(records)
	if !reflect.DeepEqual(out, records) {
		t.Fatalf("distinct records must survive in order: %+v", out)
	}
}

func TestDedupeIsIdempotent(t *testing.T) {
	t.Parallel()

	records := []domain.ParsedCourse{
		{Term: domain.TermFall, Year: 2023, Subject: "CS", Number: "300", Credits: 3, Grade: "A"},
		{Term: domain.TermFall, Year: 2023, Subject: "CS", Number: "300", Credits: 3, Grade: "A"},
		{Term: domain.TermSpring, Year: 2024, Subject: "MATH", Number: "222", Credits: 4, Grade: "B"},
	}

	once := Dedupe(records)
	twice := Dedupe(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("dedupe is not idempotent: %+v vs %+v", once, twice)
	}
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"  comp   sci ", "COMP SCI"},
		{"a", "A"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Canonicalize(tc.in); got != tc.want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
