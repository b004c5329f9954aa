package plan

import (
	"testing"

	"AuditScanner/internal/domain"
)

// verifyTermInvariants checks that a term's derived fields equal what its
// course list implies.
func verifyTermInvariants(t *testing.T, term domain.Term) {
	t.Helper()

	var credits float64
	var completed, inProgress, cart int
	for _, c := range term.Courses {
		credits += c.Credits
		switch c.Status {
		case domain.StatusCompleted:
			completed++
		case domain.StatusInProgress:
			inProgress++
		case domain.StatusCart:
			cart++
		}
	}

	if term.TotalCredits != credits {
		t.Fatalf("term %s: totalCredits = %v, courses sum to %v", term.Name, term.TotalCredits, credits)
	}
	if term.CompletedCount != completed || term.InProgressCount != inProgress || term.CartCount != cart {
		t.Fatalf("term %s: counts (%d,%d,%d) do not match courses (%d,%d,%d)",
			term.Name, term.CompletedCount, term.InProgressCount, term.CartCount, completed, inProgress, cart)
	}
}

func TestBuildBucketsOneAcademicYear(t *testing.T) {
	t.Parallel()

	records := []domain.ParsedCourse{
		{Term: domain.TermFall, Year: 2022, Subject: "CS", Number: "300", Credits: 3, Grade: "A", Title: "Programming II"},
		{Term: domain.TermSpring, Year: 2023, Subject: "MATH", Number: "222", Credits: 4, Grade: "B", Title: "Calculus II"},
		{Term: domain.TermSummer, Year: 2023, Subject: "BIO", Number: "101", Credits: 2, Grade: "CR", Title: "Field Biology"},
	}

	years := Build(records)
	if len(years) != 1 {
		t.Fatalf("expected one bucket, got %d", len(years))
	}

	year := years[0]
	if year.StartYear != 2022 || year.Label != "2022-2023" {
		t.Fatalf("unexpected bucket: %+v", year)
	}
	if year.ClassYearLabel != "Freshman" {
		t.Fatalf("earliest start must be Freshman, got %q", year.ClassYearLabel)
	}

	wantTerms := []string{"Fall 2022", "Spring 2023", "Summer 2023"}
	if len(year.Terms) != len(wantTerms) {
		t.Fatalf("expected %d terms, got %d", len(wantTerms), len(year.Terms))
	}
	for i, term := range year.Terms {
		if term.Name != wantTerms[i] {
			t.Fatalf("term %d: expected %q, got %q", i, wantTerms[i], term.Name)
		}
		if len(term.Courses) != 1 {
			t.Fatalf("term %q: expected 1 course, got %d", term.Name, len(term.Courses))
		}
		verifyTermInvariants(t, term)
	}
}

func TestBuildMaterializesEmptyTerms(t *testing.T) {
	t.Parallel()

	records := []domain.ParsedCourse{
		{Term: domain.TermFall, Year: 2023, Subject: "CS", Number: "300", Credits: 3, Grade: "A"},
	}

	years := Build(records)
	if len(years) != 1 {
		t.Fatalf("expected one bucket, got %d", len(years))
	}
	terms := years[0].Terms
	if len(terms) != 3 {
		t.Fatalf("expected three terms even when empty, got %d", len(terms))
	}
	for _, term := range terms[1:] {
		if len(term.Courses) != 0 || term.TotalCredits != 0 {
			t.Fatalf("expected empty term, got %+v", term)
		}
	}
}

func TestBuildOrdersYearsAndAssignsOrdinals(t *testing.T) {
	t.Parallel()

	records := []domain.ParsedCourse{
		{Term: domain.TermSpring, Year: 2026, Subject: "CS", Number: "500", Credits: 3, Grade: "INP"},
		{Term: domain.TermFall, Year: 2022, Subject: "CS", Number: "200", Credits: 3, Grade: "A"},
		{Term: domain.TermFall, Year: 2024, Subject: "CS", Number: "400", Credits: 3, Grade: "A"},
	}

	years := Build(records)
	if len(years) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(years))
	}

	wantStarts := []int{2022, 2024, 2025}
	wantLabels := []string{"Freshman", "Sophomore", "Junior"}
	for i, year := range years {
		if year.StartYear != wantStarts[i] {
			t.Fatalf("bucket %d: start %d, want %d", i, year.StartYear, wantStarts[i])
		}
		if year.ClassYearLabel != wantLabels[i] {
			t.Fatalf("bucket %d: label %q, want %q", i, year.ClassYearLabel, wantLabels[i])
		}
	}
}

func TestCourseFromRecordStatus(t *testing.T) {
	t.Parallel()

	done := CourseFromRecord(domain.ParsedCourse{Subject: "CS", Number: "300", Grade: "A", Credits: 3})
	if done.Status != domain.StatusCompleted || done.Flag != "" {
		t.Fatalf("graded course must be completed: %+v", done)
	}
	if done.ID != "CS 300" {
		t.Fatalf("unexpected id: %q", done.ID)
	}

	inp := CourseFromRecord(domain.ParsedCourse{Subject: "CS", Number: "400", Grade: "inp", Credits: 3})
	if inp.Status != domain.StatusInProgress || inp.Flag != domain.FlagInProgress {
		t.Fatalf("INP grade must mark in progress: %+v", inp)
	}
}

func TestEmptyPlanFourYears(t *testing.T) {
	t.Parallel()

	years := Empty(2025)
	if len(years) != 4 {
		t.Fatalf("expected four buckets, got %d", len(years))
	}

	wantLabels := []string{"Freshman", "Sophomore", "Junior", "Senior"}
	for i, year := range years {
		if year.StartYear != 2025+i {
			t.Fatalf("bucket %d: start %d", i, year.StartYear)
		}
		if year.ClassYearLabel != wantLabels[i] {
			t.Fatalf("bucket %d: label %q", i, year.ClassYearLabel)
		}
		if len(year.Terms) != 3 {
			t.Fatalf("bucket %d: %d terms", i, len(year.Terms))
		}
		for _, term := range year.Terms {
			if len(term.Courses) != 0 {
				t.Fatalf("manual plan must start empty: %+v", term)
			}
			verifyTermInvariants(t, term)
		}
	}
}

func TestAddAndRemoveCourseRebuildTerm(t *testing.T) {
	t.Parallel()

	years := Empty(2025)
	course := domain.Course{ID: "CS 300", Title: "Programming II", Credits: 3, Status: domain.StatusCart}

	years, ok := AddCourse(years, "Fall 2025", course)
	if !ok {
		t.Fatal("expected term to be found")
	}
	term := years[0].Terms[0]
	if term.CartCount != 1 || term.TotalCredits != 3 {
		t.Fatalf("add did not rebuild the term: %+v", term)
	}
	verifyTermInvariants(t, term)

	years, ok = RemoveCourse(years, "Fall 2025", "CS 300")
	if !ok {
		t.Fatal("expected course to be removed")
	}
	term = years[0].Terms[0]
	if term.CartCount != 0 || term.TotalCredits != 0 || len(term.Courses) != 0 {
		t.Fatalf("remove did not rebuild the term: %+v", term)
	}

	if _, ok := AddCourse(years, "Fall 1999", course); ok {
		t.Fatal("unknown term must report not found")
	}
	if _, ok := RemoveCourse(years, "Fall 2025", "CS 300"); ok {
		t.Fatal("removing an absent course must report not found")
	}
}

func TestFlattenTranslatesCartToPlanned(t *testing.T) {
	t.Parallel()

	years := Empty(2025)
	years, _ = AddCourse(years, "Fall 2025", domain.Course{ID: "CS 300", Credits: 3, Status: domain.StatusCart})
	years, _ = AddCourse(years, "Spring 2026", domain.Course{ID: "CS 400", Credits: 3, Grade: "A", Status: domain.StatusCompleted})

	flat := Flatten(years)
	if len(flat) != 2 {
		t.Fatalf("expected 2 stored courses, got %d", len(flat))
	}
	if flat[0].Status != domain.StoredStatusPlanned {
		t.Fatalf("cart must flatten to planned, got %q", flat[0].Status)
	}
	if flat[0].Term != "Fall 2025" || flat[0].CourseID != "CS 300" {
		t.Fatalf("unexpected stored course: %+v", flat[0])
	}
	if flat[1].Status != domain.StoredStatusCompleted || flat[1].Grade != "A" {
		t.Fatalf("completed must pass through: %+v", flat[1])
	}
}
