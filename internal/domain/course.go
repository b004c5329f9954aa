package domain

// Fragment is one atomic piece of rendered text with its baseline position on
// a page, as produced by the document renderer. Read-only input.
type Fragment struct {
	Text string
	X    float64
	Y    float64
}

// Line is a reconstructed visual line: fragment texts joined with single
// spaces, anchored at one baseline Y.
type Line struct {
	Text string
	Y    float64
}

// TermCode abbreviates an academic term.
type TermCode string

const (
	TermFall   TermCode = "FA"
	TermSpring TermCode = "SP"
	TermSummer TermCode = "SU"
)

// ParsedCourse is one course row recovered from the audit report.
// Immutable once created.
type ParsedCourse struct {
	Term    TermCode
	Year    int // 4-digit calendar year
	Subject string
	Number  string // 3-4 digit catalog number, optional trailing letter
	Credits float64
	Grade   string
	Title   string
}

// CourseStatus enumerates how a course entered the plan.
type CourseStatus string

const (
	StatusCompleted  CourseStatus = "completed"
	StatusInProgress CourseStatus = "in_progress"
	StatusCart       CourseStatus = "cart"
)

// CourseFlag annotates a course for display.
type CourseFlag string

const (
	FlagInProgress      CourseFlag = "in_progress"
	FlagWaitlisted      CourseFlag = "waitlisted"
	FlagNotOffered      CourseFlag = "not_offered"
	FlagNoLongerOffered CourseFlag = "no_longer_offered"
)

// Course is the display/runtime form of a plan entry.
type Course struct {
	ID      string // "SUBJECT NUMBER"
	Title   string
	Credits float64
	Grade   string
	Status  CourseStatus
	Flag    CourseFlag
}

// Term holds one term's courses plus totals derived from them. Terms are
// rebuilt whole on every change; the counters are never mutated independently.
type Term struct {
	Name            string
	TotalCredits    float64
	CompletedCount  int
	InProgressCount int
	CartCount       int
	Courses         []Course
}

// AcademicYear is one Fall-through-Summer bucket of the plan.
type AcademicYear struct {
	StartYear      int
	Label          string // "2022-2023"
	ClassYearLabel string // Freshman..Senior, then "Year N"
	Terms          []Term
}

// Plan sources distinguish uploaded reports from hand-built plans in storage.
const (
	SourceUpload = "upload"
	SourceManual = "manual"
)

// Stored statuses; cart is translated to planned at the persistence boundary.
const (
	StoredStatusCompleted  = "completed"
	StoredStatusInProgress = "in_progress"
	StoredStatusPlanned    = "planned"
)

// StoredCourse is the flattened persistence form of a plan entry.
type StoredCourse struct {
	Term     string  `json:"term"`
	CourseID string  `json:"courseId"`
	Title    string  `json:"title"`
	Credits  float64 `json:"credits"`
	Status   string  `json:"status"`
	Grade    string  `json:"grade,omitempty"`
}

// DocumentMeta identifies one uploaded report for re-upload detection.
type DocumentMeta struct {
	FileName    string
	ContentHash string // sha256 hex of the file bytes
}

// DocumentText is a rendered report: per-page fragments in page order.
type DocumentText struct {
	Meta  DocumentMeta
	Pages [][]Fragment
}

// CatalogCourse is a course looked up on the university guide site.
type CatalogCourse struct {
	CourseID    string
	Title       string
	Credits     float64
	Description string
}
