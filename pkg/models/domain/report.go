package domain

// Report is the renderer-agnostic form of an analysis snapshot, consumed by
// the terminal reporter.
type Report struct {
	Title       string
	Selection   string
	Respondents int
	Total       int
	Sections    []ReportSection
}

// ReportSection is one logical block of the report.
type ReportSection struct {
	Title   string
	Summary map[string]string
	Details []ReportDetail
}

// ReportDetail is a single named figure within a section.
type ReportDetail struct {
	Name        string
	Value       string
	Description string
}
