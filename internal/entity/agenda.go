package entity

// AgendaItem is the canonical record for one agenda item (TOP) in one
// document. Nil pointer fields mean the source text was too ambiguous to
// decide; that is a valid outcome, not an error.
type AgendaItem struct {
	MeetingDate      *string  `json:"meeting_date"`
	SourceFile       string   `json:"source_file"`
	Number           string   `json:"top_number"`
	Title            *string  `json:"top_title"`
	TitleIssues      []string `json:"title_issues"`
	Approved         *bool    `json:"approved"`
	ExplicitDecision *bool    `json:"explicit_decision"`
	VotesYes         *int     `json:"votes_yes"`
	VotesNo          *int     `json:"votes_no"`
	VotesAbstain     *int     `json:"votes_abstain"`
	PageStart        *int     `json:"page_start"`
	PageEnd          *int     `json:"page_end"`
	BlockLen         int      `json:"block_len"`
	RawExcerpt       string   `json:"raw_excerpt"`
}

// QASummary aggregates per-document counts for reporting.
type QASummary struct {
	File            string  `json:"file"`
	MeetingDate     *string `json:"meeting_date"`
	ItemCount       int     `json:"tops_detail"`
	ApprovedCount   int     `json:"approved"`
	RejectedCount   int     `json:"rejected"`
	UnknownCount    int     `json:"unknown"`
	UsedOCR         bool    `json:"used_ocr"`
	UsedLayout      bool    `json:"used_layout"`
	AvgCharsPerPage float64 `json:"avg_chars_per_page"`
}

// DocumentError records a per-document failure in a batch run.
type DocumentError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}
