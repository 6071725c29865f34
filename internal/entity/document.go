package entity

// Page is one page of extracted text after normalization.
type Page struct {
	PageIndex int    `json:"page_index"`
	Text      string `json:"text"`
	CharCount int    `json:"char_count"`
}

// IngestedDocument is the per-document corpus snapshot produced by the
// ingest pipeline. It is read-only for everything downstream.
type IngestedDocument struct {
	SourcePath      string  `json:"source_path"`
	Pages           []Page  `json:"pages"`
	UsedLayout      bool    `json:"used_layout"`
	UsedOCR         bool    `json:"used_ocr"`
	AvgCharsPerPage float64 `json:"avg_chars_per_page"`
}
