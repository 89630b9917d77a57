package response_models

// ImportResult is the terminal summary of one spreadsheet sync run.
type ImportResult struct {
	Success      bool           `json:"success"`
	SyncedCount  int            `json:"synced_count"`
	SkippedCount int            `json:"skipped_count"`
	ErrorCount   int            `json:"error_count"`
	Message      string         `json:"message"`
	ColumnMapping map[string]int `json:"column_mapping"`
	FoundHeaders []string       `json:"found_headers"`
	Errors       []string       `json:"errors,omitempty"`
}
