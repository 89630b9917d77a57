package request_models

type ImportSheetRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" binding:"required"`
	ReadRange     string `json:"read_range"`
}

// ImportRowsRequest feeds the importer directly, bypassing the Google
// Sheets fetch. Row 0 must be the header row.
type ImportRowsRequest struct {
	Rows [][]string `json:"rows" binding:"required,min=1"`
}
