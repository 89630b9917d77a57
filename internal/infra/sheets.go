package infra

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SpreadsheetSource hands back a raw 2-D grid of string cells. Row 1 is the
// header row; column order is not guaranteed.
type SpreadsheetSource interface {
	FetchGrid(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

type googleSheetsSource struct {
	apiKey string
}

func NewGoogleSheetsSource(apiKey string) SpreadsheetSource {
	return &googleSheetsSource{apiKey: apiKey}
}

func (g *googleSheetsSource) FetchGrid(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	svc, err := sheets.NewService(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	if readRange == "" {
		readRange = "A:Z"
	}

	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %s: %w", spreadsheetID, err)
	}

	grid := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprintf("%v", cell))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
