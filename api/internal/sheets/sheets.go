// Package sheets appends task rows to the shared Google Sheets log.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	rangeA1       string
}

func New(ctx context.Context, credentialsJSON []byte, spreadsheetID, rangeA1 string) (*Client, error) {
	svc, err := gsheets.NewService(ctx, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID, rangeA1: rangeA1}, nil
}

// AppendRow appends one row of columns to the task log. Column order is
// the deployment contract with the sheet; callers build rows via the task
// package so both shapes stay in sync.
func (c *Client) AppendRow(ctx context.Context, columns []string) error {
	row := make([]interface{}, len(columns))
	for i, v := range columns {
		row[i] = v
	}
	vr := &gsheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, c.rangeA1, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets append: %w", err)
	}
	return nil
}
