package model

import "time"

// ExportResult describes a CSV object written by the export unit.
type ExportResult struct {
	Bucket     string    `json:"bucket"`
	Key        string    `json:"key"`
	Records    int       `json:"records"`
	Columns    []string  `json:"columns"`
	ExportedAt time.Time `json:"exportedAt"`
}
