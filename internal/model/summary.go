package model

import "time"

// RunSummary captures metrics from a single census generation run.
type RunSummary struct {
	RunID      string
	Month      int
	Year       int
	OutputPath string // empty when NoData
	NoData     bool   // no input files matched the target month/year

	FilesFound   int
	FilesMatched int
	FilesSkipped int
	RowsRead     int64
	RowsSkipped  int64

	Patients         int
	StandardPatients int
	MedicaidPatients int

	DurationAggregate time.Duration
	DurationRender    time.Duration
	DurationTotal     time.Duration
}
