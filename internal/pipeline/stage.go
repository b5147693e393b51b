package pipeline

import (
	"context"

	"tourpipe/internal/dataset"
	"tourpipe/internal/enrich"
	"tourpipe/internal/ingest"
	"tourpipe/internal/merge"
)

// Stage is one sequential step of a run. Stages communicate through the
// shared State; each depends only on what earlier stages produced.
type Stage interface {
	Name() string
	Run(ctx context.Context, state *State) error
}

// State carries the intermediate products of a run between stages.
type State struct {
	Rows []ingest.Row

	PriorTours    []dataset.Tour
	PriorCarousel []dataset.CarouselEntry

	Table *merge.Table
	Pros  *merge.ProfessionalSet

	FoldStats     merge.FoldStats
	EnrichSummary enrich.Summary

	CategoryTags []dataset.Tag
	DeviceTags   []dataset.Tag
	Carousel     []dataset.CarouselEntry

	Removed    []string
	ReportPath string
}

type stageFunc struct {
	name string
	run  func(ctx context.Context, state *State) error
}

func (s stageFunc) Name() string                                { return s.name }
func (s stageFunc) Run(ctx context.Context, state *State) error { return s.run(ctx, state) }
