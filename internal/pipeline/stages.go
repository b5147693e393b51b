package pipeline

import (
	"context"
	"fmt"
	"time"

	"tourpipe/internal/dataset"
	"tourpipe/internal/derive"
	"tourpipe/internal/enrich"
	"tourpipe/internal/ingest"
	"tourpipe/internal/merge"
	"tourpipe/internal/report"
)

// loadSnapshots seeds the tour table from the previous run's outputs. Always
// the first stage: a missing snapshot is a first run, a corrupt one is fatal.
func (p *Pipeline) loadSnapshots() Stage {
	return stageFunc{name: "load-snapshots", run: func(ctx context.Context, state *State) error {
		tours, err := dataset.LoadTours(p.cfg.ToursPath())
		if err != nil {
			return err
		}
		carousel, err := dataset.LoadCarousel(p.cfg.CarouselPath())
		if err != nil {
			return err
		}
		state.PriorTours = tours
		state.PriorCarousel = carousel
		state.Table = merge.NewTable(tours)
		state.Pros = merge.NewProfessionalSet()
		return nil
	}}
}

func (p *Pipeline) ingestCSV() Stage {
	return stageFunc{name: "ingest", run: func(ctx context.Context, state *State) error {
		rows, err := ingest.ReadFile(p.cfg.Paths.SourceCSV)
		if err != nil {
			return fmt.Errorf("read source sheet: %w", err)
		}
		state.Rows = rows
		return nil
	}}
}

func (p *Pipeline) foldRows() Stage {
	return stageFunc{name: "merge", run: func(ctx context.Context, state *State) error {
		state.FoldStats = merge.FoldRows(state.Rows, state.Table, state.Pros, p.logger)
		return nil
	}}
}

func (p *Pipeline) enrichTours() Stage {
	return stageFunc{name: "enrich", run: func(ctx context.Context, state *State) error {
		enricher := enrich.New(enrich.Options{
			Client:         p.client,
			CacheDir:       p.cfg.Paths.CacheDir,
			AssetDir:       p.cfg.Paths.AssetDir,
			Concurrency:    p.cfg.Enrich.Concurrency,
			Timeout:        time.Duration(p.cfg.Enrich.TimeoutSeconds) * time.Second,
			UserAgent:      p.cfg.Enrich.UserAgent,
			DownloadCovers: p.cfg.Enrich.DownloadCovers,
			Logger:         p.logger,
		})
		state.EnrichSummary = enricher.Run(ctx, state.Table)
		return nil
	}}
}

func (p *Pipeline) pruneUnreadable() Stage {
	return stageFunc{name: "report", run: func(ctx context.Context, state *State) error {
		state.Removed = report.RemovalCandidates(state.Table, state.PriorTours)
		report.Prune(state.Table, state.Pros, state.Removed, p.logger)

		if len(state.EnrichSummary.Missing) == 0 || p.dryRun {
			return nil
		}
		rep := report.Build(p.now(), state.EnrichSummary, state.Removed)
		path, err := report.Write(p.cfg.ReportDir(), rep)
		if err != nil {
			return err
		}
		state.ReportPath = path
		return nil
	}}
}

func (p *Pipeline) deriveTables() Stage {
	return stageFunc{name: "derive", run: func(ctx context.Context, state *State) error {
		state.CategoryTags, state.DeviceTags = derive.Tags(state.Table.Tours())
		state.Carousel = derive.Carousel(state.Table.Tours(), state.Table.CarouselOrder(), state.PriorCarousel, derive.CarouselOptions{
			ImageDir:   p.cfg.Carousel.ImageDir,
			Extensions: p.cfg.Carousel.Extensions,
		})
		return nil
	}}
}

func (p *Pipeline) writeSnapshots() Stage {
	return stageFunc{name: "write", run: func(ctx context.Context, state *State) error {
		if p.dryRun {
			return nil
		}
		if err := dataset.WriteTours(p.cfg.ToursPath(), state.Table.Tours()); err != nil {
			return err
		}
		if state.Pros != nil {
			if err := dataset.WriteProfessionals(p.cfg.ProfessionalsPath(), state.Pros.Professionals()); err != nil {
				return err
			}
		}
		if err := dataset.WriteTags(p.cfg.CategoryTagsPath(), state.CategoryTags); err != nil {
			return err
		}
		if err := dataset.WriteTags(p.cfg.DeviceTagsPath(), state.DeviceTags); err != nil {
			return err
		}
		return dataset.WriteCarousel(p.cfg.CarouselPath(), state.Carousel)
	}}
}

// writeToursOnly persists just the tour table, for enrichment-only passes
// that must not regenerate the professional or derived tables.
func (p *Pipeline) writeToursOnly() Stage {
	return stageFunc{name: "write", run: func(ctx context.Context, state *State) error {
		if p.dryRun {
			return nil
		}
		return dataset.WriteTours(p.cfg.ToursPath(), state.Table.Tours())
	}}
}

// writeDerivedOnly persists just the tag and carousel tables.
func (p *Pipeline) writeDerivedOnly() Stage {
	return stageFunc{name: "write", run: func(ctx context.Context, state *State) error {
		if p.dryRun {
			return nil
		}
		if err := dataset.WriteTags(p.cfg.CategoryTagsPath(), state.CategoryTags); err != nil {
			return err
		}
		if err := dataset.WriteTags(p.cfg.DeviceTagsPath(), state.DeviceTags); err != nil {
			return err
		}
		return dataset.WriteCarousel(p.cfg.CarouselPath(), state.Carousel)
	}}
}
