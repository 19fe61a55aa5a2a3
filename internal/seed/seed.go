package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/forensicsite/internal/app/content"
	"github.com/yigit/forensicsite/internal/pkg/pagedata"
)

// Report is the outcome of seeding one page.
type Report struct {
	Realm     string
	Status    pagedata.LoadStatus
	Persisted bool
}

// SeedRealms loads every page of the registry. Pages with nothing stored are written
// with their defaults; stored pages are written back so migrated documents reach the
// store in their current shape. Corrupt documents are left alone.
func SeedRealms(ctx context.Context, registry *content.Registry, lgr zerolog.Logger) ([]Report, error) {
	lgr.Info().Msg("Checking/Creating default page content...")
	var finalErr error

	reports := make([]Report, 0, len(registry.Names()))
	for _, page := range registry.Pages() {
		status := page.Load(ctx)
		report := Report{Realm: page.Name(), Status: status}

		switch status {
		case pagedata.LoadSeeded:
			report.Persisted = page.PersistError() == nil
		case pagedata.LoadMerged:
			report.Persisted = page.SaveData(ctx)
		case pagedata.LoadCorrupt:
			lgr.Warn().Str("realm", page.Name()).Msg("Stored page content is unusable, defaults are served until the next save")
		}

		if status != pagedata.LoadCorrupt && !report.Persisted {
			err := fmt.Errorf("seed %s: %w", page.Name(), page.PersistError())
			lgr.Error().Err(err).Msg("Error writing page content")
			finalErr = errors.Join(finalErr, err)
		}

		lgr.Info().Str("realm", report.Realm).Str("status", string(status)).Bool("persisted", report.Persisted).Msg("Page content ready")
		reports = append(reports, report)
	}

	lgr.Info().Msg("Default page content check finished.")
	return reports, finalErr
}
