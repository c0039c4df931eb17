package usecase

import (
	"context"

	"github.com/tubevault/tubevault/internal/progress"
	"github.com/tubevault/tubevault/internal/takeout"
)

// HistoryReport extends the batch counters with the number of export
// entries that carried no resolvable video id.
type HistoryReport struct {
	BatchReport
	Unavailable int
}

// ArchiveHistory archives every video in a watch-history export and records
// the deduplicated watch events. Entry-level failures never stop the batch.
func (a *Archiver) ArchiveHistory(ctx context.Context, export takeout.HistoryExport) (HistoryReport, error) {
	report := HistoryReport{
		BatchReport: BatchReport{Total: len(export.Entries)},
		Unavailable: export.Unavailable,
	}

	reporter := progress.NewReporter(a.progressOut, a.logger, int64(report.Total), "archiving history")
	defer reporter.Done()

	for _, entry := range export.Entries {
		reporter.Step(entry.VideoID)

		if _, err := a.ArchiveVideo(ctx, entry.VideoID); err != nil {
			a.logger.Error("failed to archive watched video",
				"video", entry.VideoID, "error", err)
			report.Failed++
			continue
		}

		added, err := a.history.AddWatch(ctx, entry)
		if err != nil {
			a.logger.Error("failed to record watch event",
				"video", entry.VideoID, "error", err)
			report.Failed++
			continue
		}
		if !added {
			report.Skipped++
			continue
		}
		report.Archived++
	}

	a.logger.Info("history archived",
		"archived", report.Archived, "failed", report.Failed,
		"skipped", report.Skipped, "unavailable", report.Unavailable)
	return report, nil
}
