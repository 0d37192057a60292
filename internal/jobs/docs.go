// Package jobs runs scheduled background work with github.com/robfig/cron/v3.
//
// StockSummaryJob logs unit counts and summed amounts per status on the
// schedule given by STOCK_SUMMARY_SCHEDULE (six fields, seconds first):
//
//	jm := jobs.NewJobManager(summaryHandler, "0 */5 * * * *", logger)
//	if err := jm.StartAll(); err != nil {
//		return err
//	}
//	defer jm.StopAll()
package jobs
