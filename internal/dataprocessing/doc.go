// Package dataprocessing implements the tabular transformations of the
// landing page report pipeline, from file ingestion to the merged summary
// table the report is rendered from.
//
// # Architecture
//
// The package is organized into four steps, applied in order:
//
//  1. Loader: reads a MoM or YoY dashboard extract (CSV or XLSX) into records
//  2. Channel filter: retains only rows from the channels of interest
//  3. Ranker: selects the top N pages per program/channel group by sessions
//  4. Summarizer: outer-joins the two ranked tables and applies the
//     canonical program/channel ordering
//
// # Usage
//
//	mom, err := dataprocessing.LoadTable("mom.csv", dataprocessing.MoMColumns)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mom = dataprocessing.FilterChannels(mom, channels)
//	top := dataprocessing.TopPages(mom, 3, dataprocessing.BySessions)
//
//	summarizer := dataprocessing.NewSummarizer(logger)
//	summary := summarizer.Merge(ctx, momTop, yoyTop)
//
// # Error Handling
//
// Loading returns typed errors from the internal errors package: FILE_ACCESS
// for missing files, PARSING for malformed tabular input or missing required
// columns. Missing optional numeric cells are not errors; they default to
// zero, as do metrics for pages present on only one side of the merge.
package dataprocessing
