// Package config provides configuration management for the landing page
// report generator.
//
// Configuration is layered: built-in defaults (the canonical monthly report
// run), an optional config.yaml, then environment variables with the LPR
// prefix. The result is validated before use.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The package also centralizes filesystem paths. All paths are resolved
// relative to the executable location via GetPaths, so generated reports and
// logs land in the same place regardless of the working directory:
//
//	paths, err := config.GetPaths()
//	out := paths.GetReportPath(cfg.Report.OutputFile)
//
// Environment variable examples:
//
//	LPR_REPORT_MOM_FILE=mom.csv
//	LPR_REPORT_TOP_N=5
//	LPR_LOGGING_LEVEL=debug
package config
