package domain

// PageRecord represents one row of a landing-page performance extract,
// either the month-over-month or the year-over-year variant. The diff
// fields carry the comparison for whichever variant the row came from.
type PageRecord struct {
	Program     string `json:"program_category" csv:"program_category"`
	Channel     string `json:"default_channel" csv:"default_channel"`
	LandingPage string `json:"landing_page" csv:"Landing_page"`

	Sessions              float64 `json:"sessions" csv:"Session"`
	Conversions           float64 `json:"conversions" csv:"Conversions"`
	SessionsDiff          float64 `json:"sessions_difference"`
	ConversionsDiff       float64 `json:"conversions_difference"`
	ConversionRatePctDiff float64 `json:"conversion_rate_percent_difference"`
}

// Key returns the join identity of the record: program, channel and page.
func (r PageRecord) Key() PageKey {
	return PageKey{Program: r.Program, Channel: r.Channel, LandingPage: r.LandingPage}
}

// PageKey identifies a landing page within a program/channel combination.
// It is the composite key for the MoM/YoY outer join.
type PageKey struct {
	Program     string
	Channel     string
	LandingPage string
}

// SummaryRow is the outer join of a MoM and a YoY PageRecord for one page.
// A side missing from the join leaves its numeric fields at zero; after
// summarization every numeric field is therefore always present.
type SummaryRow struct {
	Program     string `json:"program_category"`
	Channel     string `json:"default_channel"`
	LandingPage string `json:"landing_page"`

	SessionsMoM        float64 `json:"sessions_mom"`
	SessionsYoY        float64 `json:"sessions_yoy"`
	SessionsMoMDiff    float64 `json:"sessions_mom_difference"`
	SessionsYoYDiff    float64 `json:"sessions_yoy_difference"`
	ConversionsMoM     float64 `json:"conversions_mom"`
	ConversionsYoY     float64 `json:"conversions_yoy"`
	ConversionsMoMDiff float64 `json:"conversions_mom_difference"`
	ConversionsYoYDiff float64 `json:"conversions_yoy_difference"`
	ConvRateMoMPctDiff float64 `json:"conversion_rate_mom_percent_difference"`
	ConvRateYoYPctDiff float64 `json:"conversion_rate_yoy_percent_difference"`
}

// Key returns the join identity of the summary row.
func (r SummaryRow) Key() PageKey {
	return PageKey{Program: r.Program, Channel: r.Channel, LandingPage: r.LandingPage}
}
