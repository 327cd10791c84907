package domain

// programOrder is the official program ordering from the monthly report.
// Report sections always follow this sequence regardless of input row order,
// and programs outside the list never appear in output.
var programOrder = []string{
	"Informatics",
	"CyberOps",
	"CyberEng",
	"MED",
	"LEPSL",
	"Data Science",
	"MSAAI",
	"MSLDT",
	"MTS",
	"MESH",
	"MSHA",
	"MSNP",
	"EML",
	"MSITL",
	"MSNNL",
}

// programNames maps program codes to their display names.
var programNames = map[string]string{
	"Informatics":  "Health Care Informatics",
	"CyberOps":     "Cyber Security Operations and Leadership",
	"CyberEng":     "Cyber Security Engineering",
	"MED":          "Education",
	"LEPSL":        "Law Enforcement and Public Safety Leadership",
	"Data Science": "Applied Data Science",
	"MSAAI":        "Applied Artificial Intelligence",
	"MSLDT":        "Learning Design and Technology",
	"MTS":          "Theological Studies",
	"MESH":         "Engineering for Sustainability & Health",
	"MSHA":         "Humanitarian Action",
	"MSNP":         "Nonprofit Leadership & Management",
	"EML":          "Engineering Management and Leadership",
	"MSITL":        "Information Technology Leadership",
	"MSNNL":        "MSN Nursing Leadership",
}

// programIndex is derived once from programOrder for O(1) rank lookups.
var programIndex = func() map[string]int {
	idx := make(map[string]int, len(programOrder))
	for i, p := range programOrder {
		idx[p] = i
	}
	return idx
}()

// ProgramOrder returns the official program ordering. The returned slice is
// a copy; callers may not mutate the canonical list.
func ProgramOrder() []string {
	out := make([]string, len(programOrder))
	copy(out, programOrder)
	return out
}

// ProgramRank returns the position of a program code in the official order.
// The second return value is false for programs outside the enumeration.
func ProgramRank(program string) (int, bool) {
	i, ok := programIndex[program]
	return i, ok
}

// ProgramDisplayName returns the human-readable name for a program code,
// falling back to the code itself for unknown programs.
func ProgramDisplayName(program string) string {
	if name, ok := programNames[program]; ok {
		return name
	}
	return program
}
