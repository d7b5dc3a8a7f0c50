package screening

// ResolveOverallRisk combines per-instrument results into one overall risk
// label by dominance, not averaging: any severe or moderately-severe result
// makes the whole submission high risk, any moderate result makes it medium,
// everything else is low. Zero results resolve to low.
//
// Both the submission path and the profile dashboard summary use this; the
// dominance rule lives only here.
func ResolveOverallRisk(results []AssessmentResult) RiskLevel {
	overall := RiskLevelLow
	for _, result := range results {
		switch result.Severity {
		case SeveritySevere, SeverityModeratelySevere:
			return RiskLevelHigh
		case SeverityModerate:
			overall = RiskLevelMedium
		}
	}
	return overall
}
