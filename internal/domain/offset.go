package domain

// LeadTimeMinutes maps an importance level to the number of minutes before a
// peak window's start at which a supportive notification fires. Higher
// self-reported importance warrants earlier intervention.
func LeadTimeMinutes(importance int) int {
	switch {
	case importance <= 3:
		return 5
	case importance <= 6:
		return 10
	case importance <= 8:
		return 15
	default:
		return 20
	}
}
