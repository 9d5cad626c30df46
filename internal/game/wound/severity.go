// Package wound provides the severity-tiered wound catalog and the injury
// records wounds seed after a fight. Wounds are fight-scoped debuffs applied
// when a combatant's HP first falls through a threshold; their numeric
// effects are summed on demand by the fight engine.
package wound

// Severity tiers the wound catalog. Higher tiers unlock at lower HP.
type Severity int

const (
	// Minor wounds unlock when HP first falls below 75% of max.
	Minor Severity = iota
	// Major wounds unlock when HP first falls below 50% of max.
	Major
	// Critical wounds unlock when HP first falls below 25% of max.
	Critical
)

// String returns the lowercase label for the severity.
func (s Severity) String() string {
	switch s {
	case Minor:
		return "minor"
	case Major:
		return "major"
	case Critical:
		return "critical"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a defined severity.
func (s Severity) Valid() bool {
	return s >= Minor && s <= Critical
}

// ParseSeverity returns the Severity named by label, or false if the label
// is unknown.
func ParseSeverity(label string) (Severity, bool) {
	switch label {
	case "minor":
		return Minor, true
	case "major":
		return Major, true
	case "critical":
		return Critical, true
	default:
		return 0, false
	}
}

// Threshold pairs an HP percentage with the severity of wound it can
// inflict when crossed.
type Threshold struct {
	Percent  int
	Severity Severity
}

// Thresholds lists the HP thresholds in the strictly descending order they
// are checked. Each fires at most once per combatant per fight.
var Thresholds = [...]Threshold{
	{Percent: 75, Severity: Minor},
	{Percent: 50, Severity: Major},
	{Percent: 25, Severity: Critical},
}
