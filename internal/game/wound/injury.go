package wound

import "github.com/google/uuid"

// Injury is a persistent post-fight record seeded from a wound. The
// progression layer owns it from here; the engine only mints it.
type Injury struct {
	ID       string
	Name     string
	Severity Severity

	// Source describes what inflicted the injury, for roster display.
	Source string
}

// NewInjury mints an injury record with a fresh instance ID.
func NewInjury(name string, severity Severity, source string) Injury {
	return Injury{
		ID:       uuid.New().String(),
		Name:     name,
		Severity: severity,
		Source:   source,
	}
}

// InjuryFromTemplate mints an injury carrying the wound's name and
// severity.
// Precondition: t is non-nil.
func InjuryFromTemplate(t *Template, source string) Injury {
	return NewInjury(t.Name, t.Severity, source)
}
