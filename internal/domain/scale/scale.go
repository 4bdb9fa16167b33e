package scale

import "strings"

// Proficiency is the ordered skill depth used on both sides of matching.
// The zero value means "unknown" and never meets any requirement.
type Proficiency int

const (
	ProficiencyUnknown Proficiency = 0
	Beginner           Proficiency = 1
	Intermediate       Proficiency = 2
	Advanced           Proficiency = 3
	Expert             Proficiency = 4
)

// Experience is the ordered seniority scale. It is used only for
// tie-breaking in candidate ranking; unknown ranks lowest.
type Experience int

const (
	ExperienceUnknown Experience = 0
	Junior            Experience = 1
	MidLevel          Experience = 2
	Senior            Experience = 3
)

// Meets reports whether an actual proficiency satisfies a required one.
// Unknown actual never meets; unknown required is met by anything known.
func Meets(actual, required Proficiency) bool {
	if actual <= ProficiencyUnknown {
		return false
	}
	return actual >= required
}

func (p Proficiency) Valid() bool {
	return p >= Beginner && p <= Expert
}

func (p Proficiency) String() string {
	switch p {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case Expert:
		return "expert"
	default:
		return "unknown"
	}
}

func ParseProficiency(s string) Proficiency {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return Beginner
	case "intermediate":
		return Intermediate
	case "advanced":
		return Advanced
	case "expert":
		return Expert
	default:
		return ProficiencyUnknown
	}
}

func (e Experience) Valid() bool {
	return e >= Junior && e <= Senior
}

func (e Experience) String() string {
	switch e {
	case Junior:
		return "junior"
	case MidLevel:
		return "mid-level"
	case Senior:
		return "senior"
	default:
		return "unknown"
	}
}

func ParseExperience(s string) Experience {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junior":
		return Junior
	case "mid-level", "mid_level", "midlevel", "mid":
		return MidLevel
	case "senior":
		return Senior
	default:
		return ExperienceUnknown
	}
}
