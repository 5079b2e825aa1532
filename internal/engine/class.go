package engine

import "strings"

// ClassType is the player class assigned from the onboarding
// type-indicator result. Everyone starts as Neophyte.
type ClassType string

const (
	ClassNeophyte ClassType = "Neophyte"

	// Analyst (NT)
	ClassStrategist ClassType = "Strategist" // INTJ
	ClassAnalyst    ClassType = "Analyst"    // INTP
	ClassCommander  ClassType = "Commander"  // ENTJ
	ClassInnovator  ClassType = "Innovator"  // ENTP

	// Diplomat (NF)
	ClassMentor     ClassType = "Mentor"     // INFJ
	ClassScholar    ClassType = "Scholar"    // INFP
	ClassAmbassador ClassType = "Ambassador" // ENFJ
	ClassEnchanter  ClassType = "Enchanter"  // ENFP

	// Sentinel (SJ)
	ClassSentinel ClassType = "Sentinel" // ISTJ
	ClassWarden   ClassType = "Warden"   // ISFJ
	ClassMarshal  ClassType = "Marshal"  // ESTJ
	ClassSteward  ClassType = "Steward"  // ESFJ

	// Explorer (SP)
	ClassRanger   ClassType = "Ranger"   // ISTP
	ClassAdept    ClassType = "Adept"    // ISFP
	ClassVanguard ClassType = "Vanguard" // ESTP
	ClassVoyager  ClassType = "Voyager"  // ESFP
)

var classByIndicator = map[string]ClassType{
	"INTJ": ClassStrategist,
	"INTP": ClassAnalyst,
	"ENTJ": ClassCommander,
	"ENTP": ClassInnovator,
	"INFJ": ClassMentor,
	"INFP": ClassScholar,
	"ENFJ": ClassAmbassador,
	"ENFP": ClassEnchanter,
	"ISTJ": ClassSentinel,
	"ISFJ": ClassWarden,
	"ESTJ": ClassMarshal,
	"ESFJ": ClassSteward,
	"ISTP": ClassRanger,
	"ISFP": ClassAdept,
	"ESTP": ClassVanguard,
	"ESFP": ClassVoyager,
}

func (c ClassType) IsValid() bool {
	if c == ClassNeophyte {
		return true
	}
	for _, v := range classByIndicator {
		if v == c {
			return true
		}
	}
	return false
}

// ClassForIndicator maps a four-letter type indicator (e.g. "INTJ") to
// its class. Unknown indicators fall back to Neophyte.
func ClassForIndicator(code string) ClassType {
	c, ok := classByIndicator[strings.TrimSpace(strings.ToUpper(code))]
	if !ok {
		return ClassNeophyte
	}
	return c
}

// ClassStat returns the attribute a class channels its class XP into.
func ClassStat(c ClassType) StatType {
	switch c {
	case ClassStrategist, ClassAnalyst, ClassCommander, ClassInnovator:
		return StatINT
	case ClassRanger, ClassAdept, ClassVanguard, ClassVoyager:
		return StatDEX
	case ClassSentinel, ClassWarden, ClassMarshal, ClassSteward, ClassNeophyte:
		return StatSTR
	default:
		return StatCHA
	}
}

// ParseClass parses a stored class name; unknown input is Neophyte.
func ParseClass(input string) ClassType {
	c := ClassType(strings.TrimSpace(input))
	if c.IsValid() {
		return c
	}
	return ClassNeophyte
}
