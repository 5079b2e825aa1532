package engine

import "testing"

func TestClassForIndicator(t *testing.T) {
	if got := ClassForIndicator("intj"); got != ClassStrategist {
		t.Fatalf("intj → %s, want Strategist", got)
	}
	if got := ClassForIndicator(" ESFP "); got != ClassVoyager {
		t.Fatalf("ESFP → %s, want Voyager", got)
	}
	if got := ClassForIndicator("ZZZZ"); got != ClassNeophyte {
		t.Fatalf("unknown indicator → %s, want Neophyte", got)
	}
}

func TestClassStatCoversAllClasses(t *testing.T) {
	for _, c := range []ClassType{
		ClassNeophyte, ClassStrategist, ClassAnalyst, ClassCommander, ClassInnovator,
		ClassMentor, ClassScholar, ClassAmbassador, ClassEnchanter,
		ClassSentinel, ClassWarden, ClassMarshal, ClassSteward,
		ClassRanger, ClassAdept, ClassVanguard, ClassVoyager,
	} {
		if s := ClassStat(c); !s.IsValid() {
			t.Fatalf("ClassStat(%s) invalid", c)
		}
	}
	if ClassStat(ClassAnalyst) != StatINT {
		t.Fatal("Analyst should channel INT")
	}
	if ClassStat(ClassRanger) != StatDEX {
		t.Fatal("Ranger should channel DEX")
	}
	if ClassStat(ClassMentor) != StatCHA {
		t.Fatal("Mentor should channel CHA")
	}
}
