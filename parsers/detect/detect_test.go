package detect

import (
	"testing"

	"github.com/darkmeter/stealer-parsers/parsers/base"
)

func TestDetect_Fingerprints(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		fileName string
		want     base.StealerType
	}{
		{"redline literal", "RedLine Stealer log", "UserInformation.txt", base.TypeRedLine},
		{"redline labels", "Build ID: build1\nFile Location: C:\\x.exe", "info.txt", base.TypeRedLine},
		{"raccoon labels", "- System Language: en\n- System TimeZone: UTC", "System Info.txt", base.TypeRaccoon},
		{"vidar labels", "MachineID: 1234\nWork Dir: In memory", "information.txt", base.TypeVidar},
		{"lumma", "LummaC2 Build: abc", "System.txt", base.TypeLumma},
		{"stealc labels", "Network Info:\n- IP: 1.2.3.4", "system_info.txt", base.TypeStealc},
		{"azorult combined label", "Computer(Username): PC(john)", "info.txt", base.TypeAzorult},
		{"atomic", "Model Name: MacBook Air\nChip: Apple M1", "info.txt", base.TypeAtomic},
		{"dcrat", "DCRat report", "info.txt", base.TypeDarkCrystal},
		{"predator", "[Predator] build", "information.log", base.TypePredator},
		{"filename hint", "no recognizable content", "lumma_system.txt", base.TypeLumma},
		{"no match", "just some text", "system.txt", base.TypeGeneric},
	}
	for _, c := range cases {
		if got := Detect(c.content, c.fileName); got != c.want {
			t.Errorf("%s: Detect = %s, want %s", c.name, got, c.want)
		}
	}
}

// Vidar content also mentions "work dir" but a Mars banner must win, since
// the explicit brand literal is ordered above the label combination.
func TestDetect_PriorityOrder(t *testing.T) {
	content := "Mars Stealer\nMachineID: x\nWork Dir: In memory"
	if got := Detect(content, "information.txt"); got != base.TypeMars {
		t.Errorf("Expected mars to win by priority, got %s", got)
	}
}
