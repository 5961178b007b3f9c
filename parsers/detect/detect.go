// Package detect classifies a system-information file into a stealer family
// by textual fingerprints: literal phrases, label combinations and file-name
// hints known to be unique to each family's output.
package detect

import (
	"strings"

	"github.com/darkmeter/stealer-parsers/parsers/base"
)

// rule is one fingerprint. A rule matches when every phrase occurs in the
// lowercased content, or when the file name contains nameHint.
type rule struct {
	family   base.StealerType
	phrases  []string
	nameHint string
}

// rules are evaluated in order and the first match wins. The ordering is
// load-bearing: fingerprints overlap on purpose, so the more specific
// literals sit above the broader label combinations and the widely-forked
// formats (Arkei lineage, RedLine lineage) sit below their derivatives.
var rules = []rule{
	{family: base.TypeLumma, phrases: []string{"lummac2"}},
	{family: base.TypeLumma, phrases: []string{"lumma stealer"}},
	{family: base.TypeRhadamanthys, phrases: []string{"rhadamanthys"}},
	{family: base.TypePhemedrone, phrases: []string{"phemedrone"}},
	{family: base.TypeStealerium, phrases: []string{"stealerium"}},
	{family: base.TypeWhiteSnake, phrases: []string{"whitesnake"}},
	{family: base.TypeBlackGuard, phrases: []string{"blackguard"}},
	{family: base.TypeDarkCrystal, phrases: []string{"dcrat"}},
	{family: base.TypeDarkCrystal, phrases: []string{"darkcrystal"}},
	{family: base.TypeRisePro, phrases: []string{"risepro"}},
	{family: base.TypePredator, phrases: []string{"predator the thief"}},
	{family: base.TypeMystic, phrases: []string{"mystic stealer"}},
	{family: base.TypeBandit, phrases: []string{"bandit stealer"}},
	{family: base.TypeTitan, phrases: []string{"titan stealer"}},
	{family: base.TypeMeta, phrases: []string{"metastealer"}},
	{family: base.TypeMars, phrases: []string{"mars stealer"}},
	{family: base.TypeAurora, phrases: []string{"aurora stealer"}},
	{family: base.TypeAurora, phrases: []string{"buildid:", "pcname:"}},
	{family: base.TypeTaurus, phrases: []string{"taurus stealer"}},
	{family: base.TypeFicker, phrases: []string{"ficker"}},
	{family: base.TypeOski, phrases: []string{"oski"}},
	{family: base.TypePredator, phrases: []string{"[predator]"}},
	{family: base.TypeAzorult, phrases: []string{"azorult"}},
	{family: base.TypeAzorult, phrases: []string{"computer(username):"}},
	{family: base.TypeStealc, phrases: []string{"stealc"}},
	{family: base.TypeStealc, phrases: []string{"network info:", "- ip:"}},
	{family: base.TypeVidar, phrases: []string{"vidar"}},
	{family: base.TypeVidar, phrases: []string{"machineid:", "work dir:"}},
	{family: base.TypeMars, phrases: []string{"working directory:", "videocard:"}},
	{family: base.TypeArkei, phrases: []string{"arkei"}},
	{family: base.TypeRaccoon, phrases: []string{"raccoon"}},
	{family: base.TypeRaccoon, phrases: []string{"- system language:", "- system timezone:"}},
	{family: base.TypeAtomic, phrases: []string{"model name:", "chip:"}},
	{family: base.TypeRhadamanthys, phrases: []string{"device info:", "ipv4:"}},
	{family: base.TypeLumma, nameHint: "lumma"},
	{family: base.TypeRedLine, phrases: []string{"redline"}},
	{family: base.TypeRedLine, phrases: []string{"build id:", "file location:"}},
	{family: base.TypeRedLine, phrases: []string{"hardwares:", "log date:"}},
}

// Detect classifies content plus file name into a family tag, defaulting to
// the generic family when nothing matches.
func Detect(content, fileName string) base.StealerType {
	lowerContent := strings.ToLower(content)
	lowerName := strings.ToLower(fileName)
	for _, r := range rules {
		if r.matches(lowerContent, lowerName) {
			return r.family
		}
	}
	return base.TypeGeneric
}

func (r *rule) matches(content, fileName string) bool {
	if r.nameHint != "" && strings.Contains(fileName, r.nameHint) {
		return true
	}
	if len(r.phrases) == 0 {
		return false
	}
	for _, p := range r.phrases {
		if !strings.Contains(content, p) {
			return false
		}
	}
	return true
}
