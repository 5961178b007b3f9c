// Package base defines the adapter contract implemented by every stealer
// family parser and the closed set of recognized families.
package base

import "github.com/darkmeter/stealer-parsers/records"

// StealerType identifies a malware family. The set is closed: detection can
// only ever yield one of the constants below, and dispatch switches over
// them exhaustively.
type StealerType string

const (
	TypeGeneric      StealerType = "generic"
	TypeRedLine      StealerType = "redline"
	TypeRaccoon      StealerType = "raccoon"
	TypeVidar        StealerType = "vidar"
	TypeAzorult      StealerType = "azorult"
	TypeLumma        StealerType = "lumma"
	TypeStealc       StealerType = "stealc"
	TypeMeta         StealerType = "meta"
	TypeMars         StealerType = "mars"
	TypeAurora       StealerType = "aurora"
	TypeRhadamanthys StealerType = "rhadamanthys"
	TypeWhiteSnake   StealerType = "whitesnake"
	TypeMystic       StealerType = "mystic"
	TypeDarkCrystal  StealerType = "darkcrystal"
	TypeTaurus       StealerType = "taurus"
	TypeFicker       StealerType = "ficker"
	TypeBlackGuard   StealerType = "blackguard"
	TypeArkei        StealerType = "arkei"
	TypeOski         StealerType = "oski"
	TypePredator     StealerType = "predator"
	TypeTitan        StealerType = "titan"
	TypeBandit       StealerType = "bandit"
	TypePhemedrone   StealerType = "phemedrone"
	TypeRisePro      StealerType = "risepro"
	TypeStealerium   StealerType = "stealerium"
	TypeAtomic       StealerType = "atomic"
)

// Adapter converts one system-information file of a known family into a
// structured record. Parse returns an error when the content yields no
// usable fields, so the dispatch layer can count the file as failed.
type Adapter interface {
	Type() StealerType
	Parse(content, fileName string) (*records.SystemInfo, error)
}
