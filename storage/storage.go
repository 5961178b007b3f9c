// Package storage defines the persistence contract the parsing pipeline
// emits into.
package storage

import "github.com/darkmeter/stealer-parsers/records"

// Store receives normalized records. Implementations own escaping and any
// length limits applied on the way in; the parsing pipeline hands over
// cleaned but unescaped values.
type Store interface {
	SaveSystemInformation(deviceID string, info *records.SystemInfo, sourceFileName string) error
	SaveCredentials(deviceID string, creds []records.CredentialRecord) error
	Close() error
}
