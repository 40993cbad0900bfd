package badger

import (
	"fmt"

	"github.com/hearthside/conduit/core"
)

// Key prefixes for different data types
const (
	entryPrefix = "cfgent"
)

// makeEntryKey generates a key for a config entry by its derived ID.
func makeEntryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", entryPrefix, id))
}

// entryScanPrefix returns the prefix used to iterate all config entries.
func entryScanPrefix() []byte {
	return []byte(entryPrefix + ":")
}
