package app

import (
	"fmt"

	"github.com/shrimpsizemoose/registrar/internal/store"
	"github.com/shrimpsizemoose/registrar/internal/store/flatfile"
	"github.com/shrimpsizemoose/registrar/internal/store/memory"
)

func NewStore(config *Config) (store.RecordStore, error) {
	switch store.Driver(config.Store.Driver) {
	case store.DriverFlatFile:
		return flatfile.NewFlatFileStore(config.FileConfig())
	case store.DriverMemory:
		return memory.NewMemoryStore(nil, nil, nil), nil
	default:
		return nil, fmt.Errorf("unable to determine store type from driver: %s", config.Store.Driver)
	}
}
