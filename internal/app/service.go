package app

import (
	"fmt"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/registrar/internal/records"
	"github.com/shrimpsizemoose/registrar/internal/scoring"
	"github.com/shrimpsizemoose/registrar/internal/store"
)

// Service is one operator session: it owns the loaded records and writes
// every change through Store.
type Service struct {
	Config  *Config
	Store   store.RecordStore
	Records *records.Book
	Grader  *scoring.Grader
}

func NewService(config *Config) (*Service, error) {
	st, err := NewStore(config)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	service, err := NewServiceWithStore(config, st)
	if err != nil {
		st.Close()
		return nil, err
	}
	return service, nil
}

func NewServiceWithStore(config *Config, st store.RecordStore) (*Service, error) {
	book, err := store.Load(st)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	logger.Info.Printf(
		"Loaded %d students, %d courses, %d passed records",
		len(book.Students),
		len(book.Courses),
		len(book.Passed),
	)

	return &Service{
		Config:  config,
		Store:   st,
		Records: book,
		Grader:  scoring.NewGrader(config.Grading.RecencyWindowDays),
	}, nil
}

func (s *Service) Close() error {
	if err := s.Store.Close(); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
