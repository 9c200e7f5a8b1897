package service

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mattsolo1/grove-datesort/pkg/datesort"
	"github.com/mattsolo1/grove-datesort/pkg/models"
	"github.com/mattsolo1/grove-datesort/pkg/store"
)

// Notifier delivers user-facing messages when a sort cannot run.
type Notifier interface {
	Alert(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Alert calls f(message).
func (f NotifierFunc) Alert(message string) { f(message) }

// StderrNotifier prints alerts to stderr.
var StderrNotifier = NotifierFunc(func(message string) {
	fmt.Fprintln(os.Stderr, message)
})

// Service is the host side of the date sort: it loads outlines, runs the
// sorter once per request, reports failures and persists results.
type Service struct {
	Store    *store.Store
	Config   *models.Config
	Logger   *logrus.Entry
	Notifier Notifier
	sorter   *datesort.Sorter
}

// New creates a service backed by the outline store in cfg.DataDir.
func New(cfg *models.Config, logger *logrus.Entry, notifier Notifier) (*Service, error) {
	if logger == nil {
		logger = logrus.NewEntry(logrus.New())
	}
	if notifier == nil {
		notifier = StderrNotifier
	}

	palette := cfg.Palette()
	sorter, err := datesort.New(datesort.Options{
		SortedLabel:   cfg.SortedLabel(),
		OriginalLabel: cfg.OriginalLabel(),
		Palette:       &palette,
		Logger:        logger.WithField("component", "datesort"),
	})
	if err != nil {
		return nil, fmt.Errorf("configure sorter: %w", err)
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &Service{
		Store:    st,
		Config:   cfg,
		Logger:   logger,
		Notifier: notifier,
		sorter:   sorter,
	}, nil
}

// Sorter returns the configured sorter.
func (s *Service) Sorter() *datesort.Sorter {
	return s.sorter
}

// Close releases the store.
func (s *Service) Close() error {
	return s.Store.Close()
}
