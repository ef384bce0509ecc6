// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists requirement captures in PostgreSQL or SQLite, or in
// memory when no database is configured.
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-eas-suite/internal/config"
	"github.com/MKhiriev/go-eas-suite/internal/logger"
)

// Storages groups the repositories of a run.
type Storages struct {
	Captures CaptureRepository

	db *DB
}

// NewStorages opens and migrates the database named by cfg.DSN. An empty DSN
// yields an in-memory capture repository.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	if cfg.DSN == "" {
		log.Debug().Str("func", "NewStorages").Msg("no capture dsn, keeping captures in memory")
		return &Storages{Captures: NewMemoryCaptureRepository()}, nil
	}

	db, err := Open(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating capture database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating capture database: %w", err)
	}

	return &Storages{
		Captures: NewCaptureRepository(db, log),
		db:       db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
