// Package file implements the credential store on a flat JSON file,
// read and rewritten as one unit.
package file

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"farmgate/config"
	"farmgate/internal/domain/entity"
	"farmgate/internal/domain/repository"
	"farmgate/internal/errors"
)

// accountRecord is the persisted shape of one account. The field names
// match the layout the reference front end was seeded with: the bcrypt
// hash is stored under "password".
type accountRecord struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Role      entity.Role `json:"role"`
	CreatedAt int         `json:"createdAt"`
}

type accountStore struct {
	path   string
	logger *slog.Logger
}

// NewAccountStore builds a file-backed repository.AccountStore at the
// configured path.
func NewAccountStore(cfg *config.Config, logger *slog.Logger) repository.AccountStore {
	return &accountStore{
		path:   cfg.Store.Path,
		logger: logger,
	}
}

// LoadAll reads the whole backing file. A missing or malformed file is a
// recoverable condition: it is logged and an empty set is returned, never
// an error. A freshly deployed process therefore starts with zero
// accounts instead of refusing to serve.
func (s *accountStore) LoadAll(ctx context.Context) []entity.Account {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WarnContext(ctx, "reading account store failed, treating as empty",
				slog.String("path", s.path),
				slog.Any("error", err),
			)
		}

		return nil
	}

	var records []accountRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.logger.WarnContext(ctx, "account store is malformed, treating as empty",
			slog.String("path", s.path),
			slog.Any("error", err),
		)

		return nil
	}

	accounts := make([]entity.Account, len(records))
	for i, r := range records {
		accounts[i] = entity.Account{
			Email:        r.Email,
			PasswordHash: r.Password,
			Role:         r.Role,
			CreatedAt:    r.CreatedAt,
		}
	}

	return accounts
}

// SaveAll replaces the entire persisted set. The new content is written
// to a sibling temp file and renamed over the old one, so readers never
// observe a partially written store.
func (s *accountStore) SaveAll(ctx context.Context, accounts []entity.Account) error {
	records := make([]accountRecord, len(accounts))
	for i, a := range accounts {
		records[i] = accountRecord{
			Email:     a.Email,
			Password:  a.PasswordHash,
			Role:      a.Role,
			CreatedAt: a.CreatedAt,
		}
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal account store")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp account store")
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "write temp account store")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "close temp account store")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "replace account store")
	}

	s.logger.InfoContext(ctx, "account store updated",
		slog.String("path", s.path),
		slog.Int("accounts", len(accounts)),
	)

	return nil
}
