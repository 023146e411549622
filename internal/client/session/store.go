package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Nigam11/skillhub-front/internal/client/models"
	"github.com/Nigam11/skillhub-front/internal/client/repositories/keyvalue"
	"github.com/Nigam11/skillhub-front/internal/dbx"
)

// Persisted keys.
const (
	KeyToken      = "token"
	KeyUser       = "user"
	KeyRedirectTo = "redirectTo"
)

// Snapshot is what Store.Load finds on disk.
type Snapshot struct {
	Token    string
	User     *models.User
	Redirect string
}

// Store persists the session between runs.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	// SaveLogin writes token and user and pops the stored redirect path, all
	// in one transaction.
	SaveLogin(ctx context.Context, token string, user models.User) (redirect string, err error)
	SaveUser(ctx context.Context, user models.User) error
	SetRedirect(ctx context.Context, path string) error
	ClearRedirect(ctx context.Context) error
	// ClearCredential removes token and user together.
	ClearCredential(ctx context.Context) error
	// Clear removes token, user and redirect together.
	Clear(ctx context.Context) error
}

// SQLStore keeps the session in the client_state table.
type SQLStore struct {
	db   *sql.DB
	repo func(dbx.DBTX) keyvalue.Repository
}

var _ Store = (*SQLStore)(nil)

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		db: db,
		repo: func(q dbx.DBTX) keyvalue.Repository {
			return keyvalue.NewSQLiteRepository(q)
		},
	}
}

func (s *SQLStore) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	all, err := s.repo(s.db).List(ctx)
	if err != nil {
		return snap, err
	}

	snap.Token = string(all[KeyToken])
	snap.Redirect = string(all[KeyRedirectTo])
	if raw := all[KeyUser]; len(raw) > 0 {
		var u models.User
		// a corrupt cache entry is dropped; Bootstrap refetches the user
		if json.Unmarshal(raw, &u) == nil {
			snap.User = &u
		}
	}

	return snap, nil
}

func (s *SQLStore) SaveLogin(ctx context.Context, token string, user models.User) (string, error) {
	data, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("encode user: %w", err)
	}

	var redirect string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, KeyUser, data); err != nil {
			return err
		}
		v, err := repo.Get(ctx, KeyRedirectTo)
		if err != nil {
			return err
		}
		redirect = string(v)
		return repo.Delete(ctx, KeyRedirectTo)
	})
	if err != nil {
		return "", fmt.Errorf("save login: %w", err)
	}
	return redirect, nil
}

func (s *SQLStore) SaveUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.repo(s.db).Set(ctx, KeyUser, data)
}

func (s *SQLStore) SetRedirect(ctx context.Context, path string) error {
	return s.repo(s.db).Set(ctx, KeyRedirectTo, []byte(path))
}

func (s *SQLStore) ClearRedirect(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, KeyRedirectTo)
}

func (s *SQLStore) ClearCredential(ctx context.Context) error {
	return s.deleteTx(ctx, KeyToken, KeyUser)
}

func (s *SQLStore) Clear(ctx context.Context) error {
	return s.deleteTx(ctx, KeyToken, KeyUser, KeyRedirectTo)
}

func (s *SQLStore) deleteTx(ctx context.Context, keys ...string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).DeleteMany(ctx, keys...)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
