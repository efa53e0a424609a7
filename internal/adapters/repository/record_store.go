package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/config"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

// OutboxChannel is the PostgreSQL NOTIFY channel the relay listens on. A
// trigger installed by EnsureSchema emits the outbox row id on every insert.
const OutboxChannel = "hostel_outbox"

// PostgresRecordStore keeps one row per collection key, the value being the
// full text-serialized collection. Writes replace the row; there are no
// partial or merge semantics.
type PostgresRecordStore struct {
	db *sql.DB
	cb *gobreaker.CircuitBreaker
}

var _ ports.RecordStore = (*PostgresRecordStore)(nil)

func NewPostgresRecordStore(db *sql.DB) *PostgresRecordStore {
	return &PostgresRecordStore{
		db: db,
		cb: config.NewCircuitBreaker("PostgreSQL"),
	}
}

// EnsureSchema creates the collection slot table, the outbox table, and the
// outbox notify trigger. All statements are idempotent so the store can run
// this on every startup.
func (s *PostgresRecordStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS hostel_collections (
			key TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id TEXT PRIMARY KEY,
			event_type TEXT NOT NULL,
			payload TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			processed_at TIMESTAMPTZ
		)`,
		`CREATE OR REPLACE FUNCTION notify_hostel_outbox() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify('` + OutboxChannel + `', NEW.id);
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS hostel_outbox_notify ON outbox_events`,
		`CREATE TRIGGER hostel_outbox_notify
			AFTER INSERT ON outbox_events
			FOR EACH ROW EXECUTE FUNCTION notify_hostel_outbox()`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresRecordStore) Read(ctx context.Context, key string) ([]byte, bool, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		var data []byte
		err := s.db.QueryRowContext(ctx,
			"SELECT data FROM hostel_collections WHERE key = $1", key,
		).Scan(&data)
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, false, err
	}
	if result == nil {
		return nil, false, nil
	}
	return result.([]byte), true, nil
}

func (s *PostgresRecordStore) Write(ctx context.Context, key string, data []byte) error {
	_, err := s.cb.Execute(func() (interface{}, error) {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO hostel_collections (key, data, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
			key, data,
		)
		return nil, err
	})
	return err
}

// Update runs fn inside a single database transaction. Collection rows read
// through the transaction are locked until commit, so two racing updates of
// the same key serialize instead of losing a write. Rule errors returned by
// fn roll the transaction back but do not count against the circuit breaker;
// only storage failures do.
func (s *PostgresRecordStore) Update(ctx context.Context, fn func(tx ports.RecordTx) error) error {
	var ruleErr error
	_, err := s.cb.Execute(func() (interface{}, error) {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return nil, err
		}
		defer tx.Rollback()

		rtx := &recordTx{ctx: ctx, tx: tx}
		fnErr := fn(rtx)
		if rtx.opErr != nil {
			return nil, rtx.opErr
		}
		if fnErr != nil {
			ruleErr = fnErr
			return nil, nil
		}
		return nil, tx.Commit()
	})
	if err != nil {
		return err
	}
	return ruleErr
}

type recordTx struct {
	ctx context.Context
	tx  *sql.Tx
	// opErr remembers the first storage failure inside the transaction so
	// Update can tell it apart from a rule violation returned by the caller.
	opErr error
}

func (t *recordTx) Read(key string) ([]byte, bool, error) {
	var data []byte
	err := t.tx.QueryRowContext(t.ctx,
		"SELECT data FROM hostel_collections WHERE key = $1 FOR UPDATE", key,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		t.fail(err)
		return nil, false, err
	}
	return data, true, nil
}

func (t *recordTx) Write(key string, data []byte) error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT INTO hostel_collections (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		key, data,
	)
	if err != nil {
		t.fail(err)
	}
	return err
}

func (t *recordTx) Enqueue(eventType string, payload []byte) error {
	_, err := t.tx.ExecContext(t.ctx,
		"INSERT INTO outbox_events (id, event_type, payload) VALUES ($1, $2, $3)",
		uuid.NewString(), eventType, payload,
	)
	if err != nil {
		t.fail(err)
	}
	return err
}

func (t *recordTx) fail(err error) {
	if t.opErr == nil {
		t.opErr = err
	}
}
