package store

import (
	"context"
	"database/sql"
	"time"
)

// JournalRepo keeps an audit trail of every row that made it into the
// sheet. It is best-effort: the commit pipeline logs insert failures and
// moves on, the sheet stays the source of truth.
type JournalRepo struct{ DB *sql.DB }

func NewJournalRepo(db *sql.DB) *JournalRepo { return &JournalRepo{DB: db} }

// Entry mirrors one appended TaskRow. Kind is "structured" or "fallback".
type Entry struct {
	ChatID    int64
	Kind      string
	Name      string
	Tag       string
	Deadline  string
	Priority  string
	Desc      string
	RawText   string
	CreatedAt time.Time
}

// EnsureSchema creates the journal table on startup if missing.
func (r *JournalRepo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists task_journal (
  id bigserial primary key,
  created_at timestamptz not null default now(),
  chat_id bigint not null,
  kind text not null,
  name text not null default '',
  tag text not null default '',
  deadline text not null default '',
  priority text not null default '',
  description text not null default '',
  raw_text text not null default ''
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

func (r *JournalRepo) Record(ctx context.Context, e Entry) error {
	const q = `
insert into task_journal (created_at, chat_id, kind, name, tag, deadline, priority, description, raw_text)
values ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.DB.ExecContext(ctx, q,
		e.CreatedAt, e.ChatID, e.Kind, e.Name, e.Tag, e.Deadline, e.Priority, e.Desc, e.RawText)
	return err
}

// CountSince reports how many rows were journaled after the cutoff.
// Used by operators to sanity-check the sheet against the journal.
func (r *JournalRepo) CountSince(ctx context.Context, cutoff time.Time) (int64, error) {
	const q = `select count(*) from task_journal where created_at >= $1`
	var n int64
	err := r.DB.QueryRowContext(ctx, q, cutoff).Scan(&n)
	return n, err
}
