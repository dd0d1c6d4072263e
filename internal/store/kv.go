package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	kvTable  = "kv_entries"
	colName  = "name"
	colValue = "value"
)

// kvRepo implements KV using ent's SQL builder over the SQLite driver.
type kvRepo struct {
	drv *entsql.Driver
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b := builder()
	query, args := b.Select(colValue).
		From(b.Table(kvTable)).
		Where(entsql.EQ(colName, key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, false, fmt.Errorf("query %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("query %q: %w", key, err)
		}
		return nil, false, nil
	}
	var value []byte
	if err := rows.Scan(&value); err != nil {
		return nil, false, fmt.Errorf("scan %q: %w", key, err)
	}
	return value, true, nil
}

func (r *kvRepo) Apply(ctx context.Context, batch Batch) error {
	if batch.Empty() {
		return nil
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := applyBatch(ctx, tx, batch); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func applyBatch(ctx context.Context, tx dialect.Tx, batch Batch) error {
	b := builder()

	if len(batch.Puts) > 0 {
		ins := b.Insert(kvTable).Columns(colName, colValue)
		for _, e := range batch.Puts {
			value := e.Value
			if value == nil {
				value = []byte{}
			}
			ins.Values(e.Key, value)
		}
		ins.OnConflict(
			entsql.ConflictColumns(colName),
			entsql.ResolveWith(func(u *entsql.UpdateSet) {
				u.SetExcluded(colValue)
			}),
		)
		query, args := ins.Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("upsert %d entries: %w", len(batch.Puts), err)
		}
	}

	if len(batch.Deletes) > 0 {
		keys := make([]any, len(batch.Deletes))
		for i, k := range batch.Deletes {
			keys[i] = k
		}
		query, args := b.Delete(kvTable).
			Where(entsql.In(colName, keys...)).
			Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("delete %d entries: %w", len(batch.Deletes), err)
		}
	}
	return nil
}

func (r *kvRepo) Keys(ctx context.Context) ([]string, error) {
	b := builder()
	query, args := b.Select(colName).
		From(b.Table(kvTable)).
		OrderBy(colName).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}
