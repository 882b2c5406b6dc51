package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JonnyWalker81/daybook/backend/pkg/supabase"
)

// table wraps the PostgREST calls shared by every Supabase repository.
type table[T any] struct {
	client *supabase.Client
	name   string
}

func newTable[T any](client *supabase.Client, name string) table[T] {
	return table[T]{client: client, name: name}
}

// userPage filters rows by owner, newest first.
func userPage(userID string, limit, offset int) map[string]interface{} {
	query := map[string]interface{}{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "created_at.desc",
	}
	if limit > 0 {
		query["limit"] = limit
	}
	if offset > 0 {
		query["offset"] = offset
	}
	return query
}

func (t table[T]) list(ctx context.Context, query map[string]interface{}) ([]T, error) {
	body, err := t.client.Query(ctx, t.name, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.name, err)
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", t.name, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (t table[T]) one(ctx context.Context, query map[string]interface{}) (*T, error) {
	query["limit"] = 1
	rows, err := t.list(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (t table[T]) byID(ctx context.Context, id string) (*T, error) {
	return t.one(ctx, map[string]interface{}{"id": fmt.Sprintf("eq.%s", id)})
}

func (t table[T]) insert(ctx context.Context, data interface{}) (*T, error) {
	body, err := t.client.Insert(ctx, t.name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", t.name, err)
	}
	return t.first(body)
}

func (t table[T]) update(ctx context.Context, id string, fields map[string]interface{}) (*T, error) {
	body, err := t.client.Update(ctx, t.name, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", t.name, err)
	}
	return t.first(body)
}

func (t table[T]) upsert(ctx context.Context, data interface{}, onConflict string) (*T, error) {
	body, err := t.client.Upsert(ctx, t.name, data, onConflict)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert into %s: %w", t.name, err)
	}
	return t.first(body)
}

func (t table[T]) delete(ctx context.Context, id string) error {
	if err := t.client.Delete(ctx, t.name, id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", t.name, err)
	}
	return nil
}

// first decodes a return=representation body.
func (t table[T]) first(body []byte) (*T, error) {
	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}
