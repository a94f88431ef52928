package state

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Store persists named state records. Implementations must be safe for
// concurrent use. Save overwrites any existing record under the key; Delete
// of a missing record is a no-op.
type Store interface {
	Load(ctx context.Context, key string, v any) error
	Save(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

// schemaVersion is bumped when the record envelope or any persisted state
// shape changes incompatibly.
const schemaVersion = 1

// record is the versioned envelope wrapped around every persisted value.
type record struct {
	Version   int             `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
	State     json.RawMessage `json:"state"`
}

func encodeRecord(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return json.Marshal(record{
		Version:   schemaVersion,
		UpdatedAt: time.Now().UTC(),
		State:     raw,
	})
}

func decodeRecord(data []byte, v any) error {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("unmarshal record envelope: %w", err)
	}
	if rec.Version != schemaVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, rec.Version, schemaVersion)
	}
	if err := json.Unmarshal(rec.State, v); err != nil {
		return fmt.Errorf("unmarshal state: %w", err)
	}
	return nil
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
