package ports

import "context"

// RecordTx is the scope of a single read-modify-write pass over the store.
// All reads and writes inside one transaction observe and mutate the same
// snapshot, and Enqueue adds an outbox event that commits atomically with the
// collection writes.
type RecordTx interface {
	Read(key string) (data []byte, found bool, err error)
	Write(key string, data []byte) error
	Enqueue(eventType string, payload []byte) error
}

// RecordStore is generic get/set persistence for named collections. Each key
// addresses one durable slot holding a text-serialized collection. Writes
// fully replace the slot; reads of an absent key report not-found without
// persisting anything.
type RecordStore interface {
	Read(ctx context.Context, key string) (data []byte, found bool, err error)
	Write(ctx context.Context, key string, data []byte) error
	Update(ctx context.Context, fn func(tx RecordTx) error) error
}
