// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

const (
	prefixGraph = "graph/"
	prefixExp   = "exp/"
	prefixData  = "data/"
	prefixSeq   = "seq/"

	// entryOverhead over-estimates Badger's per-entry metadata.
	entryOverhead = 32

	// conflictRetries bounds optimistic-transaction retries on ErrConflict.
	conflictRetries = 5
)

// Config configures a Badger-backed store.
type Config struct {
	// Path is the database directory; ignored when InMemory is set.
	Path string
	// InMemory keeps everything in memory (tests, dry runs).
	InMemory bool
	// SyncWrites fsyncs every commit.
	SyncWrites bool
	// Logger receives Badger's internal logs; nil silences them.
	Logger *slog.Logger
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Badger is a Store on github.com/dgraph-io/badger/v4.
type Badger struct {
	db *badger.DB
	// mu serializes read-modify-write sequences so get-or-create and
	// measurement numbering never race within one process.
	mu sync.Mutex
}

var _ Store = (*Badger)(nil)

// Open opens (or creates) a Badger store.
func Open(cfg Config) (*Badger, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, ErrPathRequired
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger: %w", err)
	}

	return &Badger{db: db}, nil
}

// OpenInMemory opens an in-memory store.
func OpenInMemory() (*Badger, error) {
	return Open(Config{InMemory: true})
}

// Close releases the database.
func (b *Badger) Close() error {
	return b.db.Close()
}

// update runs fn in a read-write transaction, retrying on conflicts.
func (b *Badger) update(fn func(txn *badger.Txn) error) error {
	var err error
	for i := 0; i < conflictRetries; i++ {
		err = b.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrClosed
	}
	return err
}

func (b *Badger) view(fn func(txn *badger.Txn) error) error {
	err := b.db.View(fn)
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrClosed
	}
	return err
}

// getJSON decodes key into v; found is false when the key is absent.
func getJSON(txn *badger.Txn, key []byte, v any) (found bool, err error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

func setJSON(txn *badger.Txn, key []byte, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set(key, raw)
}

// GetOrCreateGraph implements Store.
func (b *Badger) GetOrCreateGraph(ctx context.Context, g GraphRecord) (GraphRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return GraphRecord{}, false, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	key := []byte(prefixGraph + g.Key())
	var (
		stored  GraphRecord
		created bool
	)
	err := b.update(func(txn *badger.Txn) error {
		found, err := getJSON(txn, key, &stored)
		if err != nil || found {
			return err
		}
		stored, created = g, true
		return setJSON(txn, key, g)
	})
	if err != nil {
		return GraphRecord{}, false, fmt.Errorf("store: graph %s: %w", g.Tag, err)
	}

	return stored, created, nil
}

// GetOrCreateExperiment implements Store.
func (b *Badger) GetOrCreateExperiment(ctx context.Context, graphKey string, e ExperimentRecord) (ExperimentRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return ExperimentRecord{}, false, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := e.validate(); err != nil {
		return ExperimentRecord{}, false, fmt.Errorf("store: experiment %s: %w", e.Tag, err)
	}
	e.GraphKey = graphKey
	key := []byte(prefixExp + e.Key())
	var (
		stored  ExperimentRecord
		created bool
	)
	err := b.update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(prefixGraph + graphKey)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("graph %s: %w", graphKey, ErrNotFound)
			}
			return err
		}
		found, err := getJSON(txn, key, &stored)
		if err != nil || found {
			return err
		}
		stored, created = e, true
		return setJSON(txn, key, e)
	})
	if err != nil {
		return ExperimentRecord{}, false, fmt.Errorf("store: experiment %s: %w", e.Tag, err)
	}

	return stored, created, nil
}

// AppendData implements Store. Rows are committed in as many transactions
// as Badger's batch limits need; the sequence key is advanced in each, so
// an error leaves the earlier rows stored and numbered.
func (b *Badger) AppendData(ctx context.Context, expKey string, rows []DataRecord) ([]DataRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	seqKey := []byte(prefixSeq + expKey)
	var next uint64
	err := b.view(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(prefixExp + expKey)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("experiment %s: %w", expKey, ErrNotFound)
			}
			return err
		}
		var err error
		next, err = readSeq(txn, seqKey)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("store: append data: %w", err)
	}

	out := make([]DataRecord, len(rows))
	raws := make([][]byte, len(rows))
	for i, r := range rows {
		r.ExperimentKey = expKey
		r.Measurement = int(next) + i
		if raws[i], err = json.Marshal(r); err != nil {
			return nil, fmt.Errorf("store: append data: row %d: %w", i, err)
		}
		out[i] = r
	}

	// half the batch limits leaves room for entry overhead and the sequence key
	maxSize, maxCount := b.db.MaxBatchSize()/2, b.db.MaxBatchCount()/2
	for lo := 0; lo < len(rows); {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("store: append data: %w", err)
		}
		hi, size := lo, int64(0)
		for hi < len(rows) && int64(hi-lo) < maxCount {
			n := int64(len(dataKey(expKey, next)) + len(raws[hi]) + entryOverhead)
			if hi > lo && size+n > maxSize {
				break
			}
			size += n
			hi++
		}
		err = b.update(func(txn *badger.Txn) error {
			for i := lo; i < hi; i++ {
				if err := txn.Set(dataKey(expKey, next+uint64(i-lo)), raws[i]); err != nil {
					return err
				}
			}
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], next+uint64(hi-lo))
			return txn.Set(seqKey, buf[:])
		})
		if err != nil {
			return nil, fmt.Errorf("store: append data: rows [%d, %d): %w", lo, hi, err)
		}
		next += uint64(hi - lo)
		lo = hi
	}

	return out, nil
}

func readSeq(txn *badger.Txn, key []byte) (uint64, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = item.Value(func(val []byte) error {
		if len(val) >= 8 {
			seq = binary.BigEndian.Uint64(val)
		}
		return nil
	})

	return seq, err
}

func dataKey(expKey string, measurement uint64) []byte {
	return []byte(fmt.Sprintf("%s%s/%016d", prefixData, expKey, measurement))
}

// Data implements Store.
func (b *Badger) Data(ctx context.Context, expKey string) ([]DataRecord, error) {
	var out []DataRecord
	err := scan(ctx, b, []byte(prefixData+expKey+"/"), func(val []byte) error {
		var r DataRecord
		if err := json.Unmarshal(val, &r); err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})

	return out, err
}

// Graphs implements Store.
func (b *Badger) Graphs(ctx context.Context) ([]GraphRecord, error) {
	var out []GraphRecord
	err := scan(ctx, b, []byte(prefixGraph), func(val []byte) error {
		var g GraphRecord
		if err := json.Unmarshal(val, &g); err != nil {
			return err
		}
		out = append(out, g)
		return nil
	})

	return out, err
}

// Experiments implements Store.
func (b *Badger) Experiments(ctx context.Context) ([]ExperimentRecord, error) {
	var out []ExperimentRecord
	err := scan(ctx, b, []byte(prefixExp), func(val []byte) error {
		var e ExperimentRecord
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		out = append(out, e)
		return nil
	})

	return out, err
}

// scan visits every value under prefix in key order.
func scan(ctx context.Context, b *Badger, prefix []byte, fn func(val []byte) error) error {
	return b.view(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}
