package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/godex/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketHistory = []byte("history")
)

// HistoryStore implements domain.HistoryStore using BoltDB.
// With an empty directory it keeps history in memory only.
type HistoryStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte

	now func() time.Time
}

var _ domain.HistoryStore = (*HistoryStore)(nil)

// NewHistoryStore opens (or creates) the history database under dir
func NewHistoryStore(dir string) (*HistoryStore, error) {
	if dir == "" {
		// Memory-only mode (no persistence)
		return &HistoryStore{cache: make(map[string][]byte), now: time.Now}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "godex.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketHistory)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &HistoryStore{db: db, cache: make(map[string][]byte), now: time.Now}, nil
}

func (s *HistoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func cacheKey(bucket []byte, key string) string {
	return string(bucket) + ":" + key
}

func (s *HistoryStore) get(bucket []byte, key string, dest interface{}) (bool, error) {
	ck := cacheKey(bucket, key)

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[ck]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil, nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("read %s/%s: %w", bucket, key, err)
	}

	if data == nil {
		return false, nil
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[ck] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil, nil
}

func (s *HistoryStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache[cacheKey(bucket, key)] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

// values returns every stored value in bucket, from BoltDB when persistent
func (s *HistoryStore) values(bucket []byte) ([][]byte, error) {
	var out [][]byte

	if s.db == nil {
		prefix := string(bucket) + ":"
		s.mu.RLock()
		for k, v := range s.cache {
			if strings.HasPrefix(k, prefix) {
				out = append(out, v)
			}
		}
		s.mu.RUnlock()
		return out, nil
	}

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			data := make([]byte, len(v))
			copy(data, v)
			out = append(out, data)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", bucket, err)
	}
	return out, nil
}

func (s *HistoryStore) clearBucket(bucket []byte) error {
	s.mu.Lock()
	prefix := string(bucket) + ":"
	for k := range s.cache {
		if strings.HasPrefix(k, prefix) {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucket); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
}

// === History ===

// Record marks name as viewed now and bumps its view count
func (s *HistoryStore) Record(name string) error {
	var entry domain.HistoryEntry
	found, err := s.get(bucketHistory, name, &entry)
	if err != nil {
		return err
	}
	if !found {
		entry = domain.HistoryEntry{Name: name}
	}
	entry.Views++
	entry.ViewedAt = s.now()
	return s.set(bucketHistory, name, entry)
}

// Recent returns up to limit entries, most recently viewed first.
// A limit <= 0 returns every entry.
func (s *HistoryStore) Recent(limit int) ([]domain.HistoryEntry, error) {
	raw, err := s.values(bucketHistory)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.HistoryEntry, 0, len(raw))
	for _, data := range raw {
		var entry domain.HistoryEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("corrupt history entry: %w", err)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].ViewedAt.Equal(entries[j].ViewedAt) {
			return entries[i].ViewedAt.After(entries[j].ViewedAt)
		}
		return entries[i].Name < entries[j].Name
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Clear removes all history
func (s *HistoryStore) Clear() error {
	return s.clearBucket(bucketHistory)
}
