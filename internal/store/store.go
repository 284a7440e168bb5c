package store

import (
	"encoding/json" // Users file serialization
	"errors"        // Sentinel error checks
	"os"            // File I/O
	"path/filepath" // Temp-file placement
	"sync"          // Single-writer lock over the user table
	"time"          // Registration timestamps

	"ordering_system/internal/domain" // Domain models and errors

	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// dummyHash is compared against when the username is unknown, so the
// unknown-user and wrong-password failures cost the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Store owns the persisted user table. Every mutation rewrites the
// whole users file under a single writer lock; the write goes to a
// temp file first so a crash mid-write leaves the old file intact.
type Store struct {
	path  string
	cost  int // bcrypt work factor
	mu    sync.Mutex
	users map[string]*domain.User
}

// Open loads the user table from path, creating an empty file if none
// exists. Legacy records are migrated in place on load.
func Open(path string, cost int) (*Store, error) {
	s := &Store{path: path, cost: cost}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads and migrates the users file
func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.users = make(map[string]*domain.User)
		return s.persistLocked() // Create the file so later loads succeed
	}
	if err != nil {
		return err
	}
	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	// Forward-compatible migration: rename the legacy history field and
	// backfill fields older files never had.
	migrated := 0
	for username, rec := range raw {
		if hist, ok := rec["shopping_history"]; ok {
			if _, has := rec["order_history"]; !has {
				rec["order_history"] = hist
				migrated++
			}
			delete(rec, "shopping_history")
		}
		if _, ok := rec["order_history"]; !ok {
			rec["order_history"] = json.RawMessage("[]")
		}
		if _, ok := rec["address"]; !ok {
			rec["address"] = json.RawMessage(`"Address not provided"`)
		}
		raw[username] = rec
	}
	fixed, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	s.users = make(map[string]*domain.User)
	if err := json.Unmarshal(fixed, &s.users); err != nil {
		return err
	}
	if migrated > 0 {
		logrus.WithFields(logrus.Fields{
			"file":    s.path,
			"records": migrated,
		}).Info("Migrated legacy user records")
	}
	return nil
}

// persistLocked rewrites the users file; callers must hold s.mu
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.users, "", "    ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "users-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Register creates a user with a freshly hashed password and an empty
// order history. Returns domain.ErrDuplicateUser if the name is taken.
func (s *Store) Register(username, password, email, address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[username]; exists {
		return domain.ErrDuplicateUser
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}
	s.users[username] = &domain.User{
		Password:     string(hash),
		Email:        email,
		Address:      address,
		CreatedAt:    time.Now().Format(time.RFC3339),
		OrderHistory: []domain.OrderRecord{},
	}
	if err := s.persistLocked(); err != nil {
		delete(s.users, username) // Keep memory and disk in step
		return err
	}
	return nil
}

// Verify reports whether the password matches the stored hash. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *Store) Verify(username, password string) bool {
	s.mu.Lock()
	u, ok := s.users[username]
	s.mu.Unlock()
	if !ok {
		// Burn a comparison anyway
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// Get returns a copy of the user record
func (s *Store) Get(username string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return domain.User{}, false
	}
	out := *u
	out.OrderHistory = append([]domain.OrderRecord(nil), u.OrderHistory...)
	return out, true
}

// History returns the user's orders in insertion order
func (s *Store) History(username string) ([]domain.OrderRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, false
	}
	return append([]domain.OrderRecord(nil), u.OrderHistory...), true
}

// AppendOrder appends a record to the user's history and persists.
// The ledger is append-only; nothing ever mutates or removes a record.
func (s *Store) AppendOrder(username string, rec domain.OrderRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return domain.ErrSessionInvalid
	}
	u.OrderHistory = append(u.OrderHistory, rec)
	if err := s.persistLocked(); err != nil {
		u.OrderHistory = u.OrderHistory[:len(u.OrderHistory)-1]
		return err
	}
	return nil
}
