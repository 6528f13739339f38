package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/azamatbyte/ramadan/internal/domain"
)

const (
	usersFile  = "users.json"
	groupsFile = "groups.json"
)

// Repo defines storage operations for subscribers. The trigger engine and
// dispatcher depend on this interface, not on the file backend.
type Repo interface {
	// GetOrCreate returns the subscriber for ref, creating it with category
	// defaults on first sight. Individuals start empty and unconfigured;
	// groups start usable with the reference region and Uzbek language.
	GetOrCreate(ref domain.ChatRef) (domain.Subscriber, error)
	// Get returns the subscriber for ref without creating it.
	Get(ref domain.ChatRef) (domain.Subscriber, bool)
	// Update applies mutate to the subscriber for ref (creating it first if
	// needed) and persists the category before returning.
	Update(ref domain.ChatRef, mutate func(*domain.Subscriber)) error
	// All returns every subscriber of the category in deterministic order:
	// the order records were first created, with records loaded from disk
	// ordered by key.
	All(category domain.Category) []Entry
	// Stamp marks kind as fired on date for ref and persists. If the persist
	// fails the in-memory marker is rolled back, so the trigger stays pending.
	Stamp(ref domain.ChatRef, kind domain.TriggerKind, date string) error
}

// Entry pairs a subscriber with its identity for iteration.
type Entry struct {
	Ref        domain.ChatRef
	Subscriber domain.Subscriber
}

// FileRepo keeps all subscribers in memory and mirrors each category to a
// human-inspectable JSON file, rewritten wholesale on every mutation.
type FileRepo struct {
	dir string

	mu     sync.Mutex
	users  *collection
	groups *collection
}

// collection is one category's records plus their stable iteration order.
type collection struct {
	file    string
	records map[string]*domain.Subscriber
	order   []string
}

// Open loads both categories from dir. A missing or corrupt file yields an
// empty collection: losing history must never prevent startup.
func Open(dir string) (*FileRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	r := &FileRepo{
		dir:    dir,
		users:  loadCollection(filepath.Join(dir, usersFile)),
		groups: loadCollection(filepath.Join(dir, groupsFile)),
	}
	return r, nil
}

func loadCollection(file string) *collection {
	c := &collection{file: file, records: make(map[string]*domain.Subscriber)}
	data, err := os.ReadFile(file)
	if err != nil {
		return c
	}
	if err := json.Unmarshal(data, &c.records); err != nil {
		// Corrupt file: start empty rather than fail the process.
		c.records = make(map[string]*domain.Subscriber)
		return c
	}
	for key := range c.records {
		c.order = append(c.order, key)
	}
	sort.Strings(c.order)
	return c
}

// persist rewrites the collection's file wholesale. Indented JSON keeps the
// file inspectable by hand.
func (c *collection) persist() error {
	data, err := json.MarshalIndent(c.records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.file, data, 0o600)
}

func (r *FileRepo) collectionFor(category domain.Category) (*collection, error) {
	switch category {
	case domain.CategoryIndividual:
		return r.users, nil
	case domain.CategoryGroup:
		return r.groups, nil
	default:
		return nil, fmt.Errorf("unknown category %q", category)
	}
}

func key(id int64) string { return strconv.FormatInt(id, 10) }

// defaultSubscriber builds the initial record for a category. Group chats are
// usable immediately; individuals stay silent until they finish setup.
func defaultSubscriber(ref domain.ChatRef) *domain.Subscriber {
	s := &domain.Subscriber{ChatID: ref.ID}
	if ref.Category == domain.CategoryGroup {
		s.Region = "toshkent"
		s.Language = domain.LangUZ
	}
	return s
}

func (r *FileRepo) GetOrCreate(ref domain.ChatRef) (domain.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.collectionFor(ref.Category)
	if err != nil {
		return domain.Subscriber{}, err
	}
	k := key(ref.ID)
	if s, ok := c.records[k]; ok {
		return *s, nil
	}
	s := defaultSubscriber(ref)
	c.records[k] = s
	c.order = append(c.order, k)
	if err := c.persist(); err != nil {
		delete(c.records, k)
		c.order = c.order[:len(c.order)-1]
		return domain.Subscriber{}, fmt.Errorf("persist %s: %w", ref.Category, err)
	}
	return *s, nil
}

func (r *FileRepo) Get(ref domain.ChatRef) (domain.Subscriber, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.collectionFor(ref.Category)
	if err != nil {
		return domain.Subscriber{}, false
	}
	s, ok := c.records[key(ref.ID)]
	if !ok {
		return domain.Subscriber{}, false
	}
	return *s, true
}

func (r *FileRepo) Update(ref domain.ChatRef, mutate func(*domain.Subscriber)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.collectionFor(ref.Category)
	if err != nil {
		return err
	}
	k := key(ref.ID)
	s, ok := c.records[k]
	if !ok {
		s = defaultSubscriber(ref)
		c.records[k] = s
		c.order = append(c.order, k)
	}
	mutate(s)
	if err := c.persist(); err != nil {
		return fmt.Errorf("persist %s: %w", ref.Category, err)
	}
	return nil
}

func (r *FileRepo) All(category domain.Category) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.collectionFor(category)
	if err != nil {
		return nil
	}
	entries := make([]Entry, 0, len(c.order))
	for _, k := range c.order {
		s, ok := c.records[k]
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Ref:        domain.ChatRef{Category: category, ID: id},
			Subscriber: *s,
		})
	}
	return entries
}

var errUnknownSubscriber = errors.New("unknown subscriber")

func (r *FileRepo) Stamp(ref domain.ChatRef, kind domain.TriggerKind, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.collectionFor(ref.Category)
	if err != nil {
		return err
	}
	s, ok := c.records[key(ref.ID)]
	if !ok {
		return fmt.Errorf("%w: %s %d", errUnknownSubscriber, ref.Category, ref.ID)
	}
	prev, had := s.LastFired[kind]
	s.MarkFired(kind, date)
	if err := c.persist(); err != nil {
		// Roll the marker back so the next tick still sees the trigger as
		// pending; a stamp only counts once it is on disk.
		if had {
			s.MarkFired(kind, prev)
		} else {
			s.ClearFired(kind)
		}
		return fmt.Errorf("persist %s: %w", ref.Category, err)
	}
	return nil
}
