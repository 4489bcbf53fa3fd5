// Package directory caches per-department user and provider lookups
// for reference resolution. The cache is an explicit dependency with
// its TTL passed in, so tests control expiry instead of fighting a
// process-wide global.
package directory

import (
	"sync"
	"time"

	"github.com/techflow-dev/techflow/internal/domain"
)

type Storage interface {
	UsersByDepartment(departmentId domain.DepartmentId) ([]domain.User, error)
	ProvidersByDepartment(departmentId domain.DepartmentId) ([]domain.Provider, error)
}

type entry struct {
	users     map[domain.UserId]domain.User
	providers map[domain.ProviderId]domain.Provider
	expires   time.Time
}

type Cache struct {
	storage Storage
	ttl     time.Duration

	mu      sync.RWMutex
	entries map[domain.DepartmentId]*entry
}

func New(storage Storage, ttl time.Duration) *Cache {
	return &Cache{
		storage: storage,
		ttl:     ttl,
		entries: make(map[domain.DepartmentId]*entry),
	}
}

// Users returns the department's user directory, loading it from
// storage when the cached copy is missing or expired.
func (c *Cache) Users(departmentId domain.DepartmentId) (map[domain.UserId]domain.User, error) {
	e, err := c.get(departmentId)
	if err != nil {
		return nil, err
	}
	return e.users, nil
}

func (c *Cache) Providers(departmentId domain.DepartmentId) (map[domain.ProviderId]domain.Provider, error) {
	e, err := c.get(departmentId)
	if err != nil {
		return nil, err
	}
	return e.providers, nil
}

// Invalidate drops the department's entry. Called after any user or
// provider mutation so the next resolution sees fresh data.
func (c *Cache) Invalidate(departmentId domain.DepartmentId) {
	c.mu.Lock()
	delete(c.entries, departmentId)
	c.mu.Unlock()
}

func (c *Cache) get(departmentId domain.DepartmentId) (*entry, error) {
	c.mu.RLock()
	e, ok := c.entries[departmentId]
	c.mu.RUnlock()
	if ok && time.Now().Before(e.expires) {
		return e, nil
	}

	users, err := c.storage.UsersByDepartment(departmentId)
	if err != nil {
		return nil, err
	}
	providers, err := c.storage.ProvidersByDepartment(departmentId)
	if err != nil {
		return nil, err
	}

	e = &entry{
		users:     make(map[domain.UserId]domain.User, len(users)),
		providers: make(map[domain.ProviderId]domain.Provider, len(providers)),
		expires:   time.Now().Add(c.ttl),
	}
	for _, u := range users {
		e.users[u.Id] = u
	}
	for _, p := range providers {
		e.providers[p.Id] = p
	}

	c.mu.Lock()
	c.entries[departmentId] = e
	c.mu.Unlock()
	return e, nil
}
