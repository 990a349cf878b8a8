package service

import (
	"fmt"
	"sync"

	"github.com/locvowork/employee_roster/internal/domain"
)

// PositionCatalog is an in-memory registry of positions, kept in insertion order.
type PositionCatalog struct {
	mu        sync.RWMutex
	positions map[string]*domain.Position
	order     []string
}

var _ domain.PositionRegistry = (*PositionCatalog)(nil)

func NewPositionCatalog() *PositionCatalog {
	return &PositionCatalog{
		positions: make(map[string]*domain.Position),
	}
}

// Add registers p. The catalog keeps the pointer so employees share it.
func (c *PositionCatalog) Add(p *domain.Position) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("position id cannot be empty: %w", domain.ErrInvalidInput)
	}
	if p.MinSalary > p.MaxSalary {
		return fmt.Errorf("position %s: %w", p.ID, domain.ErrInvalidBand)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.positions[p.ID]; ok {
		return fmt.Errorf("position %s: %w", p.ID, domain.ErrDuplicatePosition)
	}
	c.positions[p.ID] = p
	c.order = append(c.order, p.ID)
	return nil
}

func (c *PositionCatalog) Get(id string) (*domain.Position, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.positions[id]
	if !ok {
		return nil, fmt.Errorf("position %s: %w", id, domain.ErrPositionNotFound)
	}
	return p, nil
}

// List returns copies of all positions in registration order.
func (c *PositionCatalog) List() []domain.Position {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Position, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.positions[id])
	}
	return out
}
