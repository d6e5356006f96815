package repository

import (
	"sync"

	"github.com/vasavigrand/vgbilling/internal/bill/domain"
)

type memoryStore struct {
	mu     sync.RWMutex
	byNum  map[string]*domain.Bill
	byIdem map[string]*domain.Bill
	order  []string
}

// NewMemoryStore holds issued bills for the lifetime of the process.
func NewMemoryStore() domain.Store {
	return &memoryStore{
		byNum:  make(map[string]*domain.Bill),
		byIdem: make(map[string]*domain.Bill),
	}
}

func (s *memoryStore) Save(bill *domain.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byNum[bill.Number]; !exists {
		s.order = append(s.order, bill.Number)
	}
	s.byNum[bill.Number] = bill
}

func (s *memoryStore) Get(number string) (*domain.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bill, ok := s.byNum[number]
	return bill, ok
}

func (s *memoryStore) GetByIdempotencyKey(key string) (*domain.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bill, ok := s.byIdem[key]
	return bill, ok
}

func (s *memoryStore) SaveIdempotencyKey(key string, bill *domain.Bill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byIdem[key] = bill
}

func (s *memoryStore) List() []*domain.Bill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bills := make([]*domain.Bill, 0, len(s.order))
	for _, number := range s.order {
		bills = append(bills, s.byNum[number])
	}
	return bills
}
