package memory

import (
	"context"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/master/contract"
)

type ContractRepository struct {
	mu        sync.RWMutex
	contracts []contract.Contract
}

func NewContractRepository(seed []contract.Contract) *ContractRepository {
	return &ContractRepository{contracts: cloneSlice(seed)}
}

func (r *ContractRepository) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = nextID(r.contracts, func(ct contract.Contract) int { return ct.ID })
	r.contracts = append(cloneSlice(r.contracts), c)
	return c, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id int) (contract.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contracts {
		if c.ID == id {
			return c, nil
		}
	}
	return contract.Contract{}, contract.ErrContractNotFound
}

func (r *ContractRepository) List(ctx context.Context) ([]contract.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.contracts), nil
}

func (r *ContractRepository) Update(ctx context.Context, c contract.Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.contracts)
	for i, existing := range next {
		if existing.ID == c.ID {
			next[i] = c
			break
		}
	}
	r.contracts = next
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]contract.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		if c.ID != id {
			next = append(next, c)
		}
	}
	r.contracts = next
	return nil
}
