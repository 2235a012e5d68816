// Package memory implements the repository contracts over in-process
// maps. Every Store is fully isolated, which is exactly what tests need.
package memory

import (
	"context"
	"sync"

	"github.com/andeanbank/corebank/pkg/domain/ledger"
	"github.com/andeanbank/corebank/pkg/repository"
	"github.com/google/uuid"
)

// Store holds all in-memory state. A single mutex serializes units of
// work, which satisfies the per-account serialization the ledger
// requires (coarser than row locks, but correct).
type Store struct {
	mu        sync.Mutex
	accounts  map[uuid.UUID]*ledger.Account
	order     []uuid.UUID // insertion order of account creation
	movements map[uuid.UUID][]*ledger.Movement
	transfers []*ledger.Transfer
	credits   map[uuid.UUID][]*ledger.Credit
	loans     map[uuid.UUID][]*ledger.Loan
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		accounts:  make(map[uuid.UUID]*ledger.Account),
		movements: make(map[uuid.UUID][]*ledger.Movement),
		credits:   make(map[uuid.UUID][]*ledger.Credit),
		loans:     make(map[uuid.UUID][]*ledger.Loan),
	}
}

// snapshot captures the store state so a failed unit of work can be
// rolled back. Movements, transfers, credits and loans are immutable
// records, so sharing their pointers across snapshots is safe; accounts
// are mutable and get copied.
func (s *Store) snapshot() *Store {
	snap := NewStore()
	for id, a := range s.accounts {
		cp := *a
		snap.accounts[id] = &cp
	}
	snap.order = append([]uuid.UUID(nil), s.order...)
	for id, ms := range s.movements {
		snap.movements[id] = append([]*ledger.Movement(nil), ms...)
	}
	snap.transfers = append([]*ledger.Transfer(nil), s.transfers...)
	for id, cs := range s.credits {
		snap.credits[id] = append([]*ledger.Credit(nil), cs...)
	}
	for id, ls := range s.loans {
		snap.loans[id] = append([]*ledger.Loan(nil), ls...)
	}
	return snap
}

func (s *Store) restore(snap *Store) {
	s.accounts = snap.accounts
	s.order = snap.order
	s.movements = snap.movements
	s.transfers = snap.transfers
	s.credits = snap.credits
	s.loans = snap.loans
}

// AddCredit seeds a credit line. Intended for tests and fixtures; the
// ledger core only reads facilities.
func (s *Store) AddCredit(c *ledger.Credit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credits[c.AccountID] = append(s.credits[c.AccountID], c)
}

// AddLoan seeds a loan. Intended for tests and fixtures.
func (s *Store) AddLoan(l *ledger.Loan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loans[l.AccountID] = append(s.loans[l.AccountID], l)
}

// UoW is the in-memory unit of work.
type UoW struct {
	store *Store
}

// NewUoW creates a unit of work over a fresh store.
func NewUoW() *UoW {
	return &UoW{store: NewStore()}
}

// NewUoWWithStore creates a unit of work over an existing store, so a
// test can share state between a UoW and seeding helpers.
func NewUoWWithStore(store *Store) *UoW {
	return &UoW{store: store}
}

// Store exposes the underlying store for seeding in tests.
func (u *UoW) Store() *Store {
	return u.store
}

// Do runs fn while holding the store lock; on error the store is
// restored to its pre-fn snapshot, so a rejected operation leaves no
// partial mutation behind. Do is not reentrant.
func (u *UoW) Do(_ context.Context, fn func(uow repository.UnitOfWork) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	snap := u.store.snapshot()
	if err := fn(&UoW{store: u.store}); err != nil {
		u.store.restore(snap)
		return err
	}
	return nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return &accountRepository{store: u.store}, nil
}

// MovementRepository implements repository.UnitOfWork.
func (u *UoW) MovementRepository() (repository.MovementRepository, error) {
	return &movementRepository{store: u.store}, nil
}

// TransferRepository implements repository.UnitOfWork.
func (u *UoW) TransferRepository() (repository.TransferRepository, error) {
	return &transferRepository{store: u.store}, nil
}

// CreditRepository implements repository.UnitOfWork.
func (u *UoW) CreditRepository() (repository.CreditRepository, error) {
	return &creditRepository{store: u.store}, nil
}

// LoanRepository implements repository.UnitOfWork.
func (u *UoW) LoanRepository() (repository.LoanRepository, error) {
	return &loanRepository{store: u.store}, nil
}

type accountRepository struct {
	store *Store
}

func copyAccount(a *ledger.Account) *ledger.Account {
	cp := *a
	return &cp
}

func (r *accountRepository) Get(id uuid.UUID) (*ledger.Account, error) {
	a, ok := r.store.accounts[id]
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	return copyAccount(a), nil
}

// GetForUpdate returns copies in the requested order. The store-wide
// lock held by Do already serializes writers.
func (r *accountRepository) GetForUpdate(ids ...uuid.UUID) ([]*ledger.Account, error) {
	out := make([]*ledger.Account, 0, len(ids))
	for _, id := range ids {
		a, err := r.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *accountRepository) GetByNumber(number string) (*ledger.Account, error) {
	for _, a := range r.store.accounts {
		if a.Number == number {
			return copyAccount(a), nil
		}
	}
	return nil, ledger.ErrAccountNotFound
}

func (r *accountRepository) GetByEmail(email string) (*ledger.Account, error) {
	for _, a := range r.store.accounts {
		if a.Email == email {
			return copyAccount(a), nil
		}
	}
	return nil, ledger.ErrAccountNotFound
}

func (r *accountRepository) Create(a *ledger.Account) error {
	if _, exists := r.store.accounts[a.ID]; exists {
		return ledger.ErrAccountNumberTaken
	}
	for _, existing := range r.store.accounts {
		if existing.Email == a.Email {
			return ledger.ErrEmailAlreadyRegistered
		}
		if existing.Number == a.Number {
			return ledger.ErrAccountNumberTaken
		}
	}
	r.store.accounts[a.ID] = copyAccount(a)
	r.store.order = append(r.store.order, a.ID)
	return nil
}

func (r *accountRepository) Update(a *ledger.Account) error {
	if _, ok := r.store.accounts[a.ID]; !ok {
		return ledger.ErrAccountNotFound
	}
	r.store.accounts[a.ID] = copyAccount(a)
	return nil
}

func (r *accountRepository) Delete(id uuid.UUID) error {
	if _, ok := r.store.accounts[id]; !ok {
		return ledger.ErrAccountNotFound
	}
	delete(r.store.accounts, id)
	for i, other := range r.store.order {
		if other == id {
			r.store.order = append(r.store.order[:i], r.store.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns accounts in reverse insertion order, i.e. creation time
// descending.
func (r *accountRepository) List() ([]*ledger.Account, error) {
	out := make([]*ledger.Account, 0, len(r.store.order))
	for i := len(r.store.order) - 1; i >= 0; i-- {
		if a, ok := r.store.accounts[r.store.order[i]]; ok {
			out = append(out, copyAccount(a))
		}
	}
	return out, nil
}

type movementRepository struct {
	store *Store
}

func (r *movementRepository) Create(m *ledger.Movement) error {
	r.store.movements[m.AccountID] = append(r.store.movements[m.AccountID], m)
	return nil
}

// ListByAccount returns movements newest first (reverse append order).
func (r *movementRepository) ListByAccount(accountID uuid.UUID) ([]*ledger.Movement, error) {
	ms := r.store.movements[accountID]
	out := make([]*ledger.Movement, 0, len(ms))
	for i := len(ms) - 1; i >= 0; i-- {
		out = append(out, ms[i])
	}
	return out, nil
}

func (r *movementRepository) CountByAccount(accountID uuid.UUID) (int64, error) {
	return int64(len(r.store.movements[accountID])), nil
}

type transferRepository struct {
	store *Store
}

func (r *transferRepository) Create(t *ledger.Transfer) error {
	r.store.transfers = append(r.store.transfers, t)
	return nil
}

func (r *transferRepository) GetByReference(reference string) (*ledger.Transfer, error) {
	for _, t := range r.store.transfers {
		if t.Reference == reference {
			return t, nil
		}
	}
	return nil, ledger.ErrAccountNotFound
}

func (r *transferRepository) ListByAccount(accountID uuid.UUID) ([]*ledger.Transfer, error) {
	var out []*ledger.Transfer
	for i := len(r.store.transfers) - 1; i >= 0; i-- {
		t := r.store.transfers[i]
		if t.FromAccountID == accountID || t.ToAccountID == accountID {
			out = append(out, t)
		}
	}
	return out, nil
}

type creditRepository struct {
	store *Store
}

func (r *creditRepository) ListByAccount(accountID uuid.UUID) ([]*ledger.Credit, error) {
	return append([]*ledger.Credit(nil), r.store.credits[accountID]...), nil
}

func (r *creditRepository) CountByAccount(accountID uuid.UUID) (int64, error) {
	return int64(len(r.store.credits[accountID])), nil
}

type loanRepository struct {
	store *Store
}

func (r *loanRepository) ListByAccount(accountID uuid.UUID) ([]*ledger.Loan, error) {
	return append([]*ledger.Loan(nil), r.store.loans[accountID]...), nil
}

func (r *loanRepository) CountByAccount(accountID uuid.UUID) (int64, error) {
	return int64(len(r.store.loans[accountID])), nil
}
