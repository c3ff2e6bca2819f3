package application

import (
	"context"
	"sort"
	"time"

	"user-access-management/go-backend/internal/domain/entity"
	"user-access-management/go-backend/internal/domain/repository"
)

// fakeStore is an in-memory stand-in for the postgres session. Reads hand
// out copies so service-side mutations only land after SaveChanges, matching
// the staged-write contract.
type fakeStore struct {
	users map[string]*entity.User

	staged    []*entity.User
	saveCalls int
	saveErr   error
	readErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*entity.User{}}
}

func (s *fakeStore) put(u *entity.User) {
	c := *u
	s.users[u.ID] = &c
}

func (s *fakeStore) NewSession() repository.Session { return &fakeSession{store: s} }

type fakeSession struct {
	store         *fakeStore
	rollbackCalls int
	txOpen        bool
}

func (s *fakeSession) Users() repository.UserRepository { return &fakeUserRepo{store: s.store} }

func (s *fakeSession) SaveChanges(context.Context) (int, error) {
	s.store.saveCalls++
	if s.store.saveErr != nil {
		return 0, s.store.saveErr
	}
	n := len(s.store.staged)
	for _, u := range s.store.staged {
		s.store.put(u)
	}
	s.store.staged = nil
	return n, nil
}

func (s *fakeSession) BeginTransaction(context.Context) error {
	s.txOpen = true
	return nil
}

func (s *fakeSession) Commit(ctx context.Context) error {
	if _, err := s.SaveChanges(ctx); err != nil {
		return err
	}
	s.txOpen = false
	return nil
}

func (s *fakeSession) Rollback(context.Context) error {
	s.rollbackCalls++
	s.store.staged = nil
	s.txOpen = false
	return nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}
	for _, u := range r.store.users {
		if !u.IsDeleted() && u.Email.Value() == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}
	u, ok := r.store.users[id]
	if !ok || u.IsDeleted() {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) Add(_ context.Context, u *entity.User) error {
	c := *u
	r.store.staged = append(r.store.staged, &c)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	c := *u
	r.store.staged = append(r.store.staged, &c)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, pageNumber, pageSize int) ([]*entity.User, error) {
	if r.store.readErr != nil {
		return nil, r.store.readErr
	}
	all := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		if !u.IsDeleted() {
			c := *u
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	offset := (pageNumber - 1) * pageSize
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeUserRepo) Count(context.Context) (int, error) {
	if r.store.readErr != nil {
		return 0, r.store.readErr
	}
	n := 0
	for _, u := range r.store.users {
		if !u.IsDeleted() {
			n++
		}
	}
	return n, nil
}

// fakeHasher is deterministic so tests can assert on stored hashes.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(plain string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plain, nil
}

func (h *fakeHasher) Verify(plain, hash string) bool {
	return hash == "hashed:"+plain
}

type fakeIssuer struct {
	ttl time.Duration
	err error
}

func (i *fakeIssuer) Issue(userID, _ string, issuedAt time.Time) (string, time.Time, error) {
	if i.err != nil {
		return "", time.Time{}, i.err
	}
	return "token-" + userID, issuedAt.Add(i.ttl), nil
}

type fakePublisher struct {
	published []any
	err       error
}

func (p *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, body)
	return nil
}

type fakeIndexer struct {
	indexed []string
	removed []string
	hits    []map[string]any
	err     error
}

func (f *fakeIndexer) Index(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.indexed = append(f.indexed, u.ID)
	return nil
}

func (f *fakeIndexer) Remove(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeIndexer) Search(_ context.Context, _ string, _ int) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}
