package inmemdb

import (
	"sort"
	"sync"

	"github.com/trezcool/mipango/core/user"
)

type userRepository struct {
	mu      sync.RWMutex
	users   map[string]user.User
	signups map[string]user.SignupRequest
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository() *userRepository {
	return &userRepository{
		users:   make(map[string]user.User),
		signups: make(map[string]user.SignupRequest),
	}
}

func (repo *userRepository) CreateUser(u user.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.users[u.ID] = u
	return nil
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	users := make([]user.User, 0, len(repo.users))
	for _, u := range repo.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users, nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if u, ok := repo.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, u := range repo.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) CreateSignupRequest(sr user.SignupRequest) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.signups[sr.ID] = sr
	return nil
}

func (repo *userRepository) QueryAllSignupRequests() ([]user.SignupRequest, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	reqs := make([]user.SignupRequest, 0, len(repo.signups))
	for _, sr := range repo.signups {
		reqs = append(reqs, sr)
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].CreatedAt.Before(reqs[j].CreatedAt) })
	return reqs, nil
}

func (repo *userRepository) GetSignupRequestByID(id string) (user.SignupRequest, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if sr, ok := repo.signups[id]; ok {
		return sr, nil
	}
	return user.SignupRequest{}, user.ErrNotFound
}

func (repo *userRepository) DeleteSignupRequest(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.signups[id]; !ok {
		return user.ErrNotFound
	}
	delete(repo.signups, id)
	return nil
}
