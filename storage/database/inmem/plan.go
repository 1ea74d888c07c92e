package inmemdb

import (
	"sort"
	"strings"
	"sync"

	"github.com/trezcool/mipango/core/plan"
)

type planRepository struct {
	mu    sync.RWMutex
	plans map[string]plan.CoursePlan
}

var _ plan.Repository = (*planRepository)(nil)

func NewPlanRepository() *planRepository {
	return &planRepository{plans: make(map[string]plan.CoursePlan)}
}

func (repo *planRepository) CreatePlan(p plan.CoursePlan) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.plans[p.ID] = p
	return nil
}

func (repo *planRepository) QueryAllPlans() ([]plan.CoursePlan, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	plans := make([]plan.CoursePlan, 0, len(repo.plans))
	for _, p := range repo.plans {
		plans = append(plans, p)
	}
	sortPlans(plans)
	return plans, nil
}

func (repo *planRepository) GetPlanByID(id string) (plan.CoursePlan, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if p, ok := repo.plans[id]; ok {
		return p, nil
	}
	return plan.CoursePlan{}, plan.ErrNotFound
}

func (repo *planRepository) UpdatePlan(p plan.CoursePlan) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.plans[p.ID]; !ok {
		return plan.ErrNotFound
	}
	repo.plans[p.ID] = p
	return nil
}

func (repo *planRepository) FilterPlans(f plan.QueryFilter) ([]plan.CoursePlan, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(f.Search))
	plans := make([]plan.CoursePlan, 0, len(repo.plans))
	for _, p := range repo.plans {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.CreatedBy != "" && p.CreatedBy != f.CreatedBy {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		plans = append(plans, p)
	}
	sortPlans(plans)
	return plans, nil
}

func matchesSearch(p plan.CoursePlan, search string) bool {
	for _, s := range []string{p.Subject, p.CourseCode, p.Department, p.CreatedByName} {
		if strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}

// newest first
func sortPlans(plans []plan.CoursePlan) {
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
}
