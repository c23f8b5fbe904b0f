package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/domain/entity"
)

type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (f *fakeBudgetRepo) Create(context.Context, *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) FindByIDAndUser(context.Context, uuid.UUID, uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}
func (f *fakeBudgetRepo) FindByUser(context.Context, uuid.UUID) ([]*entity.Budget, error) {
	return f.budgets, nil
}
func (f *fakeBudgetRepo) ExistsByNameAndUser(context.Context, string, uuid.UUID, *uuid.UUID) (bool, error) {
	return false, nil
}
func (f *fakeBudgetRepo) Update(context.Context, *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) Delete(context.Context, uuid.UUID) error      { return nil }

type fakeExpenseRepo struct {
	expenses   []*entity.ExpenseWithBudget
	userLimits []int
}

func (f *fakeExpenseRepo) Create(context.Context, *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) FindByIDAndUser(context.Context, uuid.UUID, uuid.UUID) (*entity.ExpenseWithBudget, error) {
	return nil, nil
}
func (f *fakeExpenseRepo) FindByUser(_ context.Context, _ uuid.UUID, limit int) ([]*entity.ExpenseWithBudget, error) {
	f.userLimits = append(f.userLimits, limit)
	if limit > 0 && limit < len(f.expenses) {
		return f.expenses[:limit], nil
	}
	return f.expenses, nil
}
func (f *fakeExpenseRepo) FindByUserInRange(_ context.Context, _ uuid.UUID, from, to time.Time) ([]*entity.ExpenseWithBudget, error) {
	var out []*entity.ExpenseWithBudget
	for _, e := range f.expenses {
		created := e.Expense.CreatedAt
		if !created.Before(from) && !created.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeExpenseRepo) SumByBudget(context.Context, uuid.UUID, *time.Time, *time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range f.expenses {
		sums[e.Expense.BudgetID] = sums[e.Expense.BudgetID].Add(e.Expense.Amount)
	}
	return sums, nil
}
func (f *fakeExpenseRepo) CountByBudget(context.Context, uuid.UUID) (int64, error) { return 0, nil }
func (f *fakeExpenseRepo) Update(context.Context, *entity.Expense) error           { return nil }
func (f *fakeExpenseRepo) Delete(context.Context, uuid.UUID) error                 { return nil }

// fakeCache stores JSON-encoded entries in memory, mirroring the real
// round trip through Redis.
type fakeCache struct {
	entries map[string][]byte
	sets    []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	f.sets = append(f.sets, key)
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}

func expenseWithBudget(budget *entity.Budget, name string, amount float64, createdAt time.Time) *entity.ExpenseWithBudget {
	return &entity.ExpenseWithBudget{
		Expense: &entity.Expense{
			ID:        uuid.New(),
			Name:      name,
			Amount:    decimal.NewFromFloat(amount),
			BudgetID:  budget.ID,
			CreatedAt: createdAt,
		},
		Budget: budget,
	}
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	fixedNow := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	groceries := &entity.Budget{
		ID:     uuid.New(),
		Name:   "Groceries",
		Amount: decimal.NewFromFloat(500),
		Icon:   "🛒",
		Color:  "#22c55e",
		UserID: userID,
	}

	expenses := []*entity.ExpenseWithBudget{
		expenseWithBudget(groceries, "Supermarket", 100, time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)),
		expenseWithBudget(groceries, "Bakery", 25, time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)),
		// Outside the current month, still counts toward budget progress.
		expenseWithBudget(groceries, "Old groceries", 75, time.Date(2026, time.July, 2, 0, 0, 0, 0, time.UTC)),
	}

	uc := NewGetDashboardUseCase(
		&fakeBudgetRepo{budgets: []*entity.Budget{groceries}},
		&fakeExpenseRepo{expenses: expenses},
		newFakeCache(),
		func() time.Time { return fixedNow },
	)

	out, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Cached {
		t.Error("expected a fresh dashboard on first call")
	}
	d := out.Dashboard

	if d.TotalBudget != 500 {
		t.Errorf("expected 500 total budget, got %v", d.TotalBudget)
	}
	if d.TotalSpent != 125 {
		t.Errorf("expected 125 spent this month, got %v", d.TotalSpent)
	}
	if d.TotalRemaining != 375 {
		t.Errorf("expected 375 remaining, got %v", d.TotalRemaining)
	}
	if d.SpentPercentage != 25 {
		t.Errorf("expected 25%% spent, got %d", d.SpentPercentage)
	}

	if len(d.BudgetProgress) != 1 {
		t.Fatalf("expected 1 progress entry, got %d", len(d.BudgetProgress))
	}
	p := d.BudgetProgress[0]
	if p.Spent != 200 {
		t.Errorf("expected all-time spend 200 in progress, got %v", p.Spent)
	}
	if p.Percentage != 40 {
		t.Errorf("expected 40%% progress, got %d", p.Percentage)
	}
	if p.Remaining != 300 {
		t.Errorf("expected 300 remaining, got %v", p.Remaining)
	}
	if p.Icon != "🛒" || p.Color != "#22c55e" {
		t.Errorf("expected budget styling, got %s / %s", p.Icon, p.Color)
	}

	if len(d.RecentExpenses) != 3 {
		t.Fatalf("expected 3 recent expenses, got %d", len(d.RecentExpenses))
	}
	if d.RecentExpenses[0].Name != "Supermarket" || d.RecentExpenses[0].Budget.Name != "Groceries" {
		t.Errorf("unexpected feed entry: %+v", d.RecentExpenses[0])
	}

	if d.Summary.BudgetCount != 1 || d.Summary.ExpenseCount != 2 {
		t.Errorf("unexpected summary counts: %+v", d.Summary)
	}
	if d.Summary.AverageExpense != 62.5 {
		t.Errorf("expected 62.5 average, got %v", d.Summary.AverageExpense)
	}
}

func TestGetDashboardUseCase_EmptyState(t *testing.T) {
	uc := NewGetDashboardUseCase(
		&fakeBudgetRepo{},
		&fakeExpenseRepo{},
		newFakeCache(),
		time.Now,
	)

	out, err := uc.Execute(context.Background(), GetDashboardInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := out.Dashboard

	if d.TotalBudget != 0 || d.TotalSpent != 0 || d.SpentPercentage != 0 {
		t.Errorf("expected zero totals, got %+v", d)
	}
	if d.Summary.AverageExpense != 0 {
		t.Errorf("expected zero average, got %v", d.Summary.AverageExpense)
	}
	if len(d.BudgetProgress) != 0 || len(d.RecentExpenses) != 0 {
		t.Errorf("expected empty lists, got %+v", d)
	}
}

func TestGetDashboardUseCase_ServesFromCache(t *testing.T) {
	userID := uuid.New()
	budget := &entity.Budget{ID: uuid.New(), Name: "Groceries", Amount: decimal.NewFromFloat(100), UserID: userID}
	cache := newFakeCache()
	expenseRepo := &fakeExpenseRepo{}

	uc := NewGetDashboardUseCase(
		&fakeBudgetRepo{budgets: []*entity.Budget{budget}},
		expenseRepo,
		cache,
		time.Now,
	)

	first, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached {
		t.Error("expected a miss on first call")
	}
	if len(cache.sets) != 1 {
		t.Fatalf("expected 1 cache write, got %d", len(cache.sets))
	}

	second, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached {
		t.Error("expected a hit on second call")
	}
	if second.Dashboard.TotalBudget != first.Dashboard.TotalBudget {
		t.Errorf("cached payload diverged: %v != %v", second.Dashboard.TotalBudget, first.Dashboard.TotalBudget)
	}
	if len(cache.sets) != 1 {
		t.Errorf("expected no second cache write, got %d", len(cache.sets))
	}
}

func TestGetDashboardUseCase_LimitsRecentFeed(t *testing.T) {
	userID := uuid.New()
	budget := &entity.Budget{ID: uuid.New(), Name: "Groceries", Amount: decimal.NewFromFloat(100), UserID: userID}
	expenseRepo := &fakeExpenseRepo{}

	uc := NewGetDashboardUseCase(
		&fakeBudgetRepo{budgets: []*entity.Budget{budget}},
		expenseRepo,
		newFakeCache(),
		time.Now,
	)

	if _, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expenseRepo.userLimits) != 1 || expenseRepo.userLimits[0] != recentExpenseCount {
		t.Errorf("expected feed query limited to %d, got %v", recentExpenseCount, expenseRepo.userLimits)
	}
}
