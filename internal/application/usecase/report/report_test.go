package report

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
	domainerror "github.com/finansync/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets []*entity.Budget
}

func (f *fakeBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error { return nil }

func (f *fakeBudgetRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}

func (f *fakeBudgetRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return f.budgets, nil
}

func (f *fakeBudgetRepo) ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

// fakeExpenseRepo serves a fixed expense list for the queried range and
// counts how often the range query runs, so tests can tell a cache hit
// from a recomputation.
type fakeExpenseRepo struct {
	expenses   []*entity.ExpenseWithBudget
	prevSums   map[uuid.UUID]decimal.Decimal
	rangeCalls int
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error { return nil }

func (f *fakeExpenseRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.ExpenseWithBudget, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ExpenseWithBudget, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) FindByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.ExpenseWithBudget, error) {
	f.rangeCalls++
	return f.expenses, nil
}

func (f *fakeExpenseRepo) SumByBudget(ctx context.Context, userID uuid.UUID, from, to *time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	if f.prevSums == nil {
		return map[uuid.UUID]decimal.Decimal{}, nil
	}
	return f.prevSums, nil
}

func (f *fakeExpenseRepo) CountByBudget(ctx context.Context, budgetID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

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

func expenseWithBudget(budget *entity.Budget, amount float64) *entity.ExpenseWithBudget {
	return &entity.ExpenseWithBudget{
		Expense: &entity.Expense{
			ID:       uuid.New(),
			Amount:   decimal.NewFromFloat(amount),
			BudgetID: budget.ID,
		},
		Budget: budget,
	}
}

func testBudget(name string, amount float64) *entity.Budget {
	return &entity.Budget{
		ID:     uuid.New(),
		Name:   name,
		Amount: decimal.NewFromFloat(amount),
	}
}

func TestMonthBounds(t *testing.T) {
	t.Run("regular month", func(t *testing.T) {
		start, end := MonthBounds(2026, time.March)

		if !start.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start: %v", start)
		}
		if end.Month() != time.March || end.Day() != 31 {
			t.Errorf("expected end on March 31, got %v", end)
		}
		if end.Hour() != 23 || end.Minute() != 59 {
			t.Errorf("expected end at the last instant of the day, got %v", end)
		}
	})

	t.Run("february in a leap year", func(t *testing.T) {
		_, end := MonthBounds(2024, time.February)
		if end.Day() != 29 {
			t.Errorf("expected February 29 in a leap year, got day %d", end.Day())
		}
	})

	t.Run("december rolls into the next year", func(t *testing.T) {
		start, end := MonthBounds(2025, time.December)
		if start.Year() != 2025 || end.Year() != 2025 {
			t.Errorf("bounds must stay inside the year: %v .. %v", start, end)
		}
		if end.Day() != 31 {
			t.Errorf("expected December 31, got day %d", end.Day())
		}
	})
}

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(2026)

	if !start.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", start)
	}
	if end.Year() != 2026 || end.Month() != time.December || end.Day() != 31 {
		t.Errorf("unexpected end: %v", end)
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantYear  int
		wantMonth time.Month
	}{
		{"mid year", 2026, time.June, 2026, time.May},
		{"january wraps to previous december", 2026, time.January, 2025, time.December},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotYear, gotMonth := PreviousMonth(tt.year, tt.month)
			if gotYear != tt.wantYear || gotMonth != tt.wantMonth {
				t.Errorf("PreviousMonth(%d, %v) = (%d, %v), want (%d, %v)",
					tt.year, tt.month, gotYear, gotMonth, tt.wantYear, tt.wantMonth)
			}
		})
	}
}

func TestTopCategories(t *testing.T) {
	groceries := testBudget("Groceries", 500)
	transport := testBudget("Transport", 200)
	fun := testBudget("Fun", 100)

	t.Run("groups by budget and sorts by amount", func(t *testing.T) {
		expenses := []*entity.ExpenseWithBudget{
			expenseWithBudget(transport, 30),
			expenseWithBudget(groceries, 100),
			expenseWithBudget(groceries, 50),
			expenseWithBudget(fun, 20),
		}

		categories := topCategories(expenses, 200, 5)

		if len(categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(categories))
		}
		if categories[0].Category != "Groceries" || categories[0].Amount != 150 {
			t.Errorf("expected Groceries with 150 first, got %s with %v", categories[0].Category, categories[0].Amount)
		}
		if categories[0].Percentage != 75 {
			t.Errorf("expected 75%% for Groceries, got %v", categories[0].Percentage)
		}
		if categories[0].BudgetID != groceries.ID.String() {
			t.Errorf("expected budget id %s, got %s", groceries.ID, categories[0].BudgetID)
		}
	})

	t.Run("applies the limit", func(t *testing.T) {
		expenses := []*entity.ExpenseWithBudget{
			expenseWithBudget(groceries, 100),
			expenseWithBudget(transport, 50),
			expenseWithBudget(fun, 20),
		}

		categories := topCategories(expenses, 170, 2)

		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		if categories[1].Category != "Transport" {
			t.Errorf("expected Transport second, got %s", categories[1].Category)
		}
	})

	t.Run("limit zero keeps all categories", func(t *testing.T) {
		expenses := []*entity.ExpenseWithBudget{
			expenseWithBudget(groceries, 100),
			expenseWithBudget(transport, 50),
			expenseWithBudget(fun, 20),
		}

		categories := topCategories(expenses, 170, 0)
		if len(categories) != 3 {
			t.Errorf("expected all categories with limit 0, got %d", len(categories))
		}
	})

	t.Run("zero total yields zero percentages", func(t *testing.T) {
		expenses := []*entity.ExpenseWithBudget{
			expenseWithBudget(groceries, 0),
		}

		categories := topCategories(expenses, 0, 5)
		if len(categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(categories))
		}
		if categories[0].Percentage != 0 {
			t.Errorf("expected 0%% with zero total, got %v", categories[0].Percentage)
		}
	})

	t.Run("no expenses yields an empty slice", func(t *testing.T) {
		categories := topCategories(nil, 0, 5)
		if len(categories) != 0 {
			t.Errorf("expected no categories, got %d", len(categories))
		}
	})
}

func TestBuildBudgetPerformance(t *testing.T) {
	groceries := testBudget("Groceries", 500)
	transport := testBudget("Transport", 200)
	empty := testBudget("Empty", 0)

	spent := map[uuid.UUID]decimal.Decimal{
		groceries.ID: decimal.NewFromFloat(550),
		transport.ID: decimal.NewFromFloat(100),
	}

	performance := buildBudgetPerformance([]*entity.Budget{groceries, transport, empty}, spent)

	if len(performance) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(performance))
	}

	t.Run("over budget", func(t *testing.T) {
		if performance[0].Status != entity.BudgetStatusOver {
			t.Errorf("expected status over at 110%%, got %s", performance[0].Status)
		}
		if performance[0].Percentage != 110 {
			t.Errorf("expected 110%%, got %v", performance[0].Percentage)
		}
	})

	t.Run("under budget", func(t *testing.T) {
		if performance[1].Status != entity.BudgetStatusUnder {
			t.Errorf("expected status under at 50%%, got %s", performance[1].Status)
		}
	})

	t.Run("zero amount budget reports zero percentage", func(t *testing.T) {
		if performance[2].Percentage != 0 {
			t.Errorf("expected 0%% for zero-amount budget, got %v", performance[2].Percentage)
		}
		if performance[2].Status != entity.BudgetStatusUnder {
			t.Errorf("expected status under for untouched budget, got %s", performance[2].Status)
		}
	})
}

func TestBuildTrends(t *testing.T) {
	t.Run("expense growth", func(t *testing.T) {
		trends := buildTrends(150, -150, 100)
		if trends.ExpensesTrend != 50 {
			t.Errorf("expected 50%% expense trend, got %v", trends.ExpensesTrend)
		}
	})

	t.Run("expense reduction", func(t *testing.T) {
		trends := buildTrends(50, -50, 100)
		if trends.ExpensesTrend != -50 {
			t.Errorf("expected -50%% expense trend, got %v", trends.ExpensesTrend)
		}
	})

	t.Run("zero previous month yields flat trends", func(t *testing.T) {
		trends := buildTrends(100, -100, 0)
		if trends.ExpensesTrend != 0 || trends.SavingsTrend != 0 {
			t.Errorf("expected flat trends, got %+v", trends)
		}
	})
}

func TestBuildBudgetAnalysis(t *testing.T) {
	t.Run("no budgets", func(t *testing.T) {
		analysis := buildBudgetAnalysis(nil, nil)
		if analysis.MostOverspent != "None" || analysis.MostUnderspent != "None" {
			t.Errorf("expected None placeholders, got %+v", analysis)
		}
		if analysis.AverageUtilization != 0 {
			t.Errorf("expected 0 utilization, got %v", analysis.AverageUtilization)
		}
	})

	t.Run("flags overspent and underspent budgets", func(t *testing.T) {
		over := testBudget("Dining", 100)   // annual limit 1200
		under := testBudget("Travel", 100)  // annual limit 1200
		middle := testBudget("Bills", 100)  // annual limit 1200

		spent := map[uuid.UUID]decimal.Decimal{
			over.ID:   decimal.NewFromFloat(1500), // 125%
			under.ID:  decimal.NewFromFloat(120),  // 10%
			middle.ID: decimal.NewFromFloat(900),  // 75%
		}

		analysis := buildBudgetAnalysis([]*entity.Budget{over, under, middle}, spent)

		if analysis.MostOverspent != "Dining" {
			t.Errorf("expected Dining overspent, got %s", analysis.MostOverspent)
		}
		if analysis.MostUnderspent != "Travel" {
			t.Errorf("expected Travel underspent, got %s", analysis.MostUnderspent)
		}
		expected := (125.0 + 10.0 + 75.0) / 3
		if analysis.AverageUtilization != expected {
			t.Errorf("expected %v average utilization, got %v", expected, analysis.AverageUtilization)
		}
	})

	t.Run("thresholds leave placeholders when not crossed", func(t *testing.T) {
		b := testBudget("Steady", 100)
		spent := map[uuid.UUID]decimal.Decimal{
			b.ID: decimal.NewFromFloat(900), // 75%
		}

		analysis := buildBudgetAnalysis([]*entity.Budget{b}, spent)
		if analysis.MostOverspent != "None" {
			t.Errorf("expected no overspent budget, got %s", analysis.MostOverspent)
		}
		if analysis.MostUnderspent != "None" {
			t.Errorf("expected no underspent budget, got %s", analysis.MostUnderspent)
		}
	})
}

func TestGenerateMonthlyReportUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	fixedNow := func() time.Time {
		return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	}

	newExecuteFixture := func() (*GenerateMonthlyReportUseCase, *fakeExpenseRepo, *fakeCache) {
		groceries := testBudget("Groceries", 500)
		expenseRepo := &fakeExpenseRepo{
			expenses: []*entity.ExpenseWithBudget{
				expenseWithBudget(groceries, 100),
				expenseWithBudget(groceries, 50),
			},
			prevSums: map[uuid.UUID]decimal.Decimal{
				groceries.ID: decimal.NewFromFloat(100),
			},
		}
		cache := newFakeCache()
		uc := NewGenerateMonthlyReportUseCase(
			&fakeBudgetRepo{budgets: []*entity.Budget{groceries}},
			expenseRepo, cache, fixedNow,
		)
		return uc, expenseRepo, cache
	}

	t.Run("builds and caches the report", func(t *testing.T) {
		uc, _, cache := newExecuteFixture()

		output, err := uc.Execute(context.Background(), GenerateMonthlyReportInput{
			UserID: userID,
			Year:   2026,
			Month:  time.August,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Cached {
			t.Error("expected a fresh report on the first call")
		}
		if output.Report.Period != "August 2026" {
			t.Errorf("unexpected period: %s", output.Report.Period)
		}
		if output.Report.TotalExpenses != 150 {
			t.Errorf("expected 150 total expenses, got %v", output.Report.TotalExpenses)
		}
		if output.Report.Trends.ExpensesTrend != 50 {
			t.Errorf("expected 50%% expense trend, got %v", output.Report.Trends.ExpensesTrend)
		}

		key := adapter.MonthlyReportKey(userID.String(), 2026, time.August)
		if len(cache.sets) != 1 || cache.sets[0] != key {
			t.Errorf("expected a single cache write under %s, got %v", key, cache.sets)
		}
	})

	t.Run("serves the second call from cache", func(t *testing.T) {
		uc, expenseRepo, cache := newExecuteFixture()
		input := GenerateMonthlyReportInput{UserID: userID, Year: 2026, Month: time.August}

		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error on first call: %v", err)
		}
		callsAfterFirst := expenseRepo.rangeCalls

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error on second call: %v", err)
		}
		if !output.Cached {
			t.Error("expected the second call to be served from cache")
		}
		if output.Report.TotalExpenses != 150 {
			t.Errorf("expected the cached report to round trip, got %v total expenses", output.Report.TotalExpenses)
		}
		if expenseRepo.rangeCalls != callsAfterFirst {
			t.Errorf("expected no recomputation on a cache hit, got %d extra range queries",
				expenseRepo.rangeCalls-callsAfterFirst)
		}
		if len(cache.sets) != 1 {
			t.Errorf("expected no second cache write, got %d", len(cache.sets))
		}
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		uc, _, cache := newExecuteFixture()

		if _, err := uc.Execute(context.Background(), GenerateMonthlyReportInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		key := adapter.MonthlyReportKey(userID.String(), 2026, time.August)
		if len(cache.sets) != 1 || cache.sets[0] != key {
			t.Errorf("expected the current month key %s, got %v", key, cache.sets)
		}
	})
}
