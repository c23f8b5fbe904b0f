package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/domain/entity"
	domainerror "github.com/finansync/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
}

func (f *fakeBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error { return nil }

func (f *fakeBudgetRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	b, ok := f.budgets[id]
	if !ok || b.UserID != userID {
		return nil, domainerror.ErrBudgetNotFound
	}
	return b, nil
}

func (f *fakeBudgetRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return nil, nil
}

func (f *fakeBudgetRepo) ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error { return nil }
func (f *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.ExpenseWithBudget
	created  *entity.Expense
	updated  *entity.Expense
	deleted  []uuid.UUID
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.ExpenseWithBudget)}
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	f.created = expense
	return nil
}

func (f *fakeExpenseRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.ExpenseWithBudget, error) {
	e, ok := f.expenses[id]
	if !ok || e.Expense.UserID != userID {
		return nil, domainerror.ErrExpenseNotFound
	}
	return e, nil
}

func (f *fakeExpenseRepo) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ExpenseWithBudget, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) FindByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.ExpenseWithBudget, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) SumByBudget(ctx context.Context, userID uuid.UUID, from, to *time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	return map[uuid.UUID]decimal.Decimal{}, nil
}

func (f *fakeExpenseRepo) CountByBudget(ctx context.Context, budgetID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	f.updated = expense
	return nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCache struct {
	deleted []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dest any) (bool, error) { return false, nil }

func (c *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.deleted = append(c.deleted, keys...)
	return nil
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
}

func expenseCode(t *testing.T, err error) domainerror.ExpenseErrorCode {
	t.Helper()
	var expErr *domainerror.ExpenseError
	if !errors.As(err, &expErr) {
		t.Fatalf("expected an expense error, got %v", err)
	}
	return expErr.Code
}

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	budget := entity.NewBudget("Groceries", decimal.NewFromFloat(500), "🛒", "#22c55e", userID)

	setup := func() (*fakeExpenseRepo, *fakeBudgetRepo, *fakeCache, *CreateExpenseUseCase) {
		expenseRepo := newFakeExpenseRepo()
		budgetRepo := newFakeBudgetRepo()
		budgetRepo.budgets[budget.ID] = budget
		cache := &fakeCache{}
		return expenseRepo, budgetRepo, cache, NewCreateExpenseUseCase(expenseRepo, budgetRepo, cache, fixedNow)
	}

	t.Run("creates an expense in the budget", func(t *testing.T) {
		expenseRepo, _, cache, uc := setup()

		output, err := uc.Execute(context.Background(), CreateExpenseInput{
			Name:     "Supermarket run",
			Amount:   decimal.NewFromFloat(89.90),
			BudgetID: budget.ID,
			UserID:   userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if expenseRepo.created == nil {
			t.Fatal("expected the expense to be persisted")
		}
		if output.Expense.Budget.Name != "Groceries" {
			t.Errorf("expected the owning budget attached, got %s", output.Expense.Budget.Name)
		}
		if len(cache.deleted) == 0 {
			t.Error("expected user caches to be invalidated")
		}
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, _, _, uc := setup()

		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Amount:   decimal.NewFromFloat(10),
			BudgetID: budget.ID,
			UserID:   userID,
		})
		if code := expenseCode(t, err); code != domainerror.ErrCodeMissingExpenseFields {
			t.Errorf("expected missing fields code, got %s", code)
		}
	})

	t.Run("rejects a zero amount as missing", func(t *testing.T) {
		_, _, _, uc := setup()

		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Name:     "Free lunch",
			BudgetID: budget.ID,
			UserID:   userID,
		})
		if code := expenseCode(t, err); code != domainerror.ErrCodeMissingExpenseFields {
			t.Errorf("expected missing fields code, got %s", code)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		_, _, _, uc := setup()

		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Name:     "Refund",
			Amount:   decimal.NewFromFloat(-5),
			BudgetID: budget.ID,
			UserID:   userID,
		})
		if code := expenseCode(t, err); code != domainerror.ErrCodeInvalidExpenseAmount {
			t.Errorf("expected invalid amount code, got %s", code)
		}
	})

	t.Run("rejects an unknown budget", func(t *testing.T) {
		_, _, _, uc := setup()

		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Name:     "Ghost",
			Amount:   decimal.NewFromFloat(10),
			BudgetID: uuid.New(),
			UserID:   userID,
		})
		if code := expenseCode(t, err); code != domainerror.ErrCodeExpenseBudgetNotFound {
			t.Errorf("expected budget not found code, got %s", code)
		}
	})

	t.Run("rejects a budget owned by another user", func(t *testing.T) {
		_, budgetRepo, _, uc := setup()
		foreign := entity.NewBudget("Foreign", decimal.NewFromFloat(100), "", "", uuid.New())
		budgetRepo.budgets[foreign.ID] = foreign

		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Name:     "Sneaky",
			Amount:   decimal.NewFromFloat(10),
			BudgetID: foreign.ID,
			UserID:   userID,
		})
		if code := expenseCode(t, err); code != domainerror.ErrCodeExpenseBudgetNotFound {
			t.Errorf("expected budget not found code, got %s", code)
		}
	})
}

func TestUpdateExpenseUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	budget := entity.NewBudget("Groceries", decimal.NewFromFloat(500), "🛒", "#22c55e", userID)

	seed := func(expenseRepo *fakeExpenseRepo) *entity.Expense {
		exp := entity.NewExpense("Supermarket run", decimal.NewFromFloat(89.90), "", budget.ID, userID)
		expenseRepo.expenses[exp.ID] = &entity.ExpenseWithBudget{Expense: exp, Budget: budget}
		return exp
	}

	t.Run("updates the expense", func(t *testing.T) {
		expenseRepo := newFakeExpenseRepo()
		budgetRepo := newFakeBudgetRepo()
		budgetRepo.budgets[budget.ID] = budget
		exp := seed(expenseRepo)
		uc := NewUpdateExpenseUseCase(expenseRepo, budgetRepo, &fakeCache{}, fixedNow)

		output, err := uc.Execute(context.Background(), UpdateExpenseInput{
			ExpenseID: exp.ID,
			UserID:    userID,
			Name:      "Market",
			Amount:    decimal.NewFromFloat(95),
			BudgetID:  budget.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Expense.Name != "Market" {
			t.Errorf("expected renamed expense, got %s", output.Expense.Expense.Name)
		}
		if expenseRepo.updated == nil {
			t.Error("expected the update to be persisted")
		}
	})

	t.Run("moves the expense to another budget", func(t *testing.T) {
		expenseRepo := newFakeExpenseRepo()
		budgetRepo := newFakeBudgetRepo()
		budgetRepo.budgets[budget.ID] = budget
		other := entity.NewBudget("Dining", decimal.NewFromFloat(300), "", "", userID)
		budgetRepo.budgets[other.ID] = other
		exp := seed(expenseRepo)
		uc := NewUpdateExpenseUseCase(expenseRepo, budgetRepo, &fakeCache{}, fixedNow)

		output, err := uc.Execute(context.Background(), UpdateExpenseInput{
			ExpenseID: exp.ID,
			UserID:    userID,
			Name:      "Supermarket run",
			Amount:    decimal.NewFromFloat(89.90),
			BudgetID:  other.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Expense.BudgetID != other.ID {
			t.Errorf("expected the expense moved to %s, got %s", other.ID, output.Expense.Expense.BudgetID)
		}
		if output.Expense.Budget.Name != "Dining" {
			t.Errorf("expected the new budget attached, got %s", output.Expense.Budget.Name)
		}
	})

	t.Run("unknown expense", func(t *testing.T) {
		budgetRepo := newFakeBudgetRepo()
		budgetRepo.budgets[budget.ID] = budget
		uc := NewUpdateExpenseUseCase(newFakeExpenseRepo(), budgetRepo, &fakeCache{}, fixedNow)

		_, err := uc.Execute(context.Background(), UpdateExpenseInput{
			ExpenseID: uuid.New(),
			UserID:    userID,
			Name:      "Ghost",
			Amount:    decimal.NewFromFloat(10),
			BudgetID:  budget.ID,
		})
		if code := expenseCode(t, err); code != domainerror.ErrCodeExpenseNotFound {
			t.Errorf("expected not found code, got %s", code)
		}
	})
}

func TestDeleteExpenseUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	budget := entity.NewBudget("Groceries", decimal.NewFromFloat(500), "", "", userID)

	t.Run("deletes the expense", func(t *testing.T) {
		expenseRepo := newFakeExpenseRepo()
		exp := entity.NewExpense("Supermarket run", decimal.NewFromFloat(89.90), "", budget.ID, userID)
		expenseRepo.expenses[exp.ID] = &entity.ExpenseWithBudget{Expense: exp, Budget: budget}
		cache := &fakeCache{}
		uc := NewDeleteExpenseUseCase(expenseRepo, cache, fixedNow)

		if err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: exp.ID, UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(expenseRepo.deleted) != 1 {
			t.Errorf("expected 1 deletion, got %d", len(expenseRepo.deleted))
		}
		if len(cache.deleted) == 0 {
			t.Error("expected user caches to be invalidated")
		}
	})

	t.Run("unknown expense", func(t *testing.T) {
		uc := NewDeleteExpenseUseCase(newFakeExpenseRepo(), &fakeCache{}, fixedNow)

		err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: uuid.New(), UserID: userID})
		if code := expenseCode(t, err); code != domainerror.ErrCodeExpenseNotFound {
			t.Errorf("expected not found code, got %s", code)
		}
	})

	t.Run("expense owned by another user is not found", func(t *testing.T) {
		expenseRepo := newFakeExpenseRepo()
		exp := entity.NewExpense("Foreign", decimal.NewFromFloat(10), "", budget.ID, uuid.New())
		expenseRepo.expenses[exp.ID] = &entity.ExpenseWithBudget{Expense: exp, Budget: budget}
		uc := NewDeleteExpenseUseCase(expenseRepo, &fakeCache{}, fixedNow)

		err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: exp.ID, UserID: userID})
		if code := expenseCode(t, err); code != domainerror.ErrCodeExpenseNotFound {
			t.Errorf("expected not found code, got %s", code)
		}
	})
}
