// Package dashboard contains aggregate analytics use cases.
package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pennyflow/backend/internal/application/adapter"
	"github.com/pennyflow/backend/internal/domain/entity"
)

// totalsRepo serves canned aggregation rows and records how often it was hit.
type totalsRepo struct {
	totals []*adapter.CategoryTotal
	calls  int
	err    error
}

func (r *totalsRepo) Create(context.Context, *entity.Transaction) error {
	return errors.New("not implemented")
}

func (r *totalsRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (r *totalsRepo) FindByFilter(context.Context, adapter.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, errors.New("not implemented")
}

func (r *totalsRepo) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

func (r *totalsRepo) DeleteByUser(context.Context, uuid.UUID) (int64, error) {
	return 0, errors.New("not implemented")
}

func (r *totalsRepo) TotalsByCategory(context.Context, uuid.UUID, time.Time, time.Time) ([]*adapter.CategoryTotal, error) {
	r.calls++
	return r.totals, r.err
}

// fakeCache is an in-memory adapter.SummaryCache.
type fakeCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = payload
	c.sets++
	return nil
}

func sampleTotals() []*adapter.CategoryTotal {
	return []*adapter.CategoryTotal{
		{Category: "Salary", Type: entity.TransactionTypeIncome, Total: decimal.NewFromInt(3000), Count: 1},
		{Category: "Rent", Type: entity.TransactionTypeExpense, Total: decimal.NewFromInt(1200), Count: 1},
		{Category: "Food", Type: entity.TransactionTypeExpense, Total: decimal.NewFromFloat(350.75), Count: 14},
	}
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	input := GetSummaryInput{
		UserID:    uuid.New(),
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	t.Run("computes income, expense and net totals", func(t *testing.T) {
		repo := &totalsRepo{totals: sampleTotals()}
		uc := NewGetSummaryUseCase(repo, nil, time.Minute)

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.IncomeTotal.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected income 3000, got %s", output.IncomeTotal)
		}
		if !output.ExpenseTotal.Equal(decimal.NewFromFloat(1550.75)) {
			t.Errorf("expected expenses 1550.75, got %s", output.ExpenseTotal)
		}
		if !output.NetTotal.Equal(decimal.NewFromFloat(1449.25)) {
			t.Errorf("expected net 1449.25, got %s", output.NetTotal)
		}
		if len(output.ByCategory) != 3 {
			t.Errorf("expected 3 category rows, got %d", len(output.ByCategory))
		}
	})

	t.Run("empty period yields zero totals", func(t *testing.T) {
		repo := &totalsRepo{}
		uc := NewGetSummaryUseCase(repo, nil, time.Minute)

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.NetTotal.IsZero() {
			t.Errorf("expected zero net, got %s", output.NetTotal)
		}
		if len(output.ByCategory) != 0 {
			t.Errorf("expected no category rows, got %d", len(output.ByCategory))
		}
	})

	t.Run("second call for the same period is served from cache", func(t *testing.T) {
		repo := &totalsRepo{totals: sampleTotals()}
		cache := newFakeCache()
		uc := NewGetSummaryUseCase(repo, cache, time.Minute)

		first, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 1 {
			t.Fatalf("expected 1 cache write, got %d", cache.sets)
		}

		second, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.calls != 1 {
			t.Errorf("expected 1 storage hit, got %d", repo.calls)
		}
		if !first.NetTotal.Equal(second.NetTotal) {
			t.Errorf("expected identical totals, got %s and %s", first.NetTotal, second.NetTotal)
		}
	})

	t.Run("different periods use different cache keys", func(t *testing.T) {
		repo := &totalsRepo{totals: sampleTotals()}
		cache := newFakeCache()
		uc := NewGetSummaryUseCase(repo, cache, time.Minute)

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		shifted := input
		shifted.StartDate = shifted.StartDate.AddDate(0, 1, 0)
		shifted.EndDate = shifted.EndDate.AddDate(0, 1, 0)
		if _, err := uc.Execute(ctx, shifted); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.calls != 2 {
			t.Errorf("expected 2 storage hits for distinct periods, got %d", repo.calls)
		}
	})

	t.Run("cache read failure falls through to storage", func(t *testing.T) {
		repo := &totalsRepo{totals: sampleTotals()}
		cache := newFakeCache()
		cache.getErr = errors.New("connection refused")
		uc := NewGetSummaryUseCase(repo, cache, time.Minute)

		output, err := uc.Execute(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.calls != 1 {
			t.Errorf("expected a storage hit, got %d", repo.calls)
		}
		if !output.IncomeTotal.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected income 3000, got %s", output.IncomeTotal)
		}
	})

	t.Run("cache write failure does not fail the summary", func(t *testing.T) {
		repo := &totalsRepo{totals: sampleTotals()}
		cache := newFakeCache()
		cache.setErr = errors.New("connection refused")
		uc := NewGetSummaryUseCase(repo, cache, time.Minute)

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		repo := &totalsRepo{err: errors.New("disk full")}
		uc := NewGetSummaryUseCase(repo, nil, time.Minute)

		if _, err := uc.Execute(ctx, input); err == nil {
			t.Fatal("expected the storage error to surface")
		}
	})
}
