package history

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Add and list newest first", func(t *testing.T) {
		store := NewMemoryStore()

		first := NewAcquisitionTax(AcquisitionTaxSnapshot{PropertyPrice: 500_000_000, TotalTax: 5_500_000})
		second := NewBrokerageFee(BrokerageFeeSnapshot{TransactionPrice: 500_000_000, Fee: 2_200_000, Rate: 0.004})

		require.NoError(t, store.Add(ctx, first))
		require.NoError(t, store.Add(ctx, second))

		entries, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, second.ID, entries[0].ID)
		assert.Equal(t, first.ID, entries[1].ID)
	})

	t.Run("List by kind", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Add(ctx, NewLoan(LoanSnapshot{PropertyPrice: 500_000_000})))
		require.NoError(t, store.Add(ctx, NewTradeUp(TradeUpSnapshot{NewPropertyPrice: 1_000_000_000})))
		require.NoError(t, store.Add(ctx, NewLoan(LoanSnapshot{PropertyPrice: 700_000_000})))

		loans, err := store.ListByKind(ctx, KindLoan)
		require.NoError(t, err)
		require.Len(t, loans, 2)
		assert.Equal(t, int64(700_000_000), loans[0].Loan.PropertyPrice)
		assert.Equal(t, int64(500_000_000), loans[1].Loan.PropertyPrice)

		tradeUps, err := store.ListByKind(ctx, KindTradeUp)
		require.NoError(t, err)
		assert.Len(t, tradeUps, 1)
	})

	t.Run("Capacity evicts the oldest entries", func(t *testing.T) {
		store := NewMemoryStore()

		for i := 0; i < 55; i++ {
			entry := NewBrokerageFee(BrokerageFeeSnapshot{TransactionPrice: int64(i)})
			require.NoError(t, store.Add(ctx, entry))
		}

		entries, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 50)
		// The newest survives, the first five inserts are gone.
		assert.Equal(t, int64(54), entries[0].BrokerageFee.TransactionPrice)
		assert.Equal(t, int64(5), entries[49].BrokerageFee.TransactionPrice)
	})

	t.Run("Remove", func(t *testing.T) {
		store := NewMemoryStore()

		entry := NewFirstBuy(FirstBuySnapshot{PropertyPrice: 500_000_000})
		require.NoError(t, store.Add(ctx, entry))
		require.NoError(t, store.Add(ctx, NewFirstBuy(FirstBuySnapshot{PropertyPrice: 600_000_000})))

		require.NoError(t, store.Remove(ctx, entry.ID))

		entries, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.NotEqual(t, entry.ID, entries[0].ID)

		assert.ErrorIs(t, store.Remove(ctx, "no-such-id"), ErrNotFound)
	})

	t.Run("Clear", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Add(ctx, NewLoan(LoanSnapshot{})))
		require.NoError(t, store.Clear(ctx))

		entries, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestMemoryStoreConcurrentAdds(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				_ = store.Add(ctx, NewBrokerageFee(BrokerageFeeSnapshot{TransactionPrice: int64(n*100 + j)}))
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}

func TestEntryConstructors(t *testing.T) {
	entry := NewCapitalGainsTax(CapitalGainsTaxSnapshot{SalePrice: 900_000_000, Tax: 7_464_000})

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Equal(t, KindCapitalGainsTax, entry.Kind)
	require.NotNil(t, entry.CapitalGainsTax)
	assert.Nil(t, entry.FirstBuy)
	assert.Nil(t, entry.Loan)
}

func TestKind(t *testing.T) {
	kinds := []Kind{KindFirstBuy, KindTradeUp, KindAcquisitionTax, KindCapitalGainsTax, KindBrokerageFee, KindLoan}
	for _, kind := range kinds {
		assert.True(t, kind.Valid(), "kind %s", kind)
		assert.NotEmpty(t, kind.Label(), "kind %s", kind)
	}
	assert.False(t, Kind("unknown").Valid())
}

func TestEntrySummary(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		contains []string
	}{
		{
			name: "First buy",
			entry: NewFirstBuy(FirstBuySnapshot{
				PropertyPrice: 500_000_000, Region: "서울특별시", District: "마포구",
				TotalCost: 510_425_000, LoanAmount: 310_425_000,
			}),
			contains: []string{"5억원", "서울특별시 마포구", "총 비용"},
		},
		{
			name: "Trade up",
			entry: NewTradeUp(TradeUpSnapshot{
				CurrentPropertyValue: 600_000_000, NewPropertyPrice: 1_000_000_000,
				NetProceeds: 597_360_000, AdditionalFundsNeeded: 449_390_000,
			}),
			contains: []string{"매도 6억원", "매수 10억원", "추가 필요 자금"},
		},
		{
			name: "Exempt capital gains",
			entry: NewCapitalGainsTax(CapitalGainsTaxSnapshot{
				SalePrice: 700_000_000, PurchasePrice: 400_000_000,
				CapitalGain: 300_000_000, TaxExempt: true,
			}),
			contains: []string{"비과세"},
		},
		{
			name: "Loan without eligible products",
			entry: NewLoan(LoanSnapshot{
				PropertyPrice: 2_000_000_000, EligibleLoans: nil,
			}),
			contains: []string{"없음"},
		},
		{
			name: "Brokerage fee",
			entry: NewBrokerageFee(BrokerageFeeSnapshot{
				TransactionPrice: 500_000_000, Fee: 2_200_000, Rate: 0.004,
			}),
			contains: []string{"0.40%", "수수료"},
		},
		{
			name: "Acquisition tax",
			entry: NewAcquisitionTax(AcquisitionTaxSnapshot{
				PropertyPrice: 500_000_000, HouseCount: 1, TotalTax: 5_500_000, EffectiveRate: 0.011,
			}),
			contains: []string{"1주택", "취득세"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := tt.entry.Summary()
			for _, want := range tt.contains {
				if !strings.Contains(summary, want) {
					t.Errorf("Summary() = %q, expected it to contain %q", summary, want)
				}
			}
		})
	}
}

func TestEntrySummaryWithoutSnapshotFallsBack(t *testing.T) {
	entry := Entry{ID: "x", Kind: KindFirstBuy}
	assert.Equal(t, "처음 집 사기", entry.Summary())
}
