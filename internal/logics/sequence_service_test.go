package logics_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ysphere-server/internal/logics"
)

// memCounterStore 單機版的原子計數器，行為等同 counters 集合的 findAndModify。
type memCounterStore struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func newMemCounterStore() *memCounterStore {
	return &memCounterStore{seqs: map[string]int64{}}
}

func (s *memCounterStore) Next(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[name]++
	return s.seqs[name], nil
}

func TestNextUserNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("numbers carry the department code and pad to three digits", func(t *testing.T) {
		svc := logics.NewSequenceServiceWithStore(newMemCounterStore())

		first, err := svc.NextUserNumber(ctx, "A1IT")
		require.NoError(t, err)
		second, err := svc.NextUserNumber(ctx, "A1IT")
		require.NoError(t, err)

		assert.Equal(t, "A1IT001", first)
		assert.Equal(t, "A1IT002", second)
	})

	t.Run("departments count independently", func(t *testing.T) {
		svc := logics.NewSequenceServiceWithStore(newMemCounterStore())

		_, err := svc.NextUserNumber(ctx, "A1IT")
		require.NoError(t, err)
		other, err := svc.NextUserNumber(ctx, "A1HR")
		require.NoError(t, err)

		assert.Equal(t, "A1HR001", other)
	})

	t.Run("concurrent callers never share a number", func(t *testing.T) {
		svc := logics.NewSequenceServiceWithStore(newMemCounterStore())

		const workers = 50
		results := make(chan string, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id, err := svc.NextUserNumber(ctx, "A1")
				assert.NoError(t, err)
				results <- id
			}()
		}
		wg.Wait()
		close(results)

		seen := map[string]bool{}
		for id := range results {
			assert.False(t, seen[id], "duplicate employee number %s", id)
			seen[id] = true
		}
		assert.Len(t, seen, workers)
		// 不跳號：1 到 50 都該出現
		assert.True(t, seen["A1001"])
		assert.True(t, seen["A1050"])
	})
}

func TestNextDepartmentCode(t *testing.T) {
	ctx := context.Background()

	t.Run("two digit suffix under the company code", func(t *testing.T) {
		svc := logics.NewSequenceServiceWithStore(newMemCounterStore())
		code, err := svc.NextDepartmentCode(ctx, "A1")
		require.NoError(t, err)
		assert.Equal(t, "A101", code)
	})

	t.Run("the hundredth department is an error, not a wraparound", func(t *testing.T) {
		store := newMemCounterStore()
		store.seqs["department:A1"] = 99
		svc := logics.NewSequenceServiceWithStore(store)

		_, err := svc.NextDepartmentCode(ctx, "A1")
		assert.ErrorIs(t, err, logics.ErrSequenceExhausted)
	})
}

func TestNextTicketNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("prefix carries the two-digit year and month", func(t *testing.T) {
		svc := logics.NewSequenceServiceWithStore(newMemCounterStore())
		now := time.Date(2024, 11, 15, 12, 0, 0, 0, time.UTC)

		first, err := svc.NextTicketNumber(ctx, now)
		require.NoError(t, err)
		second, err := svc.NextTicketNumber(ctx, now)
		require.NoError(t, err)

		assert.Equal(t, "IT24110001", first)
		assert.Equal(t, "IT24110002", second)
	})

	t.Run("a new month restarts from one", func(t *testing.T) {
		svc := logics.NewSequenceServiceWithStore(newMemCounterStore())
		november := time.Date(2024, 11, 30, 12, 0, 0, 0, time.UTC)
		december := time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)

		_, err := svc.NextTicketNumber(ctx, november)
		require.NoError(t, err)
		next, err := svc.NextTicketNumber(ctx, december)
		require.NoError(t, err)

		assert.Equal(t, "IT24120001", next)
	})

	t.Run("month boundary follows UTC+8, not UTC", func(t *testing.T) {
		svc := logics.NewSequenceServiceWithStore(newMemCounterStore())
		// UTC 11/30 晚上十點在台灣已是 12/1
		lateNight := time.Date(2024, 11, 30, 22, 0, 0, 0, time.UTC)

		id, err := svc.NextTicketNumber(ctx, lateNight)
		require.NoError(t, err)
		assert.Equal(t, "IT24120001", id)
	})
}

func TestNextCompanyCode(t *testing.T) {
	ctx := context.Background()

	t.Run("codes run A1 through A9 then roll the letter", func(t *testing.T) {
		svc := logics.NewSequenceServiceWithStore(newMemCounterStore())

		first, err := svc.NextCompanyCode(ctx)
		require.NoError(t, err)
		assert.Equal(t, "A1", first)

		var last string
		for i := 0; i < 9; i++ {
			last, err = svc.NextCompanyCode(ctx)
			require.NoError(t, err)
		}
		// 第十個是 B1
		assert.Equal(t, "B1", last)
	})

	t.Run("Z9 is the end of the namespace", func(t *testing.T) {
		store := newMemCounterStore()
		store.seqs["company"] = 26 * 9
		svc := logics.NewSequenceServiceWithStore(store)

		_, err := svc.NextCompanyCode(ctx)
		assert.ErrorIs(t, err, logics.ErrSequenceExhausted)
	})
}

func TestNextFormNumber(t *testing.T) {
	ctx := context.Background()
	svc := logics.NewSequenceServiceWithStore(newMemCounterStore())
	now := time.Date(2024, 11, 29, 10, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))

	first, err := svc.NextFormNumber(ctx, "quotation", now)
	require.NoError(t, err)
	assert.Equal(t, "202411290001", first)

	// 同月不同類型各自計數
	other, err := svc.NextFormNumber(ctx, "purchase", now)
	require.NoError(t, err)
	assert.Equal(t, "202411290001", other)
}
