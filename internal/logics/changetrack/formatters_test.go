package changetrack_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ysphere-server/internal/logics/changetrack"
)

func TestBool(t *testing.T) {
	format := changetrack.Bool()

	assert.Equal(t, "是", format(true))
	assert.Equal(t, "否", format(false))
	assert.Nil(t, format(nil))

	t.Run("already formatted labels pass through", func(t *testing.T) {
		assert.Equal(t, "是", format("是"))
		assert.Equal(t, "否", format("否"))
	})

	t.Run("nil pointer is absent", func(t *testing.T) {
		var b *bool
		assert.Nil(t, format(b))
	})
}

func TestDate(t *testing.T) {
	format := changetrack.Date()

	t.Run("timestamps render as the calendar day in UTC+8", func(t *testing.T) {
		// UTC 晚上八點已是台灣隔天
		ts := time.Date(2024, 11, 30, 20, 0, 0, 0, time.UTC)
		assert.Equal(t, "2024-12-01", format(ts))
	})

	t.Run("pointer and zero handling", func(t *testing.T) {
		ts := time.Date(2024, 11, 29, 10, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))
		assert.Equal(t, "2024-11-29", format(&ts))

		var nilTime *time.Time
		assert.Nil(t, format(nilTime))
		assert.Nil(t, format(time.Time{}))
		assert.Nil(t, format(nil))
	})

	t.Run("already formatted dates pass through", func(t *testing.T) {
		assert.Equal(t, "2024-11-29", format("2024-11-29"))
	})

	t.Run("RFC3339 strings are converted", func(t *testing.T) {
		assert.Equal(t, "2024-12-01", format("2024-11-30T20:00:00Z"))
	})

	t.Run("unparseable input renders as absent", func(t *testing.T) {
		assert.Nil(t, format("not-a-date"))
		assert.Nil(t, format(""))
	})
}

func TestCoded(t *testing.T) {
	format := changetrack.Coded(map[int]string{1: "一般員工", 2: "管理員"})

	assert.Equal(t, "一般員工", format(1))
	assert.Equal(t, "管理員", format(2))
	assert.Nil(t, format(nil))

	t.Run("unknown codes render as 未知 instead of failing", func(t *testing.T) {
		assert.Equal(t, "未知", format(99))
	})

	t.Run("already resolved labels pass through", func(t *testing.T) {
		assert.Equal(t, "管理員", format("管理員"))
	})

	t.Run("numeric strings resolve like numbers", func(t *testing.T) {
		assert.Equal(t, "一般員工", format("1"))
	})
}

func TestMultiCoded(t *testing.T) {
	labels := map[int]string{0: "無", 1: "華語導遊", 2: "外語導遊", 3: "華語領隊"}
	format := changetrack.MultiCoded(labels, "無")

	t.Run("multiple codes join with 、", func(t *testing.T) {
		assert.Equal(t, "華語導遊、華語領隊", format([]int{1, 3}))
	})

	t.Run("empty and zero-code values render as the none sentinel", func(t *testing.T) {
		assert.Equal(t, "無", format([]int{}))
		assert.Equal(t, "無", format([]int{0}))
	})

	t.Run("a list containing the zero code collapses to the sentinel", func(t *testing.T) {
		assert.Equal(t, "無", format([]int{0, 2}))
	})

	t.Run("nil is absent, so a fresh entity records null→無", func(t *testing.T) {
		assert.Nil(t, format(nil))
	})

	t.Run("unknown codes render as 未知 within the list", func(t *testing.T) {
		assert.Equal(t, "華語導遊、未知", format([]int{1, 42}))
	})

	t.Run("already formatted strings pass through", func(t *testing.T) {
		assert.Equal(t, "華語導遊、外語導遊", format("華語導遊、外語導遊"))
	})
}
