package changetrack_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ysphere-server/internal/logics/changetrack"
)

type employee struct {
	Name      string
	Note      string
	Role      int
	BirthDate time.Time
	Active    bool
	Password  string
}

var roleLabels = map[int]string{
	1: "一般員工",
	2: "管理員",
}

func employeeSpec() []changetrack.Field[employee] {
	return []changetrack.Field[employee]{
		{Key: "name", Label: "姓名", Get: func(e *employee) any { return e.Name }},
		{Key: "note", Label: "備註", Get: func(e *employee) any { return e.Note }},
		{Key: "role", Label: "身分別", Get: func(e *employee) any { return e.Role }, Format: changetrack.Coded(roleLabels)},
		{Key: "birthDate", Label: "生日", Get: func(e *employee) any { return e.BirthDate }, Format: changetrack.Date()},
		{Key: "active", Label: "在職", Get: func(e *employee) any { return e.Active }, Format: changetrack.Bool()},
	}
}

func TestDiff(t *testing.T) {
	birth := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)

	t.Run("identical entities produce an empty change set", func(t *testing.T) {
		a := employee{Name: "王小明", Role: 1, BirthDate: birth, Active: true}
		b := a
		changes, err := changetrack.Diff(&a, &b, employeeSpec())
		require.NoError(t, err)
		assert.Empty(t, changes)
	})

	t.Run("create records every non-empty field from nil", func(t *testing.T) {
		e := employee{Name: "王小明", Role: 1, BirthDate: birth, Active: true}
		changes, err := changetrack.Diff(nil, &e, employeeSpec())
		require.NoError(t, err)

		assert.Equal(t, changetrack.Change{From: nil, To: "王小明"}, changes["姓名"])
		assert.Equal(t, changetrack.Change{From: nil, To: "一般員工"}, changes["身分別"])
		assert.Equal(t, changetrack.Change{From: nil, To: "1990-05-20"}, changes["生日"])
		assert.Equal(t, changetrack.Change{From: nil, To: "是"}, changes["在職"])
		// 備註兩邊都空，不該出現
		assert.NotContains(t, changes, "備註")
	})

	t.Run("delete records every non-empty field to nil", func(t *testing.T) {
		e := employee{Name: "王小明", Role: 2, BirthDate: birth, Active: false}
		changes, err := changetrack.Diff(&e, nil, employeeSpec())
		require.NoError(t, err)

		assert.Equal(t, changetrack.Change{From: "王小明", To: nil}, changes["姓名"])
		assert.Equal(t, changetrack.Change{From: "管理員", To: nil}, changes["身分別"])
		assert.Equal(t, changetrack.Change{From: "否", To: nil}, changes["在職"])
	})

	t.Run("empty string and absent value are the same thing", func(t *testing.T) {
		a := employee{Name: "王小明", Role: 1, Active: true}
		b := a
		b.Note = ""
		changes, err := changetrack.Diff(&a, &b, employeeSpec())
		require.NoError(t, err)
		assert.NotContains(t, changes, "備註")
	})

	t.Run("same calendar day in different representations is not a change", func(t *testing.T) {
		a := employee{Name: "王小明", BirthDate: time.Date(1990, 5, 20, 1, 0, 0, 0, time.FixedZone("UTC+8", 8*3600))}
		b := employee{Name: "王小明", BirthDate: time.Date(1990, 5, 19, 18, 30, 0, 0, time.UTC)}
		changes, err := changetrack.Diff(&a, &b, employeeSpec())
		require.NoError(t, err)
		assert.NotContains(t, changes, "生日")
	})

	t.Run("only the changed field is recorded", func(t *testing.T) {
		a := employee{Name: "王小明", Role: 1, BirthDate: birth, Active: true}
		b := a
		b.Role = 2
		changes, err := changetrack.Diff(&a, &b, employeeSpec())
		require.NoError(t, err)

		require.Len(t, changes, 1)
		assert.Equal(t, changetrack.Change{From: "一般員工", To: "管理員"}, changes["身分別"])
	})
}

func TestDiffCredentialFields(t *testing.T) {
	specWithPassword := append(employeeSpec(), changetrack.Field[employee]{
		Key: "password", Label: "密碼", Get: func(e *employee) any { return e.Password },
	})
	a := employee{Name: "王小明", Password: "old"}
	b := employee{Name: "王小明", Password: "new"}

	t.Run("credential fields are silently dropped", func(t *testing.T) {
		changes, err := changetrack.Diff(&a, &b, specWithPassword)
		require.NoError(t, err)
		assert.NotContains(t, changes, "密碼")
	})

	t.Run("strict mode rejects the spec instead", func(t *testing.T) {
		changetrack.Strict = true
		defer func() { changetrack.Strict = false }()

		_, err := changetrack.Diff(&a, &b, specWithPassword)
		assert.Error(t, err)
	})
}

func TestDiffScalarEquivalence(t *testing.T) {
	// 舊資料的數值欄位可能以字串存放，字串化後相等就不算變更
	spec := []changetrack.Field[map[string]any]{
		{Key: "printNumber", Label: "列印編號", Get: func(m *map[string]any) any { return (*m)["printNumber"] }},
	}
	a := map[string]any{"printNumber": 27}
	b := map[string]any{"printNumber": "27"}

	changes, err := changetrack.Diff(&a, &b, spec)
	require.NoError(t, err)
	assert.Empty(t, changes)
}
