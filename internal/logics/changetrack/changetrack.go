// Package changetrack computes the field-by-field change sets that get written
// to the audit log. Every mutating controller used to derive this by hand; the
// entity services now declare a field spec (label + formatter per tracked
// field) and let Diff do the comparison.
package changetrack

import (
	"fmt"
	"reflect"
)

// Change holds the display values of one tracked field before and after a
// mutation. From 為 nil 代表新增，To 為 nil 代表刪除。
type Change struct {
	From any `bson:"from" json:"from"`
	To   any `bson:"to" json:"to"`
}

// Changes maps the human-readable field label to the recorded change. Audit
// log viewers depend on this staying a flat label-keyed map.
type Changes map[string]Change

// Formatter converts a raw field value into its display value. Formatters must
// be idempotent: feeding an already-formatted value back in returns it
// unchanged.
type Formatter func(raw any) any

// Field declares one tracked field of an entity type T: a typed accessor, a
// display label and an optional formatter. Reference fields (company,
// department) are resolved to display names by the caller before diffing and
// are therefore not declared here.
type Field[T any] struct {
	Key    string
	Label  string
	Get    func(*T) any
	Format Formatter
}

// Strict makes Diff fail when a field spec includes a credential field.
// Enabled in debug builds; production silently drops the offending field.
var Strict bool

// 登入憑證相關欄位永遠不進異動紀錄
var secretKeys = map[string]struct{}{
	"password":             {},
	"tokens":               {},
	"resetPasswordToken":   {},
	"resetPasswordExpires": {},
}

// Diff compares original (nil on create) against updated (nil on delete) and
// returns the formatted changes for every field of the spec whose display
// values differ. Fields where both sides are empty are omitted, so an empty
// result means the mutation is not worth an audit entry.
func Diff[T any](original, updated *T, spec []Field[T]) (Changes, error) {
	changes := Changes{}
	for _, f := range spec {
		if _, secret := secretKeys[f.Key]; secret {
			if Strict {
				return nil, fmt.Errorf("changetrack: credential field %q in field spec", f.Key)
			}
			continue
		}

		var rawFrom, rawTo any
		if original != nil {
			rawFrom = f.Get(original)
		}
		if updated != nil {
			rawTo = f.Get(updated)
		}

		from := applyFormat(f.Format, rawFrom)
		to := applyFormat(f.Format, rawTo)

		if isEmpty(from) && isEmpty(to) {
			continue
		}
		if equalFormatted(from, to) {
			continue
		}
		changes[f.Label] = Change{From: from, To: to}
	}
	return changes, nil
}

func applyFormat(f Formatter, raw any) any {
	if f == nil {
		return normalize(raw)
	}
	return f(raw)
}

// normalize 把空字串與 nil 統一成 nil，其餘原樣保留
func normalize(raw any) any {
	if raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil
		}
		return v
	case *string:
		if v == nil || *v == "" {
			return nil
		}
		return *v
	}
	return raw
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr:
		return rv.IsNil()
	}
	return false
}

// equalFormatted compares two already-formatted values. Scalars compare by
// string equivalence (1 and "1" are the same change-set value); structured
// values compare structurally.
func equalFormatted(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.DeepEqual(a, b) {
		return true
	}
	ka := reflect.ValueOf(a).Kind()
	kb := reflect.ValueOf(b).Kind()
	if isScalarKind(ka) && isScalarKind(kb) {
		return fmt.Sprint(a) == fmt.Sprint(b)
	}
	return false
}

func isScalarKind(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
