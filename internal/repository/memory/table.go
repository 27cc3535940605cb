package memory

import (
	"fmt"
	"sort"

	"noteboard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type row[T any] struct {
	seq uint64
	val T
}

// table keeps rows in insertion order, which stands in for created_at order.
type table[T any] struct {
	rows map[uuid.UUID]row[T]
	next uint64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]row[T])}
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	r, ok := t.rows[id]
	return r.val, ok
}

func (t *table[T]) put(id uuid.UUID, val T) {
	if r, ok := t.rows[id]; ok {
		t.rows[id] = row[T]{seq: r.seq, val: val}
		return
	}
	t.next++
	t.rows[id] = row[T]{seq: t.next, val: val}
}

func (t *table[T]) del(id uuid.UUID) {
	delete(t.rows, id)
}

func (t *table[T]) list() []T {
	rows := make([]row[T], 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.val
	}
	return out
}

// matcher reports whether v satisfies a filtering specification. handled is
// false when the specification is not a filter the matcher knows.
type matcher[T any] func(v T, spec specification.Specification) (ok bool, handled bool)

// selectWhere evaluates specifications the way the SQL repositories do:
// filters are ANDed, then ordering and pagination are applied.
func selectWhere[T any](all []T, specs []specification.Specification, match matcher[T]) ([]T, error) {
	out := make([]T, 0, len(all))
	var (
		desc bool
		page *specification.Pagination
	)

	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OrderBy:
			if s.Field != "created_at" {
				return nil, fmt.Errorf("memory: unsupported order field %q", s.Field)
			}
			desc = s.Desc
		case specification.Pagination:
			p := s
			page = &p
		}
	}

next:
	for _, v := range all {
		for _, spec := range specs {
			switch spec.(type) {
			case specification.OrderBy, specification.Pagination:
				continue
			}
			ok, handled := match(v, spec)
			if !handled {
				return nil, fmt.Errorf("memory: unsupported specification %T", spec)
			}
			if !ok {
				continue next
			}
		}
		out = append(out, v)
	}

	if desc {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	if page != nil {
		if page.Offset >= len(out) {
			return out[:0], nil
		}
		out = out[page.Offset:]
		if page.Limit > 0 && page.Limit < len(out) {
			out = out[:page.Limit]
		}
	}
	return out, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
