package pipeline

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Match filters source rows. Where is a SQL condition with ? placeholders.
type Match struct {
	Where string
	Args  []interface{}
}

// Eq matches rows whose column equals value.
func Eq(column string, value interface{}) Match {
	return Match{Where: column + " = ?", Args: []interface{}{value}}
}

func (Match) Phase() Phase { return PhaseMatch }

func (m Match) compile(q *query) error {
	if strings.TrimSpace(m.Where) == "" {
		return errors.Wrap(ErrInvalidStage, "match: empty condition")
	}
	q.where = append(q.where, fragment{sql: "(" + m.Where + ")", args: m.Args})
	return nil
}

type JoinMode int

const (
	// Many registers the lookup for Size and Contains; nothing is joined.
	Many JoinMode = iota
	// One left-joins at most one related row.
	One
	// Unwind inner-joins related rows, dropping source rows without a match.
	Unwind
)

// Lookup relates rows of another table: From.ForeignField = LocalField.
// Where and Args filter the related rows. Fields limits the columns a One or
// Unwind lookup exposes to First.
type Lookup struct {
	From         string
	As           string
	LocalField   string
	ForeignField string
	Fields       []string
	Where        string
	Args         []interface{}
	Mode         JoinMode
}

func (Lookup) Phase() Phase { return PhaseLookup }

func (l Lookup) compile(q *query) error {
	if l.From == "" || l.As == "" || l.LocalField == "" || l.ForeignField == "" {
		return errors.Wrapf(ErrInvalidStage, "lookup %q: from, as, local and foreign field are required", l.As)
	}
	if _, dup := q.lookups[l.As]; dup || l.As == q.from {
		return errors.Wrapf(ErrInvalidStage, "lookup %q: alias already in use", l.As)
	}
	q.lookups[l.As] = l
	if l.Mode == Many {
		return nil
	}

	kind := "LEFT JOIN"
	if l.Mode == Unwind {
		kind = "INNER JOIN"
	}
	q.joins = append(q.joins, fragment{
		sql: fmt.Sprintf("%s (%s) AS %s ON %s.%s = %s",
			kind, l.subquery(), l.As, l.As, l.ForeignField, q.qualify(l.LocalField)),
		args: l.Args,
	})
	return nil
}

func (l Lookup) subquery() string {
	cols := "*"
	if len(l.Fields) > 0 {
		fields := l.Fields
		if !contains(fields, l.ForeignField) {
			fields = append(append([]string(nil), fields...), l.ForeignField)
		}
		cols = strings.Join(fields, ", ")
	}
	sql := "SELECT " + cols + " FROM " + l.From
	if l.Where != "" {
		sql += " WHERE " + l.Where
	}
	return sql
}

// correlated renders a subquery over the related rows of the current source
// row.
func (l Lookup) correlated(q *query, expr, extra string) string {
	sql := fmt.Sprintf("SELECT %s FROM %s AS %s WHERE %s.%s = %s",
		expr, l.From, l.As, l.As, l.ForeignField, q.qualify(l.LocalField))
	if l.Where != "" {
		sql += " AND (" + l.Where + ")"
	}
	if extra != "" {
		sql += " AND " + extra
	}
	return sql
}

func manyLookup(q *query, name, stage string) (Lookup, error) {
	l, err := q.lookup(name)
	if err != nil {
		return l, errors.WithMessage(err, stage)
	}
	if l.Mode != Many {
		return l, errors.Wrapf(ErrInvalidStage, "%s: lookup %q is joined, not many", stage, name)
	}
	return l, nil
}

// Size derives the number of related rows of a Many lookup.
type Size struct {
	Lookup string
	As     string
}

func (Size) Phase() Phase { return PhaseDerive }

func (s Size) compile(q *query) error {
	l, err := manyLookup(q, s.Lookup, "size")
	if err != nil {
		return err
	}
	if s.As == "" {
		return errors.Wrap(ErrInvalidStage, "size: output name is required")
	}
	q.derived = append(q.derived, fragment{
		sql:  fmt.Sprintf("(%s) AS %s", l.correlated(q, "COUNT(*)", ""), s.As),
		args: l.Args,
	})
	return nil
}

// Contains derives whether any related row of a Many lookup has Field equal
// to Value. A nil Value (an anonymous viewer) always yields false.
type Contains struct {
	Lookup string
	Field  string
	Value  interface{}
	As     string
}

func (Contains) Phase() Phase { return PhaseDerive }

func (c Contains) compile(q *query) error {
	l, err := manyLookup(q, c.Lookup, "contains")
	if err != nil {
		return err
	}
	if c.Field == "" || c.As == "" {
		return errors.Wrap(ErrInvalidStage, "contains: field and output name are required")
	}
	if c.Value == nil {
		q.derived = append(q.derived, fragment{sql: "FALSE AS " + c.As})
		return nil
	}
	args := append(append([]interface{}(nil), l.Args...), c.Value)
	q.derived = append(q.derived, fragment{
		sql:  fmt.Sprintf("EXISTS (%s) AS %s", l.correlated(q, "1", l.As+"."+c.Field+" = ?"), c.As),
		args: args,
	})
	return nil
}

// First exposes the fields of a One or Unwind lookup as columns named
// <as>__<field>.
type First struct {
	Lookup string
}

func (First) Phase() Phase { return PhaseDerive }

func (f First) compile(q *query) error {
	l, err := q.lookup(f.Lookup)
	if err != nil {
		return errors.WithMessage(err, "first")
	}
	if l.Mode == Many {
		return errors.Wrapf(ErrInvalidStage, "first: lookup %q is not joined", f.Lookup)
	}
	if len(l.Fields) == 0 {
		return errors.Wrapf(ErrInvalidStage, "first: lookup %q declares no fields", f.Lookup)
	}
	for _, field := range l.Fields {
		q.firsts = append(q.firsts, fmt.Sprintf("%s.%s AS %s__%s", l.As, field, l.As, field))
	}
	return nil
}

// Sort orders by a column or derived name. Columns are used verbatim.
type Sort struct {
	Column string
	Desc   bool
}

func (Sort) Phase() Phase { return PhaseSort }

func (s Sort) compile(q *query) error {
	if s.Column == "" {
		return errors.Wrap(ErrInvalidStage, "sort: column is required")
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	q.orders = append(q.orders, s.Column+" "+dir)
	return nil
}

type Page struct {
	Skip  int
	Limit int
}

func (Page) Phase() Phase { return PhasePage }

func (p Page) compile(q *query) error {
	if p.Limit < 1 || p.Skip < 0 {
		return errors.Wrapf(ErrInvalidStage, "page: skip %d limit %d", p.Skip, p.Limit)
	}
	page := p
	q.page = &page
	return nil
}

// Project limits the source columns returned. Without it every source column
// is selected. Derived values are always returned.
type Project struct {
	Fields []string
}

func (Project) Phase() Phase { return PhaseProject }

func (p Project) compile(q *query) error {
	if len(p.Fields) == 0 {
		return errors.Wrap(ErrInvalidStage, "project: no fields")
	}
	q.fields = append(q.fields, p.Fields...)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
