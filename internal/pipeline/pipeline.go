// Package pipeline composes read queries as an ordered list of stages
// (match, lookup, derive, sort, page, project) and compiles them to a single
// gorm statement. Derived values such as like counts are computed by the
// database in the same statement that reads the rows.
package pipeline

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrStageOrder   = errors.New("pipeline: stage out of order")
	ErrInvalidStage = errors.New("pipeline: invalid stage")
)

// Phase orders stages. A pipeline's stages must be in non-decreasing phase
// order; Page and Project may appear at most once.
type Phase int

const (
	PhaseMatch Phase = iota + 1
	PhaseLookup
	PhaseDerive
	PhaseSort
	PhasePage
	PhaseProject
)

var phaseNames = map[Phase]string{
	PhaseMatch:   "match",
	PhaseLookup:  "lookup",
	PhaseDerive:  "derive",
	PhaseSort:    "sort",
	PhasePage:    "page",
	PhaseProject: "project",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Stage is one step of a pipeline.
type Stage interface {
	Phase() Phase
	compile(q *query) error
}

type Pipeline struct {
	from   string
	stages []Stage
}

// From starts a pipeline reading rows of table.
func From(table string, stages ...Stage) *Pipeline {
	return &Pipeline{from: table, stages: stages}
}

// Then returns a new pipeline with stages appended; p is left unchanged.
func (p *Pipeline) Then(stages ...Stage) *Pipeline {
	next := make([]Stage, 0, len(p.stages)+len(stages))
	next = append(next, p.stages...)
	next = append(next, stages...)
	return &Pipeline{from: p.from, stages: next}
}

func (p *Pipeline) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}

// Validate checks stage ordering without compiling.
func (p *Pipeline) Validate() error {
	if p.from == "" {
		return errors.Wrap(ErrInvalidStage, "no source table")
	}
	var last Phase
	once := map[Phase]bool{}
	for i, s := range p.stages {
		if s == nil {
			return errors.Wrapf(ErrInvalidStage, "stage %d is nil", i)
		}
		ph := s.Phase()
		if ph < last {
			return errors.Wrapf(ErrStageOrder, "stage %d (%s) follows %s", i, ph, last)
		}
		if ph == PhasePage || ph == PhaseProject {
			if once[ph] {
				return errors.Wrapf(ErrStageOrder, "more than one %s stage", ph)
			}
			once[ph] = true
		}
		last = ph
	}
	return nil
}

// Build compiles the pipeline onto db. The caller finishes the statement
// with Find or Scan.
func (p *Pipeline) Build(db *gorm.DB) (*gorm.DB, error) {
	q, err := p.compile()
	if err != nil {
		return nil, err
	}
	return q.apply(db), nil
}

func (p *Pipeline) compile() (*query, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	q := &query{from: p.from, lookups: map[string]Lookup{}}
	for _, s := range p.stages {
		if err := s.compile(q); err != nil {
			return nil, err
		}
	}
	return q, nil
}

type fragment struct {
	sql  string
	args []interface{}
}

// query accumulates compiled stages.
type query struct {
	from    string
	where   []fragment
	joins   []fragment
	lookups map[string]Lookup
	firsts  []string
	derived []fragment
	orders  []string
	page    *Page
	fields  []string
}

func (q *query) qualify(column string) string {
	if strings.Contains(column, ".") {
		return column
	}
	return q.from + "." + column
}

func (q *query) lookup(name string) (Lookup, error) {
	l, ok := q.lookups[name]
	if !ok {
		return Lookup{}, errors.Wrapf(ErrInvalidStage, "unknown lookup %q", name)
	}
	return l, nil
}

func (q *query) selection() (string, []interface{}) {
	cols := make([]string, 0, len(q.fields)+len(q.firsts)+len(q.derived)+1)
	if len(q.fields) == 0 {
		cols = append(cols, q.from+".*")
	}
	for _, f := range q.fields {
		cols = append(cols, q.qualify(f))
	}
	cols = append(cols, q.firsts...)

	var args []interface{}
	for _, d := range q.derived {
		cols = append(cols, d.sql)
		args = append(args, d.args...)
	}
	return strings.Join(cols, ", "), args
}

func (q *query) apply(db *gorm.DB) *gorm.DB {
	sel, args := q.selection()
	tx := db.Table(q.from).Clauses(clause.Select{Expression: clause.Expr{SQL: sel, Vars: args}})
	for _, j := range q.joins {
		tx = tx.Joins(j.sql, j.args...)
	}
	for _, w := range q.where {
		tx = tx.Where(w.sql, w.args...)
	}
	for _, o := range q.orders {
		tx = tx.Order(o)
	}
	if q.page != nil {
		// stable pages need a total order
		tx = tx.Order(q.from + ".id").Offset(q.page.Skip).Limit(q.page.Limit)
	}
	return tx
}
