// Package table loads a named set of float columns from YAML and runs aligned
// computations over them.
package table

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"soa/aligned"
	"soa/columns"
	"soa/seqs"
	"soa/tuple"
)

var (
	ErrNoColumns       = errors.New("table has no columns")
	ErrDuplicateColumn = errors.New("duplicate column")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrUnknownOp       = errors.New("unknown operation")
)

// Row tags the columns of a loaded table. Every column of a Table shares it;
// two tables are never zipped together.
type Row struct{}

type Column = columns.Column[Row, float64]

// Table is an ordered set of equally long float columns.
type Table struct {
	Name  string
	names []string
	cols  map[string]*Column
}

// document is the YAML layout. columns is kept as a node so that column order
// survives the round trip.
type document struct {
	Name    string    `yaml:"name"`
	Columns yaml.Node `yaml:"columns"`
}

func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load reads a table document:
//
//	name: particles
//	columns:
//	  x: [0, 1, 2]
//	  vx: [1, 0.5, -1]
func Load(r io.Reader) (*Table, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode table: %w", err)
	}
	if doc.Columns.Kind != yaml.MappingNode || len(doc.Columns.Content) == 0 {
		return nil, ErrNoColumns
	}

	t := &Table{Name: doc.Name, cols: make(map[string]*Column)}
	content := doc.Columns.Content
	for i := 0; i+1 < len(content); i += 2 {
		name := content[i].Value
		var values []float64
		if err := content[i+1].Decode(&values); err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		if err := t.add(name, values); err != nil {
			return nil, err
		}
	}

	sized := make([]columns.Sized, 0, len(t.names))
	for _, name := range t.names {
		sized = append(sized, t.cols[name])
	}
	if err := columns.CheckAligned(sized...); err != nil {
		return nil, fmt.Errorf("table %q: %w", t.Name, err)
	}
	return t, nil
}

func (t *Table) add(name string, values []float64) error {
	if _, ok := t.cols[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
	}
	t.names = append(t.names, name)
	t.cols[name] = columns.Of[Row](values...)
	return nil
}

// Names returns the column names in document order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

func (t *Table) Rows() int {
	if len(t.names) == 0 {
		return 0
	}
	return t.cols[t.names[0]].Len()
}

func (t *Table) Column(name string) (*Column, error) {
	c, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return c, nil
}

// Encode writes t back out in the layout read by Load.
func (t *Table) Encode(w io.Writer) error {
	cols := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range t.names {
		var values yaml.Node
		if err := values.Encode(t.cols[name].ToSlice()); err != nil {
			return err
		}
		values.Style = yaml.FlowStyle
		cols.Content = append(cols.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, &values)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Name: t.Name, Columns: *cols}); err != nil {
		return err
	}
	return enc.Close()
}

var binaryOps = map[string]func(l, r aligned.Iter[Row, float64]) aligned.Iter[Row, float64]{
	"add": aligned.Add[Row, float64],
	"sub": aligned.Sub[Row, float64],
	"mul": aligned.Mul[Row, float64],
	"div": aligned.Div[Row, float64],
}

var unaryOps = map[string]func(aligned.Iter[Row, float64]) aligned.Iter[Row, float64]{
	"neg": aligned.Neg[Row, float64],
}

// Ops lists the operation names accepted by Eval.
func Ops() []string {
	return []string{"add", "sub", "mul", "div", "neg"}
}

// Eval applies a named elementwise operation to the named columns.
func (t *Table) Eval(op string, args ...string) ([]float64, error) {
	operands := make([]*Column, 0, len(args))
	for _, name := range args {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		operands = append(operands, c)
	}

	if f, ok := binaryOps[op]; ok {
		if len(operands) != 2 {
			return nil, fmt.Errorf("%s takes 2 columns, got %d", op, len(operands))
		}
		return f(operands[0].Iter(), operands[1].Iter()).Collect(), nil
	}
	if f, ok := unaryOps[op]; ok {
		if len(operands) != 1 {
			return nil, fmt.Errorf("%s takes 1 column, got %d", op, len(operands))
		}
		return f(operands[0].Iter()).Collect(), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownOp, op, strings.Join(Ops(), ", "))
}

// MotionPairs returns (position, velocity) column name pairs: every column "vN"
// whose column "N" also exists, in document order of the position column.
func (t *Table) MotionPairs() []tuple.Pair[string, string] {
	var pairs []tuple.Pair[string, string]
	for _, name := range t.names {
		if _, ok := t.cols["v"+name]; ok {
			pairs = append(pairs, tuple.Of(name, "v"+name))
		}
	}
	return pairs
}

// Integrate advances every position column by its velocity times dt, steps times,
// in place. It returns the number of position columns moved.
func (t *Table) Integrate(steps int, dt float64) int {
	pairs := t.MotionPairs()
	for _, p := range pairs {
		pos, vel := t.cols[p.First], t.cols[p.Second]
		for range steps {
			delta := aligned.Map(vel.Iter(), func(v float64) float64 { return v * dt })
			aligned.Zip(pos.IterMut(), delta).ForEach(func(q tuple.Pair[*float64, float64]) {
				*q.First += q.Second
			})
		}
	}
	return len(pairs)
}

// Summary describes one column.
type Summary struct {
	Name string  `json:"name"`
	Sum  float64 `json:"sum"`
	Max  float64 `json:"max"`
}

func (t *Table) Summaries() []Summary {
	out := make([]Summary, 0, len(t.names))
	for _, name := range t.names {
		c := t.cols[name]
		m, _ := seqs.Max(c.Iter().Seq())
		out = append(out, Summary{Name: name, Sum: seqs.Sum(c.Iter().Seq()), Max: m})
	}
	return out
}
