// internal/repository/params.go
package repository

import "reflect"

// Direction tells the executor how a parameter travels to and from the store.
type Direction int

const (
	// Input parameters are bound as named arguments of the routine.
	Input Direction = iota
	// Output parameters are not bound; the routine returns them as result columns.
	Output
	// InputOutput parameters are bound and also read back from the result.
	InputOutput
)

// Param is a single named routine parameter.
type Param struct {
	Name      string
	Value     any
	Direction Direction
	dest      any
}

// Params is an ordered set of named routine parameters. Adding a name that is
// already present replaces the earlier binding.
type Params struct {
	list  []Param
	index map[string]int
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{index: make(map[string]int)}
}

// Add binds an input parameter.
func (p *Params) Add(name string, value any) *Params {
	return p.set(Param{Name: name, Value: value, Direction: Input})
}

// AddOutput reserves an output parameter. After a successful Execute the
// store-produced value is scanned into dest and is also available from Get.
func (p *Params) AddOutput(name string, dest any) *Params {
	return p.set(Param{Name: name, Direction: Output, dest: dest})
}

// AddInputOutput binds value and reads the routine's returned value into dest.
func (p *Params) AddInputOutput(name string, value, dest any) *Params {
	return p.set(Param{Name: name, Value: value, Direction: InputOutput, dest: dest})
}

// AddOptional binds *value under name only when value is non-nil. Absent values
// are left out of the call entirely so that the routine's default applies.
func AddOptional[T any](p *Params, name string, value *T) *Params {
	if value == nil {
		return p
	}
	return p.Add(name, *value)
}

// Get returns the value bound to name. For output parameters this is the value
// produced by the store, or nil before execution.
func (p *Params) Get(name string) (any, bool) {
	i, ok := p.index[name]
	if !ok {
		return nil, false
	}
	return p.list[i].Value, true
}

// Has reports whether name is bound.
func (p *Params) Has(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Names returns the parameter names in insertion order.
func (p *Params) Names() []string {
	names := make([]string, 0, len(p.list))
	for _, prm := range p.list {
		names = append(names, prm.Name)
	}
	return names
}

// Len returns the number of bound parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.list)
}

func (p *Params) set(prm Param) *Params {
	if i, ok := p.index[prm.Name]; ok {
		p.list[i] = prm
		return p
	}
	p.index[prm.Name] = len(p.list)
	p.list = append(p.list, prm)
	return p
}

// inputs returns the parameters sent to the store.
func (p *Params) inputs() []Param {
	if p == nil {
		return nil
	}
	in := make([]Param, 0, len(p.list))
	for _, prm := range p.list {
		if prm.Direction != Output {
			in = append(in, prm)
		}
	}
	return in
}

// outputs returns the names and scan destinations of the values read back.
func (p *Params) outputs() ([]string, []any) {
	if p == nil {
		return nil, nil
	}
	var names []string
	var dests []any
	for _, prm := range p.list {
		if prm.Direction == Input {
			continue
		}
		names = append(names, prm.Name)
		dests = append(dests, prm.dest)
	}
	return names, dests
}

// captureOutputs copies scanned destinations into the parameter values.
func (p *Params) captureOutputs() {
	for i, prm := range p.list {
		if prm.Direction == Input || prm.dest == nil {
			continue
		}
		v := reflect.ValueOf(prm.dest)
		if v.Kind() == reflect.Pointer && !v.IsNil() {
			p.list[i].Value = v.Elem().Interface()
		}
	}
}
