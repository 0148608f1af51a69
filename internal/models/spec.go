package models

// Application is the single root record of a scanned tree.
type Application struct {
	Title       string    `json:"title" yaml:"title"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Notes       []string  `json:"notes" yaml:"notes"`
	Address     string    `json:"address" yaml:"address"`
	Author      string    `json:"author" yaml:"author"`
	Contact     string    `json:"contact" yaml:"contact"`
	Version     string    `json:"version" yaml:"version"`
	Modules     []*Module `json:"modules" yaml:"modules"`
}

// Module groups the actions declared lexically inside its declaration.
type Module struct {
	Title       string       `json:"title" yaml:"title"`
	Name        string       `json:"name" yaml:"name"`
	Path        string       `json:"path" yaml:"path"`
	Description string       `json:"description" yaml:"description"`
	Middlewares []Middleware `json:"middlewares" yaml:"middlewares"`
	Notes       []string     `json:"notes" yaml:"notes"`
	Filename    string       `json:"filename" yaml:"filename"` // source file stem
	Actions     []*Action    `json:"actions" yaml:"actions"`
}

// Action is one documented endpoint derived from one declared route.
type Action struct {
	Title       string       `json:"title" yaml:"title"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Notes       []string     `json:"notes" yaml:"notes"`
	Route       Route        `json:"route" yaml:"route"`
	Params      []Param      `json:"params" yaml:"params"`
	Middlewares []Middleware `json:"middlewares" yaml:"middlewares"`
	Filename    string       `json:"filename" yaml:"filename"` // source file stem
	Funcname    string       `json:"funcname" yaml:"funcname"` // declaration name, empty when anonymous
}

// AddAction appends an action to the module's action list.
func (m *Module) AddAction(action *Action) {
	m.Actions = append(m.Actions, action)
}

// Actions returns every action reachable from the application, module by
// module, in module order.
func (a *Application) Actions() []*Action {
	var actions []*Action
	for _, mod := range a.Modules {
		actions = append(actions, mod.Actions...)
	}
	return actions
}

// Clone returns a shallow copy of the application so that attaching a module
// list does not mutate a cached record.
func (a *Application) Clone() *Application {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Notes = append([]string(nil), a.Notes...)
	cp.Modules = nil
	return &cp
}
