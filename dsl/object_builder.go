package dsl

// FieldDecl is one declared object field.
type FieldDecl struct {
	Name string
	Node Node
	Mods Modifiers
}

// ObjectSchema is a closed object with fields in declaration order.
type ObjectSchema struct {
	Fields []FieldDecl
}

func (*ObjectSchema) Kind() Kind { return KindObject }

// FieldStep configures the most recently declared field. It also satisfies
// Node, so a chain can be passed directly wherever a schema is expected.
type FieldStep struct {
	o   *ObjectSchema
	idx int
}

// Object creates a new object builder.
func Object() *ObjectSchema {
	return &ObjectSchema{}
}

// Field registers a field. Declaring a name twice replaces the earlier node
// and modifiers but keeps its original position.
func (o *ObjectSchema) Field(name string, n Node) *FieldStep {
	for i := range o.Fields {
		if o.Fields[i].Name == name {
			o.Fields[i] = FieldDecl{Name: name, Node: n}
			return &FieldStep{o: o, idx: i}
		}
	}
	o.Fields = append(o.Fields, FieldDecl{Name: name, Node: n})
	return &FieldStep{o: o, idx: len(o.Fields) - 1}
}

// Extend returns a new object holding o's fields followed by more's fields.
// Neither input is modified.
func (o *ObjectSchema) Extend(more *ObjectSchema) *ObjectSchema {
	out := &ObjectSchema{Fields: append([]FieldDecl(nil), o.Fields...)}
	for _, f := range more.Fields {
		out.Field(f.Name, f.Node).set(f.Mods.Merge(Modifiers{}))
	}
	return out
}

// Lookup returns the declaration of a field.
func (o *ObjectSchema) Lookup(name string) (FieldDecl, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDecl{}, false
}

func (f *FieldStep) Kind() Kind { return KindObject }

func (f *FieldStep) mods() *Modifiers { return &f.o.Fields[f.idx].Mods }

func (f *FieldStep) set(m Modifiers) *FieldStep {
	*f.mods() = m
	return f
}

// Optional removes the field from the object's required list.
func (f *FieldStep) Optional() *FieldStep {
	f.mods().Optional = true
	return f
}

// Required undoes Optional. A field with a default stays non-required.
func (f *FieldStep) Required() *FieldStep {
	f.mods().Optional = false
	return f
}

// Default sets a default for the current field and exports it to JSON Schema.
// v may be an Identifier naming a constant.
func (f *FieldStep) Default(v any) *FieldStep {
	m := f.mods()
	m.Default = v
	m.HasDefault = true
	return f
}

// Describe sets the field description.
func (f *FieldStep) Describe(text string) *FieldStep {
	f.mods().Description = text
	return f
}

// ErrorMessage attaches a custom message to a JSON Schema keyword of the field.
func (f *FieldStep) ErrorMessage(keyword, msg string) *FieldStep {
	setMessage(&f.mods().ErrorMessages, keyword, []string{msg})
	return f
}

func (f *FieldStep) Field(name string, n Node) *FieldStep { return f.o.Field(name, n) }

// Object ends the chain and returns the object schema.
func (f *FieldStep) Object() *ObjectSchema { return f.o }
