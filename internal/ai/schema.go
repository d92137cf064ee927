package ai

// Type is the JSON type of a schema node.
type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeBoolean Type = "boolean"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
)

// Property is a named member of an object schema. Properties are kept in a
// slice so the declared order reaches the provider unchanged.
type Property struct {
	Name   string
	Schema *Schema
}

// Schema is a provider-neutral description of the expected output shape.
type Schema struct {
	Type       Type
	Properties []Property
	Items      *Schema
	Required   []string
}

func String() *Schema  { return &Schema{Type: TypeString} }
func Boolean() *Schema { return &Schema{Type: TypeBoolean} }

// ArrayOf declares an array whose elements follow items.
func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// Object declares an object with ordered properties.
func Object(props ...Property) *Schema {
	return &Schema{Type: TypeObject, Properties: props}
}

// Prop is shorthand for a Property literal.
func Prop(name string, s *Schema) Property {
	return Property{Name: name, Schema: s}
}

// WithRequired returns the schema after marking the named properties mandatory.
func (s *Schema) WithRequired(names ...string) *Schema {
	s.Required = append(s.Required, names...)
	return s
}

// PropertyNames returns the property names in declaration order.
func (s *Schema) PropertyNames() []string {
	names := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		names = append(names, p.Name)
	}
	return names
}

// JSONSchema renders the schema as a JSON Schema document. Optional members
// additionally accept null, since providers may emit explicit nulls for absent
// values; required string members must be non-empty.
func (s *Schema) JSONSchema() map[string]any {
	doc := s.jsonSchema(false)
	doc["$schema"] = "http://json-schema.org/draft-07/schema#"
	return doc
}

func (s *Schema) jsonSchema(nullable bool) map[string]any {
	node := map[string]any{}
	if nullable {
		node["type"] = []string{string(s.Type), "null"}
	} else {
		node["type"] = string(s.Type)
	}

	switch s.Type {
	case TypeObject:
		required := make(map[string]bool, len(s.Required))
		for _, name := range s.Required {
			required[name] = true
		}

		props := make(map[string]any, len(s.Properties))
		for _, p := range s.Properties {
			child := p.Schema.jsonSchema(!required[p.Name])
			if required[p.Name] && p.Schema.Type == TypeString {
				child["minLength"] = 1
			}
			props[p.Name] = child
		}
		node["properties"] = props
		if len(s.Required) > 0 {
			node["required"] = append([]string(nil), s.Required...)
		}
	case TypeArray:
		if s.Items != nil {
			node["items"] = s.Items.jsonSchema(false)
		}
	}

	return node
}
