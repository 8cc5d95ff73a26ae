package llm

// SchemaType names a JSON value kind
type SchemaType string

const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
)

// Schema is a backend-neutral description of a structured output.
// Providers translate it into their own schema representation.
type Schema struct {
	Type        SchemaType
	Description string
	Format      string
	Enum        []string
	Properties  map[string]*Schema
	Required    []string
	Items       *Schema
	MinItems    int
	MaxItems    int
}

// String returns a string schema with a description
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// Number returns a number schema with a description
func Number(description string) *Schema {
	return &Schema{Type: TypeNumber, Description: description}
}

// StringList returns an array-of-strings schema
func StringList(description string, minItems, maxItems int) *Schema {
	return &Schema{
		Type:        TypeArray,
		Description: description,
		Items:       &Schema{Type: TypeString},
		MinItems:    minItems,
		MaxItems:    maxItems,
	}
}

// Object returns an object schema in which every property is required.
// names keeps the declaration order, which providers use for property ordering.
func Object(description string, names []string, props map[string]*Schema) *Schema {
	return &Schema{
		Type:        TypeObject,
		Description: description,
		Properties:  props,
		Required:    names,
	}
}
