package dsl

// String formats understood by the lowering engine.
const (
	FormatEmail    = "email"
	FormatURL      = "url"
	FormatUUID     = "uuid"
	FormatDateTime = "datetime"
	FormatDate     = "date"
	FormatTime     = "time"
	FormatIPv4     = "ipv4"
	FormatIPv6     = "ipv6"
)

// StringSchema describes a string value.
type StringSchema struct {
	MinLength *int
	MaxLength *int
	Format    string
	Pattern   string

	ErrorMessages map[string]string
}

// String returns a string schema.
func String() *StringSchema { return &StringSchema{} }

func (*StringSchema) Kind() Kind { return KindString }

// Min sets the minimum length. An optional message is exported as errorMessage.minLength.
func (s *StringSchema) Min(n int, msg ...string) *StringSchema {
	s.MinLength = &n
	setMessage(&s.ErrorMessages, "minLength", msg)
	return s
}

// Max sets the maximum length.
func (s *StringSchema) Max(n int, msg ...string) *StringSchema {
	s.MaxLength = &n
	setMessage(&s.ErrorMessages, "maxLength", msg)
	return s
}

// Length fixes the length (min and max).
func (s *StringSchema) Length(n int, msg ...string) *StringSchema {
	return s.Min(n, msg...).Max(n, msg...)
}

// Email sets the email format.
func (s *StringSchema) Email(msg ...string) *StringSchema { return s.format(FormatEmail, msg) }

// URL sets the url format (exported as "uri").
func (s *StringSchema) URL(msg ...string) *StringSchema { return s.format(FormatURL, msg) }

// UUID sets the uuid format.
func (s *StringSchema) UUID(msg ...string) *StringSchema { return s.format(FormatUUID, msg) }

// Datetime sets the ISO date-time format.
func (s *StringSchema) Datetime(msg ...string) *StringSchema { return s.format(FormatDateTime, msg) }

// Regex sets a pattern. The expression is exported verbatim.
func (s *StringSchema) Regex(pattern string, msg ...string) *StringSchema {
	s.Pattern = pattern
	setMessage(&s.ErrorMessages, "pattern", msg)
	return s
}

// WithFormat sets one of the Format* names. Unknown names are dropped when lowering.
func (s *StringSchema) WithFormat(name string, msg ...string) *StringSchema {
	return s.format(name, msg)
}

func (s *StringSchema) format(name string, msg []string) *StringSchema {
	s.Format = name
	setMessage(&s.ErrorMessages, "format", msg)
	return s
}

// NumberSchema describes a number. Bounds are independent and their declaration
// order does not matter.
type NumberSchema struct {
	Integer          bool
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       *float64

	ErrorMessages map[string]string
}

// Number returns a number schema.
func Number() *NumberSchema { return &NumberSchema{} }

func (*NumberSchema) Kind() Kind { return KindNumber }

// Int restricts the number to integers.
func (n *NumberSchema) Int(msg ...string) *NumberSchema {
	n.Integer = true
	setMessage(&n.ErrorMessages, "type", msg)
	return n
}

// Min sets an inclusive lower bound.
func (n *NumberSchema) Min(v float64, msg ...string) *NumberSchema {
	n.Minimum = &v
	setMessage(&n.ErrorMessages, "minimum", msg)
	return n
}

// Max sets an inclusive upper bound.
func (n *NumberSchema) Max(v float64, msg ...string) *NumberSchema {
	n.Maximum = &v
	setMessage(&n.ErrorMessages, "maximum", msg)
	return n
}

// Gt sets an exclusive lower bound.
func (n *NumberSchema) Gt(v float64, msg ...string) *NumberSchema {
	n.ExclusiveMinimum = &v
	setMessage(&n.ErrorMessages, "exclusiveMinimum", msg)
	return n
}

// Lt sets an exclusive upper bound.
func (n *NumberSchema) Lt(v float64, msg ...string) *NumberSchema {
	n.ExclusiveMaximum = &v
	setMessage(&n.ErrorMessages, "exclusiveMaximum", msg)
	return n
}

// Positive is Gt(0).
func (n *NumberSchema) Positive(msg ...string) *NumberSchema { return n.Gt(0, msg...) }

// Nonnegative is Min(0).
func (n *NumberSchema) Nonnegative(msg ...string) *NumberSchema { return n.Min(0, msg...) }

// Negative is Lt(0).
func (n *NumberSchema) Negative(msg ...string) *NumberSchema { return n.Lt(0, msg...) }

// Nonpositive is Max(0).
func (n *NumberSchema) Nonpositive(msg ...string) *NumberSchema { return n.Max(0, msg...) }

// Step sets the multipleOf constraint.
func (n *NumberSchema) Step(v float64, msg ...string) *NumberSchema {
	n.MultipleOf = &v
	setMessage(&n.ErrorMessages, "multipleOf", msg)
	return n
}

// BooleanSchema describes a boolean.
type BooleanSchema struct{}

// Boolean returns a boolean schema.
func Boolean() *BooleanSchema { return &BooleanSchema{} }

func (*BooleanSchema) Kind() Kind { return KindBoolean }

// DateSchema describes a date. Coercion has no effect on the exported schema.
type DateSchema struct {
	Coerced bool
}

// Date returns a strict date schema.
func Date() *DateSchema { return &DateSchema{} }

// CoerceDate returns a coercing date schema.
func CoerceDate() *DateSchema { return &DateSchema{Coerced: true} }

func (*DateSchema) Kind() Kind { return KindDate }

// Coerce marks the date as coercing.
func (d *DateSchema) Coerce() *DateSchema {
	d.Coerced = true
	return d
}

// LiteralSchema matches exactly one value (string, number, bool or nil).
type LiteralSchema struct {
	Value any
}

// Literal returns a literal schema.
func Literal(v any) *LiteralSchema { return &LiteralSchema{Value: v} }

func (*LiteralSchema) Kind() Kind { return KindLiteral }

// EnumSchema matches one of a list of strings. Either Values or Source is set.
type EnumSchema struct {
	Values []any // strings, or Identifiers resolving to strings
	Source *Identifier
}

// Enum returns an enum over the given values.
func Enum(values ...string) *EnumSchema {
	vs := make([]any, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return &EnumSchema{Values: vs}
}

// EnumValues returns an enum whose members may be identifiers.
func EnumValues(values ...any) *EnumSchema {
	return &EnumSchema{Values: append([]any(nil), values...)}
}

// EnumOf returns an enum whose value list comes from an identifier bound to an
// array of strings.
func EnumOf(src Identifier) *EnumSchema { return &EnumSchema{Source: &src} }

func (*EnumSchema) Kind() Kind { return KindEnum }

// ImageSchema describes an image path.
type ImageSchema struct{}

// Image returns an image schema.
func Image() *ImageSchema { return &ImageSchema{} }

func (*ImageSchema) Kind() Kind { return KindImage }
