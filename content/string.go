package content

// StringConfig holds a String node's configuration. MinLength/MaxLength
// follow schemas/string.go's field names; Pattern carries a raw
// regular expression (compiled by compiler/pattern.go via reggen, not here
// — this package is the AST, not the generator) and Categorical is a fixed
// pool to draw from uniformly, taking precedence over length/pattern when
// set.
type StringConfig struct {
	MinLength   *int
	MaxLength   *int
	Pattern     string
	Format      string // a faker registry tag such as "internet.email" or "identifier.uuid"; takes precedence over every other field
	Categorical []string
	DefaultVal  *string
}

type String struct {
	config StringConfig
}

func NewString(config StringConfig) *String {
	return &String{config: config}
}

func (s *String) Kind() Kind { return KindString }

func (s *String) MinLength() *int       { return s.config.MinLength }
func (s *String) MaxLength() *int       { return s.config.MaxLength }
func (s *String) Pattern() string       { return s.config.Pattern }
func (s *String) Format() string        { return s.config.Format }
func (s *String) Categorical() []string { return s.config.Categorical }
func (s *String) DefaultValue() *string { return s.config.DefaultVal }

func (s *String) Clone() Node {
	cfg := s.config
	if s.config.MinLength != nil {
		v := *s.config.MinLength
		cfg.MinLength = &v
	}
	if s.config.MaxLength != nil {
		v := *s.config.MaxLength
		cfg.MaxLength = &v
	}
	if s.config.Categorical != nil {
		cfg.Categorical = append([]string(nil), s.config.Categorical...)
	}
	if s.config.DefaultVal != nil {
		v := *s.config.DefaultVal
		cfg.DefaultVal = &v
	}
	return &String{config: cfg}
}

func (s *String) Accept(v Visitor) error { return v.VisitString(s) }
