package content

import "time"

// DateTimeConfig bounds a DateTime node's draw range and output format.
type DateTimeConfig struct {
	Earliest time.Time
	Latest   time.Time
	Format   string // time layout string; carried on the node but not read by the compiler or encoder, which emit RFC 3339
}

type DateTime struct {
	config DateTimeConfig
}

func NewDateTime(config DateTimeConfig) *DateTime {
	return &DateTime{config: config}
}

func (d *DateTime) Kind() Kind { return KindDateTime }

func (d *DateTime) Earliest() time.Time { return d.config.Earliest }
func (d *DateTime) Latest() time.Time   { return d.config.Latest }
func (d *DateTime) Format() string      { return d.config.Format }

func (d *DateTime) Clone() Node {
	return &DateTime{config: d.config}
}

func (d *DateTime) Accept(v Visitor) error { return v.VisitDateTime(d) }
