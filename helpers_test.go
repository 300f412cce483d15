package existential

import (
	"strings"

	"github.com/goccy/go-json"
)

// Drink is the interface the test wrappers hold.
type Drink interface {
	Volume() float64
}

// Water and Juice have identical shapes, so they only differ by
// type.
type Water struct {
	ML float64 `json:"ml"`
}

func (w Water) Volume() float64 { return w.ML }

type Juice struct {
	ML float64 `json:"ml"`
}

func (j Juice) Volume() float64 { return j.ML }

// Cocktail is not comparable with ==.
type Cocktail struct {
	Parts []Drink `json:"-"`
}

func (c Cocktail) Volume() float64 {
	var ret float64
	for _, p := range c.Parts {
		ret += p.Volume()
	}
	return ret
}

// Label compares and hashes case-insensitively.
type Label string

func (l Label) Volume() float64 { return 0 }

func (l Label) Equal(other any) bool {
	return strings.EqualFold(string(l), string(other.(Label)))
}

func (l Label) Hash(h *Hasher) {
	h.WriteString(strings.ToLower(string(l)))
}

// Shelf is comparable, but panics when compared if it holds an
// uncomparable Drink.
type Shelf struct {
	Top Drink
}

// Tree is a self-referential struct.
type Tree struct {
	Left  *Tree
	Right *Tree
	V     int
}

// box is a minimal hand-written scalar wrapper.
type box struct {
	v Drink
}

func (b box) EquatableValue() any { return b.v }

// seq is a minimal hand-written sequence wrapper.
type seq[T ~[]Drink] struct {
	v        T
	optional bool
}

func (s seq[T]) EquatableSequence() SequenceOfEquatables {
	if s.optional {
		return OptionalSequenceOf[T, Drink](s.v)
	}
	return SequenceOf[T, Drink](s.v)
}

type Drinks []Drink

// optional is a minimal hand-written optional codable wrapper.
type optional struct {
	v         *Water
	encodeNil bool
}

func (o optional) IsAbsent() bool        { return o.v == nil }
func (o optional) ShouldEncodeNil() bool { return o.encodeNil }
func (o *optional) DecodeAbsent()        { o.v = nil }

func (o optional) MarshalJSON() ([]byte, error) {
	if o.v == nil {
		return Null(), nil
	}
	return json.Marshal(o.v)
}

func (o *optional) UnmarshalJSON(bs []byte) error {
	if IsNull(bs) {
		o.v = nil
		return nil
	}
	var w Water
	if err := json.Unmarshal(bs, &w); err != nil {
		return err
	}
	o.v = &w
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
