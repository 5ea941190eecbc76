package api_definition

import (
	"github.com/elliotchance/orderedmap/v3"
)

// Documentation is an optional documentation text. The zero value is absent.
type Documentation struct {
	text    string
	present bool
}

func NewDocumentation(text string) Documentation {
	return Documentation{text: text, present: true}
}

func (d Documentation) Get() (string, bool) {
	return d.text, d.present
}

type ApiMethod struct {
	Name       string
	ReturnType string
	// Args maps argument names to argument type names, in declaration order.
	Args    *orderedmap.OrderedMap[string, string]
	JavaDoc Documentation
}

type ApiClass struct {
	Name    string
	JavaDoc Documentation
	Methods []*ApiMethod
}

type ApiDefinition struct {
	Classes []*ApiClass
	Globals []*ApiMethod
}

// NewArgs builds an argument map from alternating name and type values. A trailing name without a
// type is ignored.
func NewArgs(pairs ...string) *orderedmap.OrderedMap[string, string] {
	args := orderedmap.NewOrderedMap[string, string]()
	for i := 0; i+1 < len(pairs); i += 2 {
		args.Set(pairs[i], pairs[i+1])
	}
	return args
}
