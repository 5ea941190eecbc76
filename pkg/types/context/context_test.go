package context

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiDeclarationsErrors "github.com/vphpersson/api_declarations/pkg/errors"
	"github.com/vphpersson/api_declarations/pkg/types/api_definition"
)

type greeter struct{}

func (g *greeter) Greet(name string, times int) string { return name }

func (greeter) Count() int64 { return 0 }

func (greeter) reset() {}

type widget struct{}

func (w *widget) Attach(g *greeter, weights []float64, flags map[string]bool) error { return nil }

func (w *widget) Close() {}

type Shape interface {
	Area() float64
	Scale(factor float32) Shape
}

func argumentPairs(method *api_definition.ApiMethod) []string {
	var pairs []string
	for element := method.Args.Front(); element != nil; element = element.Next() {
		pairs = append(pairs, element.Key, element.Value)
	}
	return pairs
}

func TestAddReflectedClass(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(&greeter{}))

	apiDefinition := c.Definition()
	require.Len(t, apiDefinition.Classes, 1)

	class := apiDefinition.Classes[0]
	assert.Equal(t, "Greeter", class.Name)
	_, ok := class.JavaDoc.Get()
	assert.False(t, ok)

	require.Len(t, class.Methods, 2)

	count := class.Methods[0]
	assert.Equal(t, "Count", count.Name)
	assert.Equal(t, "long", count.ReturnType)
	assert.Equal(t, 0, count.Args.Len())

	greet := class.Methods[1]
	assert.Equal(t, "Greet", greet.Name)
	assert.Equal(t, "String", greet.ReturnType)
	assert.Equal(t, []string{"arg0", "String", "arg1", "int"}, argumentPairs(greet))
}

func TestAddTypeMapping(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(reflect.TypeOf(widget{})))

	class := c.Definition().Classes[0]
	assert.Equal(t, "Widget", class.Name)
	require.Len(t, class.Methods, 2)

	attach := class.Methods[0]
	assert.Equal(t, "Error", attach.ReturnType)
	assert.Equal(
		t,
		[]string{"arg0", "Greeter", "arg1", "double[]", "arg2", "{ [key: String]: boolean }"},
		argumentPairs(attach),
	)

	closeMethod := class.Methods[1]
	assert.Equal(t, "Close", closeMethod.Name)
	assert.Equal(t, VoidTypeName, closeMethod.ReturnType)
}

func TestAddInterface(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(reflect.TypeOf((*Shape)(nil))))

	class := c.Definition().Classes[0]
	assert.Equal(t, "Shape", class.Name)
	require.Len(t, class.Methods, 2)

	assert.Equal(t, "Area", class.Methods[0].Name)
	assert.Equal(t, "double", class.Methods[0].ReturnType)
	assert.Equal(t, "Scale", class.Methods[1].Name)
	assert.Equal(t, "Shape", class.Methods[1].ReturnType)
	assert.Equal(t, []string{"arg0", "float"}, argumentPairs(class.Methods[1]))
}

func TestAddDeduplicates(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(greeter{}, &greeter{}, reflect.ValueOf(greeter{})))
	assert.Len(t, c.Definition().Classes, 1)
}

func TestAddUniqueNames(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(&api_definition.ApiClass{Name: "Greeter"}, greeter{}))

	classes := c.Definition().Classes
	require.Len(t, classes, 2)
	assert.Equal(t, "Greeter", classes[0].Name)
	assert.Equal(t, "Greeter2", classes[1].Name)
}

func TestAddModelValues(t *testing.T) {
	global := &api_definition.ApiMethod{Name: "log", ReturnType: "void"}
	class := &api_definition.ApiClass{Name: "Logger"}
	otherGlobal := &api_definition.ApiMethod{Name: "now", ReturnType: "long"}

	c := New()
	require.NoError(t, c.Add(
		global,
		class,
		&api_definition.ApiDefinition{Globals: []*api_definition.ApiMethod{otherGlobal}},
	))

	apiDefinition := c.Definition()
	assert.Equal(t, []*api_definition.ApiClass{class}, apiDefinition.Classes)
	assert.Equal(t, []*api_definition.ApiMethod{global, otherGlobal}, apiDefinition.Globals)
}

func TestAddErrors(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Add(nil), apiDeclarationsErrors.ErrUnsupportedValue)
	assert.ErrorIs(t, c.Add([]int{}), apiDeclarationsErrors.ErrEmptyTypeName)
}
