package context

import (
	"fmt"
	"reflect"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	motmedelReflect "github.com/Motmedel/utils_go/pkg/reflect"
	apiDeclarationsErrors "github.com/vphpersson/api_declarations/pkg/errors"
	"github.com/vphpersson/api_declarations/pkg/types/api_definition"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GoTypeNames maps predeclared Go type names to the primitive names used in API definitions.
var GoTypeNames = map[string]string{
	"int":     "int",
	"int8":    "int",
	"int16":   "int",
	"int32":   "int",
	"rune":    "int",
	"uint":    "int",
	"uint8":   "int",
	"byte":    "int",
	"uint16":  "int",
	"uint32":  "int",
	"int64":   "long",
	"uint64":  "long",
	"uintptr": "long",
	"float32": "float",
	"float64": "double",
	"string":  "String",
	"bool":    "boolean",
	"error":   "Error",
	"any":     "any",
}

const VoidTypeName = "void"

type Context struct {
	Classes map[reflect.Type]*api_definition.ApiClass

	definition         *api_definition.ApiDefinition
	usedQualifiedNames map[string]struct{}
	titleCaser         cases.Caser
}

func (c *Context) makeUniqueIdentifier(base string) string {
	id := base
	i := 2
	for {
		if _, exists := c.usedQualifiedNames[id]; !exists {
			return id
		}
		id = fmt.Sprintf("%s%d", base, i)
		i++
	}
}

func (c *Context) identifier(reflectType reflect.Type) string {
	typeName, _ := motmedelReflect.GetTypeName(reflectType)
	if typeName == "" {
		return ""
	}
	return c.titleCaser.String(typeName)
}

// SourceTypeName returns the API definition type name of a Go type.
func (c *Context) SourceTypeName(reflectType reflect.Type) string {
	if reflectType.PkgPath() == "" && reflectType.Name() != "" {
		if name, ok := GoTypeNames[reflectType.Name()]; ok {
			return name
		}
		return reflectType.Name()
	}

	if reflectType.Name() == "" {
		switch reflectType.Kind() {
		case reflect.Pointer:
			return c.SourceTypeName(reflectType.Elem())
		case reflect.Slice, reflect.Array:
			return c.SourceTypeName(reflectType.Elem()) + "[]"
		case reflect.Map:
			return fmt.Sprintf(
				"{ [key: %s]: %s }",
				c.SourceTypeName(reflectType.Key()),
				c.SourceTypeName(reflectType.Elem()),
			)
		default:
			return "any"
		}
	}

	return c.identifier(reflectType)
}

func (c *Context) methods(reflectType reflect.Type) []*api_definition.ApiMethod {
	// Method types of concrete types carry the receiver as their first input.
	methodSetType := reflectType
	receiverOffset := 0
	if reflectType.Kind() != reflect.Interface {
		methodSetType = reflect.PointerTo(reflectType)
		receiverOffset = 1
	}

	var methods []*api_definition.ApiMethod
	for i := range methodSetType.NumMethod() {
		method := methodSetType.Method(i)
		methodType := method.Type

		args := api_definition.NewArgs()
		for j := receiverOffset; j < methodType.NumIn(); j++ {
			args.Set(fmt.Sprintf("arg%d", j-receiverOffset), c.SourceTypeName(methodType.In(j)))
		}

		returnType := VoidTypeName
		if methodType.NumOut() > 0 {
			returnType = c.SourceTypeName(methodType.Out(0))
		}

		methods = append(
			methods,
			&api_definition.ApiMethod{Name: method.Name, ReturnType: returnType, Args: args},
		)
	}

	return methods
}

func (c *Context) GetOrCreateClass(reflectType reflect.Type) (*api_definition.ApiClass, error) {
	reflectType = motmedelReflect.RemoveIndirection(reflectType)

	if existingClass, ok := c.Classes[reflectType]; ok {
		return existingClass, nil
	}

	identifier := c.identifier(reflectType)
	if identifier == "" {
		return nil, motmedelErrors.NewWithTrace(apiDeclarationsErrors.ErrEmptyTypeName, reflectType)
	}

	class := &api_definition.ApiClass{
		Name:    c.makeUniqueIdentifier(identifier),
		Methods: c.methods(reflectType),
	}
	c.AddClass(class)
	c.Classes[reflectType] = class

	return class, nil
}

func (c *Context) AddClass(class *api_definition.ApiClass) {
	c.usedQualifiedNames[class.Name] = struct{}{}
	c.definition.Classes = append(c.definition.Classes, class)
}

func (c *Context) AddGlobal(method *api_definition.ApiMethod) {
	c.definition.Globals = append(c.definition.Globals, method)
}

// Add adds classes and global functions in order. Classes and methods of the API definition model
// are added as they are; any other value is reflected into a class.
func (c *Context) Add(values ...any) error {
	for _, value := range values {
		var reflectType reflect.Type
		switch v := value.(type) {
		case *api_definition.ApiDefinition:
			for _, class := range v.Classes {
				c.AddClass(class)
			}
			for _, method := range v.Globals {
				c.AddGlobal(method)
			}
			continue
		case *api_definition.ApiClass:
			c.AddClass(v)
			continue
		case *api_definition.ApiMethod:
			c.AddGlobal(v)
			continue
		case reflect.Type:
			reflectType = v
		case reflect.Value:
			reflectType = v.Type()
		default:
			reflectType = reflect.TypeOf(v)
		}

		if reflectType == nil {
			return motmedelErrors.NewWithTrace(apiDeclarationsErrors.ErrUnsupportedValue, value)
		}

		if _, err := c.GetOrCreateClass(reflectType); err != nil {
			return fmt.Errorf("get or create class: %w", err)
		}
	}

	return nil
}

func (c *Context) Definition() *api_definition.ApiDefinition {
	return c.definition
}

func New() *Context {
	return &Context{
		Classes:            map[reflect.Type]*api_definition.ApiClass{},
		definition:         &api_definition.ApiDefinition{},
		usedQualifiedNames: map[string]struct{}{},
		titleCaser:         cases.Title(language.Und, cases.NoLower),
	}
}
