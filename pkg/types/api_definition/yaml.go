package api_definition

import (
	"fmt"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/elliotchance/orderedmap/v3"
	apiDeclarationsErrors "github.com/vphpersson/api_declarations/pkg/errors"
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML marks the documentation as present. Null and missing keys never reach this method
// and leave the documentation absent.
func (d *Documentation) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return fmt.Errorf("yaml node decode: %w", err)
	}
	*d = NewDocumentation(text)
	return nil
}

func decodeArgs(node *yaml.Node) (*orderedmap.OrderedMap[string, string], error) {
	args := orderedmap.NewOrderedMap[string, string]()

	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null") {
		return args, nil
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w (line %d)", apiDeclarationsErrors.ErrArgsNotMapping, node.Line),
			node.Kind,
		)
	}

	// Mapping content alternates key and value nodes in document order.
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var argumentType string
		if err := valueNode.Decode(&argumentType); err != nil {
			return nil, motmedelErrors.New(fmt.Errorf("yaml node decode: %w", err), keyNode.Value)
		}
		args.Set(keyNode.Value, argumentType)
	}

	return args, nil
}

func (m *ApiMethod) UnmarshalYAML(value *yaml.Node) error {
	var document struct {
		Name       string        `yaml:"name"`
		ReturnType string        `yaml:"returnType"`
		Args       yaml.Node     `yaml:"args"`
		JavaDoc    Documentation `yaml:"javaDoc"`
	}
	if err := value.Decode(&document); err != nil {
		return fmt.Errorf("yaml node decode: %w", err)
	}

	args, err := decodeArgs(&document.Args)
	if err != nil {
		return fmt.Errorf("decode args: %w", err)
	}

	*m = ApiMethod{
		Name:       document.Name,
		ReturnType: document.ReturnType,
		Args:       args,
		JavaDoc:    document.JavaDoc,
	}
	return nil
}

func (c *ApiClass) UnmarshalYAML(value *yaml.Node) error {
	var document struct {
		Name    string        `yaml:"name"`
		JavaDoc Documentation `yaml:"javaDoc"`
		Methods []*ApiMethod  `yaml:"methods"`
	}
	if err := value.Decode(&document); err != nil {
		return fmt.Errorf("yaml node decode: %w", err)
	}

	*c = ApiClass{Name: document.Name, JavaDoc: document.JavaDoc, Methods: document.Methods}
	return nil
}

func (a *ApiDefinition) UnmarshalYAML(value *yaml.Node) error {
	var document struct {
		Classes []*ApiClass  `yaml:"classes"`
		Globals []*ApiMethod `yaml:"globals"`
	}
	if err := value.Decode(&document); err != nil {
		return fmt.Errorf("yaml node decode: %w", err)
	}

	*a = ApiDefinition{Classes: document.Classes, Globals: document.Globals}
	return nil
}

// Load decodes an API definition from a YAML document.
func Load(data []byte) (*ApiDefinition, error) {
	var apiDefinition ApiDefinition
	if err := yaml.Unmarshal(data, &apiDefinition); err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("yaml unmarshal: %w", err))
	}

	return &apiDefinition, nil
}
