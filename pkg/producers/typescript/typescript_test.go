package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	typescriptErrors "github.com/vphpersson/api_declarations/pkg/producers/typescript/errors"
	"github.com/vphpersson/api_declarations/pkg/types/api_definition"
)

func TestConvert(t *testing.T) {
	apiDefinition := &api_definition.ApiDefinition{
		Classes: []*api_definition.ApiClass{
			{
				Name: "Foo",
				Methods: []*api_definition.ApiMethod{
					{Name: "bar", ReturnType: "String", Args: api_definition.NewArgs("n", "int")},
				},
			},
		},
		Globals: []*api_definition.ApiMethod{
			{Name: "baz", ReturnType: "float", Args: api_definition.NewArgs()},
		},
	}

	output, err := Convert(apiDefinition)
	require.NoError(t, err)

	expected := "declare class Foo {\n" +
		"\tprivate constructor();\n" +
		"\tpublic bar(n: number): string;\n" +
		"}\n" +
		"\n" +
		"\n" +
		"declare function baz(): number;\n" +
		"\n"
	assert.Equal(t, expected, output)
}

func TestConvertNil(t *testing.T) {
	_, err := Convert(nil)
	assert.ErrorIs(t, err, typescriptErrors.ErrNilApiDefinition)
}
