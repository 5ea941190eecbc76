package typescript

import (
	"strings"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	typescriptErrors "github.com/vphpersson/api_declarations/pkg/producers/typescript/errors"
	"github.com/vphpersson/api_declarations/pkg/producers/typescript/types"
	"github.com/vphpersson/api_declarations/pkg/types/api_definition"
)

// Convert renders the API definition as the contents of a TypeScript declaration file.
func Convert(apiDefinition *api_definition.ApiDefinition) (string, error) {
	if apiDefinition == nil {
		return "", motmedelErrors.NewWithTrace(typescriptErrors.ErrNilApiDefinition)
	}

	return strings.Join(types.Generate(apiDefinition), "\n") + "\n", nil
}
