package go_source

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	apiDeclarationsErrors "github.com/vphpersson/api_declarations/pkg/errors"
	"github.com/vphpersson/api_declarations/pkg/types/api_definition"
	"github.com/vphpersson/api_declarations/pkg/types/context"
)

type typeDeclaration struct {
	name string
	doc  *ast.CommentGroup
}

func documentation(commentGroup *ast.CommentGroup) api_definition.Documentation {
	if commentGroup == nil {
		return api_definition.Documentation{}
	}
	return api_definition.NewDocumentation(commentGroup.Text())
}

func sourceTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		if name, ok := context.GoTypeNames[e.Name]; ok {
			return name
		}
		return e.Name
	case *ast.StarExpr:
		return sourceTypeName(e.X)
	case *ast.ArrayType:
		return sourceTypeName(e.Elt) + "[]"
	case *ast.Ellipsis:
		return sourceTypeName(e.Elt) + "[]"
	case *ast.MapType:
		return fmt.Sprintf("{ [key: %s]: %s }", sourceTypeName(e.Key), sourceTypeName(e.Value))
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.IndexExpr:
		// Type arguments are not resolved.
		return sourceTypeName(e.X)
	case *ast.IndexListExpr:
		return sourceTypeName(e.X)
	case *ast.ParenExpr:
		return sourceTypeName(e.X)
	default:
		return "any"
	}
}

// receiverTypeName returns the base type name of a method receiver, e.g. "T" for "*T[K]".
func receiverTypeName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.StarExpr:
		return receiverTypeName(e.X)
	case *ast.IndexExpr:
		return receiverTypeName(e.X)
	case *ast.IndexListExpr:
		return receiverTypeName(e.X)
	case *ast.ParenExpr:
		return receiverTypeName(e.X)
	default:
		return ""
	}
}

func method(funcDecl *ast.FuncDecl) *api_definition.ApiMethod {
	args := api_definition.NewArgs()

	position := 0
	for _, field := range funcDecl.Type.Params.List {
		typeName := sourceTypeName(field.Type)
		if len(field.Names) == 0 {
			args.Set(fmt.Sprintf("arg%d", position), typeName)
			position++
			continue
		}
		for _, identifier := range field.Names {
			name := identifier.Name
			if name == "_" {
				name = fmt.Sprintf("arg%d", position)
			}
			args.Set(name, typeName)
			position++
		}
	}

	returnType := context.VoidTypeName
	if results := funcDecl.Type.Results; results != nil && len(results.List) > 0 {
		returnType = sourceTypeName(results.List[0].Type)
	}

	return &api_definition.ApiMethod{
		Name:       funcDecl.Name.Name,
		ReturnType: returnType,
		Args:       args,
		JavaDoc:    documentation(funcDecl.Doc),
	}
}

func parseFiles(directoryPath string) ([]*ast.File, error) {
	entries, err := os.ReadDir(directoryPath)
	if err != nil {
		return nil, motmedelErrors.NewWithTrace(fmt.Errorf("os read dir: %w", err), directoryPath)
	}

	fileSet := token.NewFileSet()
	packageName := ""

	var files []*ast.File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		filePath := filepath.Join(directoryPath, name)
		file, err := parser.ParseFile(fileSet, filePath, nil, parser.ParseComments)
		if err != nil {
			return nil, motmedelErrors.NewWithTrace(fmt.Errorf("go parser parse file: %w", err), filePath)
		}

		if packageName == "" {
			packageName = file.Name.Name
		} else if file.Name.Name != packageName {
			return nil, motmedelErrors.NewWithTrace(
				apiDeclarationsErrors.ErrMultiplePackages,
				packageName, file.Name.Name,
			)
		}

		files = append(files, file)
	}

	if len(files) == 0 {
		return nil, motmedelErrors.NewWithTrace(apiDeclarationsErrors.ErrNoPackage, directoryPath)
	}

	return files, nil
}

// Collect builds an API definition from the Go package in directoryPath. Exported types with
// exported methods become classes and exported functions become globals, in source order.
func Collect(directoryPath string) (*api_definition.ApiDefinition, error) {
	files, err := parseFiles(directoryPath)
	if err != nil {
		return nil, fmt.Errorf("parse files: %w", err)
	}

	var typeDeclarations []*typeDeclaration
	typeNameToMethods := map[string][]*api_definition.ApiMethod{}

	apiDefinition := &api_definition.ApiDefinition{}

	for _, file := range files {
		for _, topLevelDeclaration := range file.Decls {
			switch declaration := topLevelDeclaration.(type) {
			case *ast.GenDecl:
				if declaration.Tok != token.TYPE {
					continue
				}
				for _, spec := range declaration.Specs {
					typeSpec, ok := spec.(*ast.TypeSpec)
					if !ok || typeSpec.Name == nil || !typeSpec.Name.IsExported() {
						continue
					}

					doc := typeSpec.Doc
					if doc == nil && len(declaration.Specs) == 1 {
						doc = declaration.Doc
					}
					typeDeclarations = append(
						typeDeclarations,
						&typeDeclaration{name: typeSpec.Name.Name, doc: doc},
					)
				}
			case *ast.FuncDecl:
				if !declaration.Name.IsExported() {
					continue
				}

				if declaration.Recv == nil {
					apiDefinition.Globals = append(apiDefinition.Globals, method(declaration))
					continue
				}

				if len(declaration.Recv.List) == 0 {
					continue
				}
				typeName := receiverTypeName(declaration.Recv.List[0].Type)
				typeNameToMethods[typeName] = append(typeNameToMethods[typeName], method(declaration))
			}
		}
	}

	for _, declaration := range typeDeclarations {
		methods := typeNameToMethods[declaration.name]
		if len(methods) == 0 {
			continue
		}

		apiDefinition.Classes = append(
			apiDefinition.Classes,
			&api_definition.ApiClass{
				Name:    declaration.name,
				JavaDoc: documentation(declaration.doc),
				Methods: methods,
			},
		)
	}

	return apiDefinition, nil
}
