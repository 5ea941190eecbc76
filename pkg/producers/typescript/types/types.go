package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vphpersson/api_declarations/pkg/types/api_definition"
)

// DocumentationLines renders content as a block comment, one line per content line. Lines that are
// blank after trimming are dropped.
func DocumentationLines(content string) []string {
	segments := strings.Split(content, "\n")

	lines := make([]string, 0, len(segments)+2)
	lines = append(lines, documentationStart)
	for _, segment := range segments {
		lines = append(lines, " "+strings.TrimSpace(segment))
	}
	lines = append(lines, documentationEnd)

	return slices.DeleteFunc(lines, func(line string) bool {
		return len(strings.TrimSpace(line)) == 0
	})
}

func indent(lines []string) []string {
	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = indentation + line
	}
	return indented
}

// ArgumentString renders the method's arguments in declaration order, e.g. "x: number, y: string".
// A nil argument map renders as no arguments.
func ArgumentString(method *api_definition.ApiMethod) string {
	args := method.Args
	if args == nil {
		return ""
	}

	argumentStrings := make([]string, 0, args.Len())
	for element := args.Front(); element != nil; element = element.Next() {
		argumentStrings = append(
			argumentStrings,
			fmt.Sprintf(defineArgument, element.Key, RenameType(element.Value)),
		)
	}

	return strings.Join(argumentStrings, ", ")
}

func GlobalMethodLine(method *api_definition.ApiMethod) string {
	return fmt.Sprintf(
		defineGlobalFunction,
		method.Name,
		ArgumentString(method),
		RenameType(method.ReturnType),
	)
}

// ClassMethodLine renders an instance method declaration without indentation.
func ClassMethodLine(method *api_definition.ApiMethod) string {
	return fmt.Sprintf(
		defineClassMethod,
		method.Name,
		ArgumentString(method),
		RenameType(method.ReturnType),
	)
}

// ClassLines renders a class declaration. Every class gets a private constructor, so declared
// classes cannot be instantiated from scripts.
func ClassLines(class *api_definition.ApiClass) []string {
	var lines []string

	if javaDoc, ok := class.JavaDoc.Get(); ok {
		lines = append(lines, DocumentationLines(javaDoc)...)
	}

	lines = append(lines, fmt.Sprintf(classStart, class.Name), privateConstructor)

	for _, method := range class.Methods {
		if javaDoc, ok := method.JavaDoc.Get(); ok {
			lines = append(lines, indent(DocumentationLines(javaDoc))...)
		}
		lines = append(lines, indentation+ClassMethodLine(method))
	}

	return append(lines, classEnd)
}

// Generate renders the classes followed by the global functions, each followed by a blank line.
// One extra blank line separates the classes from the globals.
func Generate(apiDefinition *api_definition.ApiDefinition) []string {
	var lines []string

	for _, class := range apiDefinition.Classes {
		lines = append(lines, ClassLines(class)...)
		lines = append(lines, "")
	}

	lines = append(lines, "")

	for _, method := range apiDefinition.Globals {
		if javaDoc, ok := method.JavaDoc.Get(); ok {
			lines = append(lines, DocumentationLines(javaDoc)...)
		}
		lines = append(lines, GlobalMethodLine(method), "")
	}

	return lines
}
