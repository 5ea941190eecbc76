package types

import (
	"strings"
)

const (
	classStart           = "declare class %s {"
	privateConstructor   = "\tprivate constructor();"
	classEnd             = "}"
	defineClassMethod    = "public %s(%s): %s;"
	defineGlobalFunction = "declare function %s(%s): %s;"
	defineArgument       = "%s: %s"
	documentationStart   = "/**"
	documentationEnd     = " */"
	indentation          = "\t"
)

type TypeRename struct {
	From string
	To   string
}

// TypeRenames maps source primitive type names to TypeScript types. No target is itself a source,
// so the order of application does not affect the result.
var TypeRenames = [...]TypeRename{
	{From: "float", To: "number"},
	{From: "int", To: "number"},
	{From: "double", To: "number"},
	{From: "long", To: "number"},
	{From: "String", To: "string"},
}

// RenameType replaces every occurrence of each source primitive name in typeName, including
// occurrences inside longer identifiers.
func RenameType(typeName string) string {
	for _, typeRename := range TypeRenames {
		typeName = strings.ReplaceAll(typeName, typeRename.From, typeRename.To)
	}
	return typeName
}
