package usage

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Role classifies the semantic position of an identifier occurrence.
type Role string

const (
	// RoleNone is any node that is not a bare name (property names, type
	// identifiers, string contents, labels) or a name that is not a value:
	// JSX intrinsic tags, export aliases and imported names behind an alias.
	RoleNone Role = ""
	// RoleReference is a bare name read as a value or called.
	RoleReference Role = "reference"
	// RoleWrite is an assignment target or update operand.
	RoleWrite Role = "write"
	// RoleDeclaration is a binding site: imports, declarators, parameters,
	// function and class names, catch parameters, loop bindings.
	RoleDeclaration Role = "declaration"
)

// Counted reports whether occurrences with this role count as references.
func (r Role) Counted(countDeclarations bool) bool {
	switch r {
	case RoleReference, RoleWrite:
		return true
	case RoleDeclaration:
		return countDeclarations
	default:
		return false
	}
}

// patternKinds are destructuring wrappers; an identifier inside one takes the
// role of the outermost pattern.
var patternKinds = map[string]bool{
	"array_pattern":             true,
	"object_pattern":            true,
	"pair_pattern":              true,
	"rest_pattern":              true,
	"assignment_pattern":        true,
	"object_assignment_pattern": true,
}

// bindingFields maps a parent kind to the fields whose identifier is a binding.
var bindingFields = map[string][]string{
	"import_specifier":               {"name", "alias"},
	"namespace_import":               nil,
	"import_clause":                  nil,
	"import_require_clause":          nil,
	"variable_declarator":            {"name"},
	"required_parameter":             {"pattern"},
	"optional_parameter":             {"pattern"},
	"formal_parameters":              nil,
	"arrow_function":                 {"parameter"},
	"function_declaration":           {"name"},
	"function_expression":            {"name"},
	"function":                       {"name"},
	"generator_function_declaration": {"name"},
	"generator_function":             {"name"},
	"class_declaration":              {"name"},
	"class":                          {"name"},
	"abstract_class_declaration":     {"name"},
	"catch_clause":                   {"parameter"},
	"enum_declaration":               {"name"},
	"internal_module":                {"name"},
	"module":                         {"name"},
}

// nameKinds are the node kinds that hold a bare name. A shorthand property
// {app} reads the binding app, so it counts as a name too.
var nameKinds = map[string]bool{
	"identifier":                            true,
	"shorthand_property_identifier":         true,
	"shorthand_property_identifier_pattern": true,
}

// classKinds name their class with a type_identifier in the TypeScript
// grammars and an identifier in JavaScript.
var classKinds = map[string]bool{
	"class_declaration":          true,
	"abstract_class_declaration": true,
	"class":                      true,
}

// jsxTagKinds hold the element name of a JSX tag.
var jsxTagKinds = map[string]bool{
	"jsx_opening_element":      true,
	"jsx_closing_element":      true,
	"jsx_self_closing_element": true,
}

// IsName reports whether node holds a bare name.
func IsName(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	if nameKinds[node.Kind()] {
		return true
	}
	if node.Kind() == "type_identifier" {
		parent := node.Parent()
		return parent != nil && classKinds[parent.Kind()] && isField(parent, "name", node)
	}
	return false
}

// isIntrinsicTag reports whether node names a lowercase JSX element such as
// <div>, which is a string tag rather than a value.
func isIntrinsicTag(node, parent *sitter.Node, text string) bool {
	if parent.Kind() == "jsx_namespace_name" {
		return true
	}
	if !jsxTagKinds[parent.Kind()] || !isField(parent, "name", node) {
		return false
	}
	return text != "" && text[0] >= 'a' && text[0] <= 'z'
}

// Classify returns the role of node, whose source text is name. Nodes that are
// not bare names get RoleNone.
func Classify(node *sitter.Node, name string) Role {
	if !IsName(node) {
		return RoleNone
	}

	child := node
	parent := node.Parent()
	for parent != nil && patternKinds[parent.Kind()] {
		// The default in {x = app} is read, not bound.
		if isField(parent, "right", child) {
			return RoleReference
		}
		// A computed key in {[app]: x} is read.
		if parent.Kind() == "pair_pattern" && isField(parent, "key", child) {
			return RoleReference
		}
		child = parent
		parent = parent.Parent()
	}
	if parent == nil {
		return RoleReference
	}

	kind := parent.Kind()
	switch kind {
	case "jsx_opening_element", "jsx_closing_element", "jsx_self_closing_element", "jsx_namespace_name":
		if isIntrinsicTag(child, parent, name) {
			return RoleNone
		}
	case "export_specifier":
		// The alias in export { x as app } names the export, it does not read app.
		if isField(parent, "alias", child) {
			return RoleNone
		}
	case "import_specifier":
		// In import { app as a } only the alias is bound here.
		if parent.ChildByFieldName("alias") != nil && isField(parent, "name", child) {
			return RoleNone
		}
	case "import_alias":
		// import app = ns.app binds its first identifier.
		if first := parent.NamedChild(0); first != nil && first.Id() == child.Id() {
			return RoleDeclaration
		}
		return RoleReference
	case "for_in_statement":
		if isField(parent, "left", child) {
			if parent.ChildByFieldName("kind") != nil {
				return RoleDeclaration
			}
			return RoleWrite
		}
	case "assignment_expression", "augmented_assignment_expression":
		if isField(parent, "left", child) {
			return RoleWrite
		}
	case "update_expression":
		if isField(parent, "argument", child) {
			return RoleWrite
		}
	}

	if fields, ok := bindingFields[kind]; ok {
		if fields == nil {
			return RoleDeclaration
		}
		for _, field := range fields {
			if isField(parent, field, child) {
				return RoleDeclaration
			}
		}
	}
	return RoleReference
}

func isField(parent *sitter.Node, field string, child *sitter.Node) bool {
	candidate := parent.ChildByFieldName(field)
	return candidate != nil && candidate.Id() == child.Id()
}
