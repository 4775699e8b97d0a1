package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue   NodeType = 128
	nodeTypeVector  NodeType = 256
	nodeTypeWrapper NodeType = 512

	NodeTypeSymbol = nodeTypeValue | 1
	NodeTypeString = nodeTypeValue | 2
	NodeTypeInt    = nodeTypeValue | 4
	NodeTypeFloat  = nodeTypeValue | 8
	NodeTypeBool   = nodeTypeValue | 16

	NodeTypeQuoted      = nodeTypeValue | nodeTypeWrapper | 1
	NodeTypeQuasiQuoted = nodeTypeValue | nodeTypeWrapper | 2
	NodeTypeUnquoted    = nodeTypeValue | nodeTypeWrapper | 4

	NodeTypeList = nodeTypeVector | 1
)

// IsValue returns true for every atom type.
func (nt NodeType) IsValue() bool {
	return nt&nodeTypeValue > 0
}

// IsVector returns true for lists.
func (nt NodeType) IsVector() bool {
	return nt&nodeTypeVector > 0
}

// IsWrapper returns true for quote, quasiquote and unquote.
func (nt NodeType) IsWrapper() bool {
	return nt&nodeTypeWrapper > 0
}

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeSymbol:      "symbol",
	NodeTypeString:      "string",
	NodeTypeInt:         "int",
	NodeTypeFloat:       "float",
	NodeTypeBool:        "bool",
	NodeTypeQuoted:      "quoted",
	NodeTypeQuasiQuoted: "quasiquoted",
	NodeTypeUnquoted:    "unquoted",
	NodeTypeList:        "list",
}

var wrapperPrefix = map[NodeType]string{
	NodeTypeQuoted:      "'",
	NodeTypeQuasiQuoted: "`",
	NodeTypeUnquoted:    ",",
}
