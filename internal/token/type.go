// Copyright 2024 The Ix Authors
// This file is part of ixc.
//
// ixc is free software: you can redistribute it and/or modify it under the
// terms of the GNU Lesser General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

package token

import "fmt"

// Type is the fine-grained lexical classification of a Token, refined
// from its Group and full lexeme by TypeOf.
type Type int

const (
	TypeUnknown Type = iota

	// Whitespace
	TypeSpace
	TypeTab
	TypeNewline
	TypeUnknownWhitespace

	// Open
	TypeStartBlock
	TypeStartExpression
	TypeStartSubscript
	TypeStartTag

	// Close
	TypeEndBlock
	TypeEndExpression
	TypeEndSubscript
	TypeEndTag

	// Symbolic
	TypeSymbol
	TypeOperator
	TypePrefixOp
	TypeInfixOp
	TypePostfixOp
	TypePreInfixOp
	TypePrePostfixOp
	TypeAssignmentOp
	TypeStop
	TypeLineComment
	TypeComment

	// Alphanumeric
	TypeWord
	TypeCopyright
	TypeLicense
	TypeClass
	TypeInterface
	TypeEnum
	TypeInclude
	TypePackage
	TypeModifier
	TypePrimitive
	TypeKeyword

	// Value / HexValue
	TypeInteger
	TypeFloat
	TypeHex
	TypeNumber
)

var typeNames = [...]string{
	TypeUnknown:           "Unknown",
	TypeSpace:             "Space",
	TypeTab:               "Tab",
	TypeNewline:           "Newline",
	TypeUnknownWhitespace: "UnknownWhitespace",
	TypeStartBlock:        "StartBlock",
	TypeStartExpression:   "StartExpression",
	TypeStartSubscript:    "StartSubscript",
	TypeStartTag:          "StartTag",
	TypeEndBlock:          "EndBlock",
	TypeEndExpression:     "EndExpression",
	TypeEndSubscript:      "EndSubscript",
	TypeEndTag:            "EndTag",
	TypeSymbol:            "Symbol",
	TypeOperator:          "Operator",
	TypePrefixOp:          "PrefixOp",
	TypeInfixOp:           "InfixOp",
	TypePostfixOp:         "PostfixOp",
	TypePreInfixOp:        "PreInfixOp",
	TypePrePostfixOp:      "PrePostfixOp",
	TypeAssignmentOp:      "AssignmentOp",
	TypeStop:              "Stop",
	TypeLineComment:       "LineComment",
	TypeComment:           "Comment",
	TypeWord:              "Word",
	TypeCopyright:         "Copyright",
	TypeLicense:           "License",
	TypeClass:             "Class",
	TypeInterface:         "Interface",
	TypeEnum:              "Enum",
	TypeInclude:           "Include",
	TypePackage:           "Package",
	TypeModifier:          "Modifier",
	TypePrimitive:         "Primitive",
	TypeKeyword:           "Keyword",
	TypeInteger:           "Integer",
	TypeFloat:             "Float",
	TypeHex:               "Hex",
	TypeNumber:            "Number",
}

func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// keywordTypes maps a case-sensitive Alphanumeric lexeme to its refined
// Type. Populated once in init; anything not present here refines to
// TypeWord.
var keywordTypes map[string]Type

func init() {
	keywordTypes = make(map[string]Type, 64)
	set := func(typ Type, words ...string) {
		for _, w := range words {
			keywordTypes[w] = typ
		}
	}
	set(TypeCopyright, "copyright", "Copyright")
	set(TypeLicense, "license", "License", "licence", "Licence")
	set(TypeClass, "class")
	set(TypeInclude, "include")
	set(TypeInterface, "interface")
	set(TypePackage, "package")
	set(TypeModifier, "public", "protected", "private")
	set(TypePrimitive,
		"bool", "boolean", "byte", "char", "const", "double", "float",
		"int", "integer", "long", "short", "signed", "string", "unsigned", "void")
	set(TypeKeyword,
		"break", "case", "catch", "default", "extends", "implements",
		"for", "foreach", "let", "namespace", "return", "switch", "try", "var")
}

// TypeOf refines a (group, lexeme) pair to a Type. A pure function:
// calling it twice on the same inputs always yields the same Type.
func TypeOf(g Group, lexeme []byte) Type {
	if len(lexeme) == 0 {
		return TypeUnknown
	}
	first := lexeme[0]
	switch g {
	case Whitespace:
		return whitespaceType(first)
	case Open:
		return openType(first)
	case Close:
		return closeType(first)
	case Symbolic:
		return symbolicType(lexeme)
	case Alphanumeric:
		return alphanumericType(lexeme)
	case String, Char, Value:
		// String and Char lexemes always refine to Float. Value lexemes
		// refine to Float too, except one that looks like a hex literal,
		// which promotes to Hex ahead of the Float default.
		if g == Value && looksHex(lexeme) {
			return TypeHex
		}
		return TypeFloat
	case HexValue:
		return TypeHex
	default:
		return TypeUnknown
	}
}

func whitespaceType(b byte) Type {
	switch b {
	case ' ':
		return TypeSpace
	case '\t':
		return TypeTab
	case '\n':
		return TypeNewline
	default:
		return TypeUnknownWhitespace
	}
}

func openType(b byte) Type {
	switch b {
	case '{':
		return TypeStartBlock
	case '(':
		return TypeStartExpression
	case '[':
		return TypeStartSubscript
	case '<':
		return TypeStartTag
	default:
		return TypeUnknown
	}
}

func closeType(b byte) Type {
	switch b {
	case '}':
		return TypeEndBlock
	case ')':
		return TypeEndExpression
	case ']':
		return TypeEndSubscript
	case '>':
		return TypeEndTag
	default:
		return TypeUnknown
	}
}

// symbolicType maps a Symbolic lexeme to its operator/punctuation Type.
// Lookahead is at most the lexeme's second byte; lexemes longer than two
// bytes (e.g. a run of "..." accreted by Accepts(Symbolic, ...)) still
// classify off the first one or two characters.
func symbolicType(lexeme []byte) Type {
	first := lexeme[0]
	var second byte
	if len(lexeme) > 1 {
		second = lexeme[1]
	}
	switch first {
	case '!':
		if second == '=' {
			return TypeInfixOp
		}
		return TypePrefixOp
	case '%':
		if second == '=' {
			return TypeAssignmentOp
		}
		return TypeInfixOp
	case '^':
		if second == '=' {
			return TypeAssignmentOp
		}
		return TypeInfixOp
	case '&':
		if second == '&' {
			return TypeInfixOp
		}
		if second == '=' {
			return TypeAssignmentOp
		}
		return TypeInfixOp
	case '*':
		if second == '=' {
			return TypeAssignmentOp
		}
		return TypeInfixOp
	case '-':
		if second == '-' {
			return TypePrePostfixOp
		}
		if second == '=' {
			return TypeAssignmentOp
		}
		return TypeInfixOp
	case '+':
		if second == '+' {
			return TypePrePostfixOp
		}
		if second == '=' {
			return TypeAssignmentOp
		}
		return TypeInfixOp
	case '=':
		if second == '=' {
			return TypeInfixOp
		}
		return TypeAssignmentOp
	case '/':
		if second == '/' {
			return TypeLineComment
		}
		if second == '*' {
			return TypeComment
		}
		if second == '=' {
			return TypeAssignmentOp
		}
		return TypeInfixOp
	case ':':
		return TypeOperator
	case ';':
		return TypeStop
	case '<', '>':
		// ByteToGroup routes '<' to Open and '>' to Close before a lexeme
		// ever reaches here, so these two arms are unreachable in
		// practice. Kept rather than pruned, for symmetry with the rest
		// of this table.
		return TypeInfixOp
	case '@', '#', '$':
		return TypeSymbol
	default:
		return TypeSymbol
	}
}

func alphanumericType(lexeme []byte) Type {
	if typ, ok := keywordTypes[string(lexeme)]; ok {
		return typ
	}
	return TypeWord
}

// looksHex reports whether a Value-group lexeme is a hex literal: a
// leading "0x" or "0X" prefix. Value tokens without that prefix keep the
// Float classification; ones with it promote to Hex.
func looksHex(lexeme []byte) bool {
	return len(lexeme) >= 2 && lexeme[0] == '0' && (lexeme[1] == 'x' || lexeme[1] == 'X')
}
