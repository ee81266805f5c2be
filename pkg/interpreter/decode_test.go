package interpreter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyrite/interpreter-go/pkg/ast"
	"pyrite/interpreter-go/pkg/runtime"
)

func TestDecodeWrapsSingleStatement(t *testing.T) {
	prog, err := DecodeProgram([]byte(`{"type": "NumberLiteral", "value": 7}`))
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)
	num, ok := prog.Body[0].(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, 7.0, num.Value)
}

func TestDecodeProgramNode(t *testing.T) {
	src := `{
		"type": "Program",
		"body": [
			{"type": "Assignment", "name": "x", "value": {"type": "NumberLiteral", "value": 1}},
			{"type": "Variable", "name": "x"}
		]
	}`
	prog, err := DecodeProgram([]byte(src))
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)
	assign, ok := prog.Body[0].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"not json", `{`},
		{"unknown type", `{"type": "Mystery"}`},
		{"non-numeric number", `{"type": "NumberLiteral", "value": "x"}`},
		{"statement where expression expected", `{
			"type": "Assignment", "name": "x",
			"value": {"type": "BreakStatement"}
		}`},
		{"bad parameter list", `{
			"type": "FunctionDefinition", "name": "f",
			"params": [1], "body": []
		}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeProgram([]byte(tc.src))
			assert.Error(t, err)
		})
	}
}

// Trees decoded from JSON must evaluate identically to trees built with the
// in-process constructors.
func TestDecodeEvaluationParity(t *testing.T) {
	built := ast.Prog(
		ast.Def("fib", []string{"n"},
			ast.If(ast.Bin("<", ast.ID("n"), ast.Num(2)),
				ast.Stmts(ast.Ret(ast.ID("n"))), nil),
			ast.Ret(ast.Bin("+",
				ast.Call(ast.ID("fib"), ast.Bin("-", ast.ID("n"), ast.Num(1))),
				ast.Call(ast.ID("fib"), ast.Bin("-", ast.ID("n"), ast.Num(2))),
			)),
		),
		ast.Call(ast.ID("fib"), ast.Num(10)),
	)

	encoded, err := json.Marshal(built)
	require.NoError(t, err)
	decoded, err := DecodeProgram(encoded)
	require.NoError(t, err)

	fromBuilt, err := newTestInterpreter().EvaluateProgram(built)
	require.NoError(t, err)
	fromDecoded, err := newTestInterpreter().EvaluateProgram(decoded)
	require.NoError(t, err)

	assert.Equal(t, fromBuilt, fromDecoded)
	assert.Equal(t, 55.0, fromDecoded.(runtime.NumberValue).Val)
}

func TestDecodeRoundTripsEveryNodeKind(t *testing.T) {
	built := ast.Prog(
		ast.Assign("xs", ast.List(ast.Num(1), ast.Str("a"), ast.Bool(true), ast.None())),
		ast.Assign("pair", ast.Tuple(ast.Num(1), ast.Num(2))),
		ast.Assign("flag", ast.Or(ast.Not(ast.Bool(true)), ast.And(ast.Bool(true), ast.Bool(false)))),
		ast.If(ast.In(ast.Num(1), ast.ID("xs")),
			ast.Stmts(ast.Assign("hit", ast.Index(ast.ID("pair"), ast.Num(0)))),
			ast.Stmts(ast.Assign("hit", ast.Num(-1)))),
		ast.While(ast.Bool(false), ast.Brk()),
		ast.For("i", ast.ID("pair"), ast.Cont()),
		ast.Class("C",
			ast.Def("__init__", []string{"self"}, ast.SetAttr(ast.ID("self"), "v", ast.Num(0))),
		),
		ast.Assign("c", ast.Call(ast.ID("C"))),
		ast.DefVariadic("gather", nil, "rest", ast.Ret(ast.ID("rest"))),
		ast.Bin("+", ast.Attr(ast.ID("c"), "v"), ast.Num(1)),
	)

	encoded, err := json.Marshal(built)
	require.NoError(t, err)
	decoded, err := DecodeProgram(encoded)
	require.NoError(t, err)
	require.Equal(t, len(built.Body), len(decoded.Body))

	val, err := newTestInterpreter().EvaluateProgram(decoded)
	require.NoError(t, err)
	assert.Equal(t, runtime.NumberValue{Val: 1}, val)
}

func TestDecodeReturnWithoutValue(t *testing.T) {
	prog, err := DecodeProgram([]byte(`{"type": "ReturnStatement"}`))
	require.NoError(t, err)
	ret, ok := prog.Body[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.Nil(t, ret.Value)
}
