package ast

// NodeType tags every syntax-tree node with its construct kind.
type NodeType string

const (
	NodeProgram             NodeType = "Program"
	NodeNumberLiteral       NodeType = "NumberLiteral"
	NodeBooleanLiteral      NodeType = "BooleanLiteral"
	NodeStringLiteral       NodeType = "StringLiteral"
	NodeNoneLiteral         NodeType = "NoneLiteral"
	NodeListLiteral         NodeType = "ListLiteral"
	NodeTupleLiteral        NodeType = "TupleLiteral"
	NodeVariable            NodeType = "Variable"
	NodeBinaryOperation     NodeType = "BinaryOperation"
	NodeNotExpression       NodeType = "NotExpression"
	NodeAndExpression       NodeType = "AndExpression"
	NodeOrExpression        NodeType = "OrExpression"
	NodeAssignment          NodeType = "Assignment"
	NodeIfStatement         NodeType = "IfStatement"
	NodeWhileLoop           NodeType = "WhileLoop"
	NodeForLoop             NodeType = "ForLoop"
	NodeFunctionDefinition  NodeType = "FunctionDefinition"
	NodeClassDefinition     NodeType = "ClassDefinition"
	NodeFunctionCall        NodeType = "FunctionCall"
	NodeAttributeAccess     NodeType = "AttributeAccess"
	NodeAttributeAssignment NodeType = "AttributeAssignment"
	NodeSubscriptExpression NodeType = "SubscriptExpression"
	NodeInExpression        NodeType = "InExpression"
	NodeReturnStatement     NodeType = "ReturnStatement"
	NodeBreakStatement      NodeType = "BreakStatement"
	NodeContinueStatement   NodeType = "ContinueStatement"
)

// Node is implemented by every syntax-tree node.
type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Program

// Program is an ordered statement sequence; evaluating it yields the value
// of the last statement (None when empty).
type Program struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewProgram(body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

// Literals

type NumberLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value float64 `json:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type NoneLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
}

func NewNoneLiteral() *NoneLiteral {
	return &NoneLiteral{nodeImpl: newNodeImpl(NodeNoneLiteral)}
}

// ListLiteral elements are evaluated left to right before assembly.
type ListLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Elements []Expression `json:"elements"`
}

func NewListLiteral(elements []Expression) *ListLiteral {
	return &ListLiteral{nodeImpl: newNodeImpl(NodeListLiteral), Elements: elements}
}

type TupleLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Elements []Expression `json:"elements"`
}

func NewTupleLiteral(elements []Expression) *TupleLiteral {
	return &TupleLiteral{nodeImpl: newNodeImpl(NodeTupleLiteral), Elements: elements}
}

// Variable

type Variable struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewVariable(name string) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}

// Operators

// BinaryOperation is desugared by the evaluator into a call of a Variable
// named after the operator symbol, so operators resolve through the
// environment like any other callee.
type BinaryOperation struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryOperation(operator string, left, right Expression) *BinaryOperation {
	return &BinaryOperation{nodeImpl: newNodeImpl(NodeBinaryOperation), Operator: operator, Left: left, Right: right}
}

type NotExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operand Expression `json:"operand"`
}

func NewNotExpression(operand Expression) *NotExpression {
	return &NotExpression{nodeImpl: newNodeImpl(NodeNotExpression), Operand: operand}
}

type AndExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewAndExpression(left, right Expression) *AndExpression {
	return &AndExpression{nodeImpl: newNodeImpl(NodeAndExpression), Left: left, Right: right}
}

type OrExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewOrExpression(left, right Expression) *OrExpression {
	return &OrExpression{nodeImpl: newNodeImpl(NodeOrExpression), Left: left, Right: right}
}

// Assignment binds a name in the current frame and yields the assigned value.
type Assignment struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignment(name string, value Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Name: name, Value: value}
}

// Control flow

type IfStatement struct {
	nodeImpl
	expressionMarker
	statementMarker

	Condition Expression  `json:"condition"`
	Then      []Statement `json:"then"`
	Else      []Statement `json:"else,omitempty"`
}

func NewIfStatement(condition Expression, then, els []Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: els}
}

type WhileLoop struct {
	nodeImpl
	expressionMarker
	statementMarker

	Condition Expression  `json:"condition"`
	Body      []Statement `json:"body"`
}

func NewWhileLoop(condition Expression, body []Statement) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}

// ForLoop binds each element to Var in the enclosing frame; there is no
// per-iteration scope, so Var stays visible after the loop exits.
type ForLoop struct {
	nodeImpl
	expressionMarker
	statementMarker

	Var      string      `json:"var"`
	Iterable Expression  `json:"iterable"`
	Body     []Statement `json:"body"`
}

func NewForLoop(variable string, iterable Expression, body []Statement) *ForLoop {
	return &ForLoop{nodeImpl: newNodeImpl(NodeForLoop), Var: variable, Iterable: iterable, Body: body}
}

type ReturnStatement struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

type BreakStatement struct {
	nodeImpl
	expressionMarker
	statementMarker
}

func NewBreakStatement() *BreakStatement {
	return &BreakStatement{nodeImpl: newNodeImpl(NodeBreakStatement)}
}

type ContinueStatement struct {
	nodeImpl
	expressionMarker
	statementMarker
}

func NewContinueStatement() *ContinueStatement {
	return &ContinueStatement{nodeImpl: newNodeImpl(NodeContinueStatement)}
}

// Definitions

// FunctionDefinition declares fixed parameters and an optional variadic
// parameter collecting surplus arguments into a List.
type FunctionDefinition struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name     string      `json:"name"`
	Params   []string    `json:"params"`
	Variadic string      `json:"variadic,omitempty"`
	Body     []Statement `json:"body"`
}

func NewFunctionDefinition(name string, params []string, variadic string, body []Statement) *FunctionDefinition {
	return &FunctionDefinition{
		nodeImpl: newNodeImpl(NodeFunctionDefinition),
		Name:     name,
		Params:   params,
		Variadic: variadic,
		Body:     body,
	}
}

type ClassDefinition struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name    string                `json:"name"`
	Methods []*FunctionDefinition `json:"methods"`
}

func NewClassDefinition(name string, methods []*FunctionDefinition) *ClassDefinition {
	return &ClassDefinition{nodeImpl: newNodeImpl(NodeClassDefinition), Name: name, Methods: methods}
}

// Calls and access

type FunctionCall struct {
	nodeImpl
	expressionMarker
	statementMarker

	Callee Expression   `json:"callee"`
	Args   []Expression `json:"args"`
}

func NewFunctionCall(callee Expression, args []Expression) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Callee: callee, Args: args}
}

type AttributeAccess struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object Expression `json:"object"`
	Attr   string     `json:"attr"`
}

func NewAttributeAccess(object Expression, attr string) *AttributeAccess {
	return &AttributeAccess{nodeImpl: newNodeImpl(NodeAttributeAccess), Object: object, Attr: attr}
}

type AttributeAssignment struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object Expression `json:"object"`
	Attr   string     `json:"attr"`
	Value  Expression `json:"value"`
}

func NewAttributeAssignment(object Expression, attr string, value Expression) *AttributeAssignment {
	return &AttributeAssignment{nodeImpl: newNodeImpl(NodeAttributeAssignment), Object: object, Attr: attr, Value: value}
}

type SubscriptExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Collection Expression `json:"collection"`
	Index      Expression `json:"index"`
}

func NewSubscriptExpression(collection, index Expression) *SubscriptExpression {
	return &SubscriptExpression{nodeImpl: newNodeImpl(NodeSubscriptExpression), Collection: collection, Index: index}
}

// InExpression tests membership of Element in Container.
type InExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Element   Expression `json:"element"`
	Container Expression `json:"container"`
}

func NewInExpression(element, container Expression) *InExpression {
	return &InExpression{nodeImpl: newNodeImpl(NodeInExpression), Element: element, Container: container}
}
