package ast

// Terse builders used by tests and fixture generators.

func ID(name string) *Variable {
	return NewVariable(name)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func None() *NoneLiteral {
	return NewNoneLiteral()
}

func List(elements ...Expression) *ListLiteral {
	return NewListLiteral(elements)
}

func Tuple(elements ...Expression) *TupleLiteral {
	return NewTupleLiteral(elements)
}

func Bin(operator string, left, right Expression) *BinaryOperation {
	return NewBinaryOperation(operator, left, right)
}

func Not(operand Expression) *NotExpression {
	return NewNotExpression(operand)
}

func And(left, right Expression) *AndExpression {
	return NewAndExpression(left, right)
}

func Or(left, right Expression) *OrExpression {
	return NewOrExpression(left, right)
}

func Assign(name string, value Expression) *Assignment {
	return NewAssignment(name, value)
}

func If(condition Expression, then, els []Statement) *IfStatement {
	return NewIfStatement(condition, then, els)
}

func While(condition Expression, body ...Statement) *WhileLoop {
	return NewWhileLoop(condition, body)
}

func For(variable string, iterable Expression, body ...Statement) *ForLoop {
	return NewForLoop(variable, iterable, body)
}

func Def(name string, params []string, body ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(name, params, "", body)
}

func DefVariadic(name string, params []string, variadic string, body ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(name, params, variadic, body)
}

func Class(name string, methods ...*FunctionDefinition) *ClassDefinition {
	return NewClassDefinition(name, methods)
}

func Call(callee Expression, args ...Expression) *FunctionCall {
	return NewFunctionCall(callee, args)
}

func Attr(object Expression, attr string) *AttributeAccess {
	return NewAttributeAccess(object, attr)
}

func SetAttr(object Expression, attr string, value Expression) *AttributeAssignment {
	return NewAttributeAssignment(object, attr, value)
}

func Index(collection, index Expression) *SubscriptExpression {
	return NewSubscriptExpression(collection, index)
}

func In(element, container Expression) *InExpression {
	return NewInExpression(element, container)
}

func Ret(value Expression) *ReturnStatement {
	return NewReturnStatement(value)
}

func Brk() *BreakStatement {
	return NewBreakStatement()
}

func Cont() *ContinueStatement {
	return NewContinueStatement()
}

func Prog(body ...Statement) *Program {
	return NewProgram(body)
}

func Stmts(stmts ...Statement) []Statement {
	return stmts
}
