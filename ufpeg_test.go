package ufpeg_test

import (
	"fmt"

	"github.com/eb08a167/ufpeg"
	"github.com/eb08a167/ufpeg/expr"
)

func lit(s string) expr.Expression {
	return expr.Literal{Text: []rune(s)}
}

// Grammar { R = "a" } on "a".
func ExampleRun_literal() {
	g := expr.Grammar{Rules: []expr.RuleDefinition{
		{Name: "R", Item: lit("a")},
	}}
	result, err := ufpeg.Run(g, []rune("a"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.Matched, result.Root.Name, result.Root.Start, result.Root.Stop)
	// Output: true R 0 1
}

// Grammar { R = "a" | "b" } on "b".
func ExampleRun_choice() {
	g := expr.Grammar{Rules: []expr.RuleDefinition{
		{Name: "R", Item: expr.Choice{Items: []expr.Expression{lit("a"), lit("b")}}},
	}}
	result, err := ufpeg.Run(g, []rune("b"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.Matched, result.Root.Start, result.Root.Stop)
	// Output: true 0 1
}

// Grammar { R = "a"* } on "aaa".
func ExampleRun_zeroOrMore() {
	g := expr.Grammar{Rules: []expr.RuleDefinition{
		{Name: "R", Item: expr.ZeroOrMore{Item: lit("a")}},
	}}
	result, err := ufpeg.Run(g, []rune("aaa"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.Matched, result.Root.Start, result.Root.Stop)
	// Output: true 0 3
}

// Grammar { R = "a" "b" } on "ac" fails at offset 1.
func ExampleRun_sequenceFailure() {
	g := expr.Grammar{Rules: []expr.RuleDefinition{
		{Name: "R", Item: expr.Sequence{Items: []expr.Expression{lit("a"), lit("b")}}},
	}}
	result, err := ufpeg.Run(g, []rune("ac"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.Matched, result.Offset)
	// Output: false 1
}

// Grammar { R = &"a" "a" } on "a": positive lookahead does not
// double-consume.
func ExampleRun_positiveLookahead() {
	g := expr.Grammar{Rules: []expr.RuleDefinition{
		{Name: "R", Item: expr.Sequence{Items: []expr.Expression{
			expr.And{Item: lit("a")},
			lit("a"),
		}}},
	}}
	result, err := ufpeg.Run(g, []rune("a"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.Matched, result.Root.Start, result.Root.Stop)
	// Output: true 0 1
}

// Grammar { R = !"a" "b" } on "b" and on "a".
func ExampleRun_negativeLookahead() {
	g := expr.Grammar{Rules: []expr.RuleDefinition{
		{Name: "R", Item: expr.Sequence{Items: []expr.Expression{
			expr.Not{Item: lit("a")},
			lit("b"),
		}}},
	}}

	onB, _ := ufpeg.Run(g, []rune("b"))
	onA, _ := ufpeg.Run(g, []rune("a"))
	fmt.Println(onB.Matched, onB.Root.Start, onB.Root.Stop)
	fmt.Println(onA.Matched, onA.Offset)
	// Output:
	// true 0 1
	// false 0
}

// Grammar { R = "(" R ")" | "x" } on "((x))": recursive descent through
// a nested tree, three levels deep.
func ExampleRun_recursive() {
	g := expr.Grammar{Rules: []expr.RuleDefinition{
		{Name: "R", Item: expr.Choice{Items: []expr.Expression{
			expr.Sequence{Items: []expr.Expression{
				lit("("), expr.RuleReference{Name: "R"}, lit(")"),
			}},
			lit("x"),
		}}},
	}}
	result, err := ufpeg.Run(g, []rune("((x))"))
	if err != nil {
		fmt.Println(err)
		return
	}
	depth := 0
	for n := &result.Root; ; {
		depth++
		if len(n.Children) == 0 {
			break
		}
		n = &n.Children[0]
	}
	fmt.Println(result.Matched, result.Root.Start, result.Root.Stop, depth)
	// Output: true 0 5 3
}
