package compiler

import (
	"bytes"
	"fmt"
	"reflect"
	"regexp"
	"testing"

	"github.com/renstrom/dedent"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/eb08a167/ufpeg/expr"
	"github.com/eb08a167/ufpeg/inst"
)

var reLineStart = regexp.MustCompile(`(?m)^`)

func diffText(want, got string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	pretty := dmp.DiffPrettyText(diffs)
	return reLineStart.ReplaceAllLiteralString(pretty, "\t")
}

func disassemble(prog inst.Program) string {
	var buf bytes.Buffer
	for i, in := range prog {
		fmt.Fprintf(&buf, "%03d %s\n", i, in)
	}
	return buf.String()
}

func grammar(rules ...expr.RuleDefinition) expr.Grammar {
	return expr.Grammar{Rules: rules}
}

func rule(name string, item expr.Expression) expr.RuleDefinition {
	return expr.RuleDefinition{Name: name, Item: item}
}

func lit(s string) expr.Expression {
	return expr.Literal{Text: []rune(s)}
}

func TestCompile_SingleLiteralRule(t *testing.T) {
	// { R = "a" }
	prog, err := Compile(grammar(rule("R", lit("a"))))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(prog) == 0 {
		t.Fatal("empty program")
	}
	if prog[0].Op != inst.Prepare {
		t.Fatalf("Program[0].Op = %v, want Prepare", prog[0].Op)
	}
	var sawMatchLiteral, sawConsume, sawRevokeSuccess bool
	for _, in := range prog {
		switch in.Op {
		case inst.MatchLiteral:
			sawMatchLiteral = true
			if string(in.Text) != "a" {
				t.Fatalf("MatchLiteral text = %q, want %q", string(in.Text), "a")
			}
		case inst.Consume:
			sawConsume = true
			if in.Name != "R" {
				t.Fatalf("Consume name = %q, want %q", in.Name, "R")
			}
		case inst.RevokeSuccess:
			sawRevokeSuccess = true
		}
	}
	if !sawMatchLiteral || !sawConsume || !sawRevokeSuccess {
		t.Fatalf("missing expected opcodes in program: %+v", prog)
	}
}

func TestCompile_SingleLiteralRuleDisassembly(t *testing.T) {
	prog, err := Compile(grammar(rule("R", lit("a"))))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	actual := disassemble(prog)
	expected := dedent.Dedent(`
		000 Prepare -> 1
		001 MatchLiteral "a" -> success=3 failure=2
		002 Expect "a" -> 4
		003 Consume "R" -> 5
		004 Discard -> 6
		005 RevokeSuccess
		006 RevokeFailure
	`)[1:]
	if actual != expected {
		t.Fatalf("wrong disassembly:\n%s", diffText(expected, actual))
	}
}

func TestCompile_IsPure(t *testing.T) {
	// Compiling the same tree twice must yield identical offset sequences.
	tree := grammar(rule("R", expr.Choice{Items: []expr.Expression{lit("a"), lit("b")}}))
	p1, err := Compile(tree)
	if err != nil {
		t.Fatalf("Compile (1st): %v", err)
	}
	p2, err := Compile(tree)
	if err != nil {
		t.Fatalf("Compile (2nd): %v", err)
	}
	if len(p1) != len(p2) {
		t.Fatalf("program lengths differ: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if !reflect.DeepEqual(p1[i], p2[i]) {
			t.Fatalf("instruction %d differs: %+v vs %+v", i, p1[i], p2[i])
		}
	}
}

func TestCompile_EmptySequenceIsMalformed(t *testing.T) {
	_, err := Compile(grammar(rule("R", expr.Sequence{})))
	if err == nil {
		t.Fatal("expected error for empty Sequence")
	}
	cerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error is %T, want *Error", err)
	}
	if cerr.Kind != MalformedGrammar {
		t.Fatalf("Kind = %v, want MalformedGrammar", cerr.Kind)
	}
}

func TestCompile_InvalidRangeIsMalformed(t *testing.T) {
	_, err := Compile(grammar(rule("R", expr.Range{Min: 'z', Max: 'a'})))
	if err == nil {
		t.Fatal("expected error for invalid Range")
	}
	if cerr, ok := err.(*Error); !ok || cerr.Kind != MalformedGrammar {
		t.Fatalf("err = %v, want MalformedGrammar", err)
	}
}

func TestCompile_EmptyChoiceIsJump(t *testing.T) {
	prog, err := Compile(grammar(rule("R", expr.Choice{})))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var sawJump bool
	for _, in := range prog {
		if in.Op == inst.Jump {
			sawJump = true
		}
	}
	if !sawJump {
		t.Fatalf("empty Choice did not lower to a Jump: %+v", prog)
	}
}

func TestCompile_SelfRecursiveRule(t *testing.T) {
	// { R = "(" R ")" | "x" }
	inner := expr.Choice{Items: []expr.Expression{
		expr.Sequence{Items: []expr.Expression{lit("("), expr.RuleReference{Name: "R"}, lit(")")}},
		lit("x"),
	}}
	prog, err := Compile(grammar(rule("R", inner)))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var sawInvoke bool
	for i, in := range prog {
		if in.Op == inst.Invoke {
			sawInvoke = true
			if in.Target != 0 {
				t.Fatalf("recursive Invoke at %d targets %d, want 0 (R's own entry)", i, in.Target)
			}
		}
	}
	if !sawInvoke {
		t.Fatalf("expected a self-recursive Invoke, got: %+v", prog)
	}
}

func TestCompile_UndefinedRuleReferenceIsInternalError(t *testing.T) {
	_, err := Compile(grammar(rule("R", expr.RuleReference{Name: "Missing"})))
	if err == nil {
		t.Fatal("expected error for reference to an undefined rule")
	}
	if cerr, ok := err.(*Error); !ok || cerr.Kind != InternalCompilerError {
		t.Fatalf("err = %v, want InternalCompilerError", err)
	}
}

func TestCompile_MultiRuleGrammarEntryIsFirstRule(t *testing.T) {
	prog, err := Compile(grammar(
		rule("R", expr.RuleReference{Name: "S"}),
		rule("S", lit("z")),
	))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if prog[0].Op != inst.Prepare {
		t.Fatalf("Program[0].Op = %v, want Prepare", prog[0].Op)
	}
	// R's body is just an Invoke into S, which must not be offset 0.
	var invokeTarget = -1
	for _, in := range prog {
		if in.Op == inst.Invoke {
			invokeTarget = in.Target
		}
	}
	if invokeTarget == 0 {
		t.Fatalf("S aliased to R's entry offset 0, program: %+v", prog)
	}
}
