package condition

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ardnew/elcond/lang/simplify"
)

func node(variable string, op Operator, value *string, class Class, vt ValueType) Node {
	return Node{Variable: variable, Operator: op, Value: value, Class: class, ValueType: vt}
}

func sampleForm() Form {
	v := Value

	return Form{
		{
			node("string1", OpEQ, v("helloworld"), ClassString, Fixed),
			node("string1", OpEQ, nil, ClassString, Fixed),
			node("string1", OpNE, nil, ClassString, Fixed),
			node("string1", OpEQ, v("varhelloworld"), ClassString, Param),
			node("string1", OpGT, v("objectparam.string_var1"), ClassString, ObjectParam),
		},
		{
			node("number2", OpGT, v("1"), ClassNumber, Fixed),
			node("number2", OpEQ, v("6.0"), ClassNumber, Fixed),
			node("number2", OpLT, v("7.001"), ClassNumber, Fixed),
			node("number2", OpGE, v("6"), ClassNumber, Fixed),
			node("number2", OpLE, v("6.000"), ClassNumber, Fixed),
			node("number2", OpNE, v("-10.00010000"), ClassNumber, Fixed),
			node("number2", OpEQ, nil, ClassNumber, Fixed),
			node("number2", OpNE, nil, ClassNumber, Fixed),
			node("number2", OpEQ, v("varnumber"), ClassNumber, Param),
			node("number2", OpEQ, v("objectparam.num_var2"), ClassNumber, ObjectParam),
		},
		{
			node("date3", OpNE, nil, ClassDate, Fixed),
			node("date3", OpEQ, nil, ClassDate, Fixed),
			node("date3", OpEQ, v("2021-08-11"), ClassDate, Fixed),
			node("date3", OpLT, v("2022-01-01"), ClassDate, Fixed),
			node("date3", OpGT, v("2021-01-01"), ClassDate, Fixed),
			node("date3", OpEQ, v("vardate3"), ClassDate, Param),
			node("date3", OpEQ, v("objectparam.date_var3"), ClassDate, ObjectParam),
		},
		{
			node("bool4", OpEQ, v("true"), ClassBool, Fixed),
			node("bool4", OpEQ, v("false"), ClassBool, Fixed),
			node("bool4", OpEQ, v("varbool4"), ClassBool, Param),
			node("bool4", OpEQ, v("objectparam.bool_var4"), ClassBool, ObjectParam),
		},
	}
}

var sampleExpression = "${(" + strings.Join([]string{
	"string1=='helloworld'",
	"string1==null",
	"string1!=null",
	"string1==varhelloworld",
	"string1>objectparam.string_var1",
}, " && ") + ") || (" + strings.Join([]string{
	"number2>1",
	"number2==6",
	"number2<7.001",
	"number2>=6",
	"number2<=6",
	"number2!=-10.0001",
	"number2==null",
	"number2!=null",
	"number2==varnumber",
	"number2==objectparam.num_var2",
}, " && ") + ") || (" + strings.Join([]string{
	"date3!=null",
	"date3==null",
	"date3=='2021-08-11'",
	"date3<'2022-01-01'",
	"date3>'2021-01-01'",
	"date3==vardate3",
	"date3==objectparam.date_var3",
}, " && ") + ") || (" + strings.Join([]string{
	"bool4==true",
	"bool4==false",
	"bool4==varbool4",
	"bool4==objectparam.bool_var4",
}, " && ") + ")}"

func TestGenerate(t *testing.T) {
	got, err := Generate(sampleForm())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got != sampleExpression {
		t.Errorf("Generate:\n got %s\nwant %s", got, sampleExpression)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want error
	}{
		{"bad number", node("n", OpEQ, Value("abc"), ClassNumber, Fixed), ErrInvalidValue},
		{"bad date", node("d", OpEQ, Value("2021/08/11"), ClassDate, Fixed), ErrInvalidValue},
		{"unknown operator", node("x", OpUnknown, Value("1"), ClassNumber, Fixed), ErrUnknownOperator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(Form{{tt.node}}); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSplitRoundTrip(t *testing.T) {
	form := Split(sampleExpression)

	if len(form) != 4 {
		t.Fatalf("got %d groups, want 4", len(form))
	}

	got, err := Generate(form)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got != sampleExpression {
		t.Errorf("round trip:\n got %s\nwant %s", got, sampleExpression)
	}
}

func TestSplitClassify(t *testing.T) {
	form := Split("${(a<=1.50 && b=='x' && c=='2021-8-1' && d==null && e!=true && f>obj.g && h>=p)}")

	want := []Node{
		node("a", OpLE, Value("1.5"), ClassNumber, Fixed),
		node("b", OpEQ, Value("x"), ClassString, Fixed),
		node("c", OpEQ, Value("2021-8-1"), ClassDate, Fixed),
		node("d", OpEQ, nil, ClassUnknown, Fixed),
		node("e", OpNE, Value("true"), ClassBool, Fixed),
		node("f", OpGT, Value("obj.g"), ClassUnknown, ObjectParam),
		node("h", OpGE, Value("p"), ClassUnknown, Param),
	}

	if len(form) != 1 || !reflect.DeepEqual(form[0], want) {
		t.Errorf("Split:\n got %+v\nwant %+v", form, want)
	}
}

func TestParseTreeRoundTrip(t *testing.T) {
	form, err := ParseTree(context.Background(), sampleExpression)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}

	got, err := Generate(form)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got != sampleExpression {
		t.Errorf("round trip:\n got %s\nwant %s", got, sampleExpression)
	}

	if !reflect.DeepEqual(form, Split(sampleExpression)) {
		t.Error("tree extraction and split parse disagree")
	}
}

func TestParseTreeCanonical(t *testing.T) {
	src := "${(char1==person.name && char1=='helloworld' && char1!=null) || " +
		"(number1>1.00100 && number1==6.00 && number1<=6.0000) || " +
		"(bool1==true && time1<'2022-01-01')}"

	form, err := ParseTree(context.Background(), src)
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}

	tests := []struct {
		group, index int
		want         Node
	}{
		{0, 0, node("char1", OpEQ, Value("person.name"), ClassUnknown, ObjectParam)},
		{0, 1, node("char1", OpEQ, Value("helloworld"), ClassString, Fixed)},
		{0, 2, node("char1", OpNE, nil, ClassUnknown, Fixed)},
		{1, 0, node("number1", OpGT, Value("1.001"), ClassNumber, Fixed)},
		{1, 1, node("number1", OpEQ, Value("6"), ClassNumber, Fixed)},
		{1, 2, node("number1", OpLE, Value("6"), ClassNumber, Fixed)},
		{2, 0, node("bool1", OpEQ, Value("true"), ClassBool, Fixed)},
		{2, 1, node("time1", OpLT, Value("2022-01-01"), ClassDate, Fixed)},
	}

	for _, tt := range tests {
		if got := form[tt.group][tt.index]; !reflect.DeepEqual(got, tt.want) {
			t.Errorf("form[%d][%d] = %+v, want %+v", tt.group, tt.index, got, tt.want)
		}
	}
}

func TestFromTreeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"${a}", ErrNotCondition},
		{"${a + b}", ErrUnknownOperator},
		{"${a == 1 || b}", ErrNotCondition},
		{"${a == f(x)}", ErrNotCondition},
		{"${(a == 1) == b}", ErrNotCondition},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if _, err := ParseTree(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := ParseTree(context.Background(), "${a}")
	if !errors.Is(err, simplify.ErrNotBinary) {
		t.Errorf("err = %v, want wrapped ErrNotBinary", err)
	}
}

func TestOperators(t *testing.T) {
	for op := OpLE; op < OpUnknown; op++ {
		if got := FindOperator(op.String()); got != op {
			t.Errorf("FindOperator(%q) = %s", op.String(), got.Name())
		}
	}

	if got := FindOperator("="); got != OpUnknown {
		t.Errorf("FindOperator(=) = %s, want UNKNOWN", got.Name())
	}

	var op Operator
	if err := op.UnmarshalText([]byte("==")); err != nil || op != OpEQ {
		t.Errorf("UnmarshalText(==) = %s, %v", op.Name(), err)
	}

	if err := op.UnmarshalText([]byte("GE")); err != nil || op != OpGE {
		t.Errorf("UnmarshalText(GE) = %s, %v", op.Name(), err)
	}
}

func TestParseTreeObjectVariable(t *testing.T) {
	form, err := ParseTree(context.Background(), "${person.age >= 18}")
	if err != nil {
		t.Fatalf("ParseTree: %v", err)
	}

	want := Form{{node("person.age", OpGE, Value("18"), ClassNumber, Fixed)}}
	if !reflect.DeepEqual(form, want) {
		t.Errorf("ParseTree = %+v, want %+v", form, want)
	}
}
