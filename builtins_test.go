// builtins_test.go
package yalispy

import "testing"

// --- arithmetic -------------------------------------------------------------

func Test_Arith_Folds(t *testing.T) {
	wantInt(t, evalSrc(t, "(+ 1 2 3)"), 6)
	wantInt(t, evalSrc(t, "(- 10 1 2)"), 7)
	wantInt(t, evalSrc(t, "(* 2 3 4)"), 24)
	// The fold starts from the first argument, not an identity element.
	wantInt(t, evalSrc(t, "(+ 5)"), 5)
	wantInt(t, evalSrc(t, "(- 5)"), 5)
}

func Test_Arith_NoNegativeLiterals(t *testing.T) {
	// "-5" lexes as the operator '-' followed by 5; negation is (- 0 5).
	wantInt(t, evalSrc(t, "(- 0 5)"), -5)
}

func Test_Arith_IntStaysInt_FloatPromotes(t *testing.T) {
	wantInt(t, evalSrc(t, "(+ 1 2)"), 3)
	wantNum(t, evalSrc(t, "(+ 1 1e1)"), 11)
	wantNum(t, evalSrc(t, "(* 2 (/ 3 1))"), 6)
}

func Test_Div_AlwaysFloat(t *testing.T) {
	wantNum(t, evalSrc(t, "(/ 10 4)"), 2.5)
	// Even an exact integer quotient is a float: no silent truncation.
	wantNum(t, evalSrc(t, "(/ 8 2)"), 4)
	wantNum(t, evalSrc(t, "(/ 100 5 2)"), 10)
}

func Test_Div_ByZero(t *testing.T) {
	if err := evalErr(t, "(/ 1 0)"); !IsDivisionByZero(err) {
		t.Fatalf("want division-by-zero error, got %v", err)
	}
	if err := evalErr(t, "(/ 1 2 0)"); !IsDivisionByZero(err) {
		t.Fatalf("want division-by-zero error, got %v", err)
	}
}

func Test_Arith_ZeroArgs(t *testing.T) {
	for _, src := range []string{"(+)", "(-)", "(*)", "(/)"} {
		if err := evalErr(t, src); !IsArityMismatch(err) {
			t.Fatalf("%s: want arity-mismatch error, got %v", src, err)
		}
	}
}

func Test_Arith_TypeMismatch(t *testing.T) {
	if err := evalErr(t, "(+ 1 true)"); !IsTypeMismatch(err) {
		t.Fatalf("want type-mismatch error, got %v", err)
	}
	if err := evalErr(t, "(* (list 1) 2)"); !IsTypeMismatch(err) {
		t.Fatalf("want type-mismatch error, got %v", err)
	}
}

// --- lists ------------------------------------------------------------------

func Test_List_Construction(t *testing.T) {
	wantIntList(t, evalSrc(t, "(list 1 2 3)"), []int64{1, 2, 3})
	wantIntList(t, evalSrc(t, "(list)"), nil)
}

func Test_List_Nested(t *testing.T) {
	v := evalSrc(t, "(list 1 (list 2 3))")
	xs := v.Data.([]Value)
	wantInt(t, xs[0], 1)
	wantIntList(t, xs[1], []int64{2, 3})
}

func Test_First(t *testing.T) {
	wantInt(t, evalSrc(t, "(first (list 1 2 3))"), 1)
	if err := evalErr(t, "(first (list))"); !IsEmptyList(err) {
		t.Fatalf("want empty-list error, got %v", err)
	}
	if err := evalErr(t, "(first 5)"); !IsTypeMismatch(err) {
		t.Fatalf("want type-mismatch error, got %v", err)
	}
	if err := evalErr(t, "(first (list 1) (list 2))"); !IsArityMismatch(err) {
		t.Fatalf("want arity-mismatch error, got %v", err)
	}
}

func Test_Rest(t *testing.T) {
	wantIntList(t, evalSrc(t, "(rest (list 1 2 3))"), []int64{2, 3})
	wantIntList(t, evalSrc(t, "(rest (list 1))"), nil)
	wantIntList(t, evalSrc(t, "(rest (list))"), nil)
	if err := evalErr(t, "(rest true)"); !IsTypeMismatch(err) {
		t.Fatalf("want type-mismatch error, got %v", err)
	}
}

// --- comparisons ------------------------------------------------------------

func Test_Compare_LessGreater(t *testing.T) {
	wantBool(t, evalSrc(t, "(< 1 2)"), true)
	wantBool(t, evalSrc(t, "(< 2 1)"), false)
	wantBool(t, evalSrc(t, "(> 2 1)"), true)
	wantBool(t, evalSrc(t, "(> 1 2)"), false)
	// Cross-type comparison is numeric.
	wantBool(t, evalSrc(t, "(< 1 (/ 3 2))"), true)
}

func Test_Compare_StrictlyBinary(t *testing.T) {
	for _, src := range []string{"(< 1 2 3)", "(> 1)", "(= 1)", "(= 1 2 3)"} {
		if err := evalErr(t, src); !IsArityMismatch(err) {
			t.Fatalf("%s: want arity-mismatch error, got %v", src, err)
		}
	}
}

func Test_Compare_TypeMismatch(t *testing.T) {
	if err := evalErr(t, "(< true 1)"); !IsTypeMismatch(err) {
		t.Fatalf("want type-mismatch error, got %v", err)
	}
}

func Test_Equals(t *testing.T) {
	wantBool(t, evalSrc(t, "(= 2 (+ 1 1))"), true)
	wantBool(t, evalSrc(t, "(= 1 2)"), false)
	// Numeric equality crosses the int/float boundary.
	wantBool(t, evalSrc(t, "(= 1 (/ 2 2))"), true)
	wantBool(t, evalSrc(t, "(= true true)"), true)
	wantBool(t, evalSrc(t, "(= true 1)"), false)
	wantBool(t, evalSrc(t, "(= (list 1 2) (list 1 2))"), true)
	wantBool(t, evalSrc(t, "(= (list 1 2) (list 1 3))"), false)
	wantBool(t, evalSrc(t, "(= (list) (list))"), true)
}

// --- constants --------------------------------------------------------------

func Test_BooleanConstantsAreNotProcedures(t *testing.T) {
	if err := evalErr(t, "(true 1)"); !IsTypeMismatch(err) {
		t.Fatalf("want type-mismatch error, got %v", err)
	}
}
