package macro

import "testing"

func TestEnv_DefineAndLookup(t *testing.T) {
	env := NewEnv()
	env.DefineValue(ValueMacro{Name: "PI!"})
	env.DefineFunction(FunctionMacro{Name: "SQ!", Params: []string{"x"}})

	if !env.Defined("PI!") {
		t.Error("expected PI! to be defined")
	}
	if !env.Defined("SQ!") {
		t.Error("expected SQ! to be defined")
	}
	if env.Defined("NOPE!") {
		t.Error("expected NOPE! to be undefined")
	}

	f, ok := env.LookupFunction("SQ!")
	if !ok || f.Name != "SQ!" {
		t.Error("expected to find SQ! as a function macro")
	}
}

func TestEnv_Undef_RemovesBothKinds(t *testing.T) {
	env := NewEnv()
	env.DefineValue(ValueMacro{Name: "X!"})
	env.DefineFunction(FunctionMacro{Name: "X!"})

	env.Undef("X!")

	if env.Defined("X!") {
		t.Error("expected X! to be undefined after Undef")
	}
	if _, ok := env.LookupFunction("X!"); ok {
		t.Error("expected function macro X! to be removed")
	}
}

func TestEnv_Undef_LeavesOthersIntact(t *testing.T) {
	env := NewEnv()
	env.DefineValue(ValueMacro{Name: "A!"})
	env.DefineValue(ValueMacro{Name: "B!"})

	env.Undef("A!")

	if env.Defined("A!") {
		t.Error("expected A! to be removed")
	}
	if !env.Defined("B!") {
		t.Error("expected B! to remain defined")
	}
}
