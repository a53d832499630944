package ast

import "testing"

func TestBuilderIdOnVarTarget(t *testing.T) {
	b := NewBuilder(8)
	i32 := b.BasicType(TI32)
	v := b.Var("x", i32, VarOpts{})
	id := b.Id(v)
	if id.Id.Name != "x" {
		t.Errorf("Id.Name = %q, want %q", id.Id.Name, "x")
	}
	if id.Id.Target != v {
		t.Error("Id.Target should point back at the Var node")
	}
	if id.Type != i32 {
		t.Error("Id should inherit its target's type")
	}
	if id.Flags&FlagRValue == 0 {
		t.Error("Id should be an rvalue")
	}
}

func TestBuilderIdOnFunTarget(t *testing.T) {
	b := NewBuilder(8)
	ft := b.FunType(nil)
	fn := b.Fun("helper", ft, nil, b.Block())
	id := b.Id(fn)
	if id.Id.Name != "helper" {
		t.Errorf("Id.Name = %q, want %q", id.Id.Name, "helper")
	}
	if id.Id.Target != fn {
		t.Error("Id.Target should point back at the Fun node")
	}
}

func TestBuilderBlockTypeIsLastExprsType(t *testing.T) {
	b := NewBuilder(8)
	i32 := b.BasicType(TI32)
	lit := b.IntLit(i32, 1)
	blk := b.Block(b.Return(nil), lit)
	if blk.Type != i32 {
		t.Error("Block.Type should be its last expression's type")
	}
}

func TestBuilderEmptyBlockHasNoType(t *testing.T) {
	b := NewBuilder(8)
	blk := b.Block()
	if blk.Type != nil {
		t.Error("an empty Block should have a nil Type")
	}
}

func TestBuilderFunCapturesResultFromFunType(t *testing.T) {
	b := NewBuilder(8)
	i32 := b.BasicType(TI32)
	ft := b.FunType(i32)
	fn := b.Fun("f", ft, nil, b.Block(b.Return(b.IntLit(i32, 0))))
	if fn.Fun.Result != i32 {
		t.Error("Fun.Result should come from the FunType's Result")
	}
}

func TestBuilderIfAsRValueSetsFlag(t *testing.T) {
	b := NewBuilder(8)
	boolT := b.BasicType(TBool)
	i32 := b.BasicType(TI32)
	cond := b.BoolLit(boolT, true)

	rval := b.If(i32, cond, b.Block(b.IntLit(i32, 1)), b.Block(b.IntLit(i32, 2)), true)
	if rval.Flags&FlagRValue == 0 {
		t.Error("asRValue=true should set FlagRValue")
	}

	stmt := b.If(nil, cond, b.Block(), nil, false)
	if stmt.Flags&FlagRValue != 0 {
		t.Error("asRValue=false should not set FlagRValue")
	}
}

func TestBuilderVarOptsSetFlags(t *testing.T) {
	b := NewBuilder(8)
	i32 := b.BasicType(TI32)
	v := b.Var("c", i32, VarOpts{Const: true, Param: true})
	if v.Flags&FlagConst == 0 {
		t.Error("expected FlagConst")
	}
	if v.Flags&FlagParam == 0 {
		t.Error("expected FlagParam")
	}
}
