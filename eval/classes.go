package eval

import (
	"github.com/AgustinCB/smoked/parser"
	"github.com/AgustinCB/smoked/types"
)

// makeFunction builds a function descriptor closing over the current
// scope
func (e *Evaluator) makeFunction(stmt *parser.FunctionStmt, isInit bool) *types.Function {
	return &types.Function{
		Name:          stmt.Name,
		Params:        stmt.Params,
		Body:          stmt.Body,
		Env:           e.env,
		IsInitializer: isInit,
	}
}

// evalClassStmt evaluates a class declaration: it builds the method,
// static, getter and setter tables, verifies every claimed trait, and
// binds the class under its name. Conformance failures surface here,
// at definition time, not at first use.
func (e *Evaluator) evalClassStmt(stmt *parser.ClassStmt) types.Result {
	class := &types.Class{
		Name:          stmt.Name,
		Methods:       make(map[string]*types.Function),
		StaticMethods: make(map[string]*types.Function),
		Getters:       make(map[string]*types.Function),
		Setters:       make(map[string]*types.Function),
	}

	for _, m := range stmt.Methods {
		class.Methods[m.Name] = e.makeFunction(m, m.Name == "init")
	}
	for _, m := range stmt.StaticMethods {
		class.StaticMethods[m.Name] = e.makeFunction(m, false)
	}
	for _, m := range stmt.Getters {
		class.Getters[m.Name] = e.makeFunction(m, false)
	}
	for _, m := range stmt.Setters {
		class.Setters[m.Name] = e.makeFunction(m, false)
	}

	for _, traitName := range stmt.Traits {
		val, ok := e.env.Get(traitName)
		if !ok {
			return errAt(stmt.Pos, "Undefined variable '%s'.", traitName)
		}
		traitVal, ok := val.(types.TraitValue)
		if !ok {
			return errAt(stmt.Pos, "%s is not a trait.", traitName)
		}
		if res := checkConformance(class, traitVal.Trait, stmt.Pos); !res.IsNormal() {
			return res
		}
	}

	e.env.Define(stmt.Name, types.NewClass(class))
	return types.Ok(types.Nil)
}

// checkConformance verifies a class satisfies every signature a trait
// demands: same category, same name, same arity
func checkConformance(class *types.Class, trait *types.Trait, pos parser.Position) types.Result {
	categories := []struct {
		kind       string
		signatures []types.Signature
		table      map[string]*types.Function
	}{
		{"method", trait.Methods, class.Methods},
		{"getter", trait.Getters, class.Getters},
		{"setter", trait.Setters, class.Setters},
		{"static method", trait.StaticMethods, class.StaticMethods},
	}

	for _, cat := range categories {
		for _, sig := range cat.signatures {
			fn, ok := cat.table[sig.Name]
			if !ok {
				return errAt(pos, "Class %s does not satisfy trait %s: missing %s %s.",
					class.Name, trait.Name, cat.kind, sig.Name)
			}
			if len(fn.Params) != len(sig.Params) {
				return errAt(pos, "Class %s does not satisfy trait %s: %s %s takes %d arguments, expected %d.",
					class.Name, trait.Name, cat.kind, sig.Name, len(fn.Params), len(sig.Params))
			}
		}
	}
	return types.Ok(types.Nil)
}

// evalTraitStmt evaluates a trait declaration. Traits carry signatures
// only, so building one cannot fail.
func (e *Evaluator) evalTraitStmt(stmt *parser.TraitStmt) types.Result {
	trait := &types.Trait{
		Name:          stmt.Name,
		Methods:       stmt.Methods,
		Getters:       stmt.Getters,
		Setters:       stmt.Setters,
		StaticMethods: stmt.StaticMethods,
	}
	e.env.Define(stmt.Name, types.NewTrait(trait))
	return types.Ok(types.Nil)
}

// evalModStmt evaluates a module declaration. The body runs once in a
// child scope that becomes the module's member table; the surrounding
// scope gets a by-name reference to it. Nested modules register under
// a dotted path so same-named members of different parents stay apart.
func (e *Evaluator) evalModStmt(stmt *parser.ModStmt) types.Result {
	qualified := stmt.Name
	if e.modulePath != "" {
		qualified = e.modulePath + "." + stmt.Name
	}

	moduleEnv := NewNestedEnvironment(e.env)

	savedEnv, savedPath := e.env, e.modulePath
	e.env, e.modulePath = moduleEnv, qualified
	result := e.EvalStatements(stmt.Body)
	e.env, e.modulePath = savedEnv, savedPath

	if !result.IsNormal() {
		return result
	}

	e.modules[qualified] = moduleEnv
	e.env.Define(stmt.Name, types.NewModule(qualified))
	return types.Ok(types.Nil)
}
