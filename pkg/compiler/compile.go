package compiler

import "io"

// Compile is the package's sole entry point: it turns source text into
// assembly text written to out, and produces no other side effect. It
// returns a *SyntaxError or *SemanticError when the source is rejected;
// errors from Emit or from writing to out are returned as they are. Nothing
// is written to out until every stage, Emit included, has succeeded.
func Compile(source string, out io.Writer) error {
	tokens := Lex(source)
	debugf("lexed %d tokens", len(tokens))

	prog, err := ParseProgram(tokens, source)
	if err != nil {
		return err
	}
	debugf("parsed function %q", prog.Function.Identifier)

	if err := Resolve(prog); err != nil {
		return err
	}
	debugf("resolved %q", prog.Function.Identifier)

	fn, err := Lower(prog)
	if err != nil {
		return err
	}
	debugf("lowered %q to %d TAC instructions, %d slots", fn.Name, len(fn.Instructions), fn.VariableCount)

	asm, err := Emit(fn)
	if err != nil {
		return err
	}

	_, err = io.WriteString(out, asm)
	return err
}
