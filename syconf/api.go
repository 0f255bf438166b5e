package syconf

// ParseString parses and evaluates text as a standalone configuration
// document. A relative `import` inside it fails with a DomainError, since a
// string source has no file path to resolve the import against (see
// import.go's resolveImport); an absolute import path still works.
func ParseString(text string) (Value, error) {
	return parseAndEval(NewStringSource(text))
}

// ParseFile reads, parses, and evaluates the configuration document at
// path. Relative imports inside it resolve against path's directory.
func ParseFile(path string) (Value, error) {
	data, err := readSourceFile(path)
	if err != nil {
		return Value{}, err
	}
	return parseAndEval(NewFileSource(path, data))
}

func parseAndEval(src *Source) (Value, error) {
	var result Value
	if err := recoverErr(func() {
		expr, parseErr := parse(src)
		if parseErr != nil {
			panic(parseErr)
		}
		compiled := newCompiler(src).compile(newRootContext(), expr)
		result = eval(compiled)
	}); err != nil {
		return Value{}, err
	}
	return result, nil
}
