package starlang

// Tokenize scans the whole source eagerly. The EOF sentinel terminates the
// scan but is not included in the result. Any lexical failure discards the
// tokens scanned so far.
func Tokenize(src *Source) ([]*Token, error) {
	tokenizer := NewTokenizer(src)
	var tokens []*Token
	for {
		token, err := tokenizer.Current()
		if err != nil {
			return nil, err
		}
		if token.Kind == TokenEOF {
			break
		}
		tokens = append(tokens, token)
		tokenizer.Consume()
	}
	return tokens, nil
}

func TokenizeString(content string) ([]*Token, error) {
	return Tokenize(NewSource("<input>", content))
}
