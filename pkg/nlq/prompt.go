package nlq

import "strings"

// BuildPrompt composes the lowercase generation prompt for a question:
// the language tag, the raw question, and the serialized vocabulary,
// pipe-separated. Before lowering, every whitespace-delimited token that
// carries an uppercase character is recorded casefold(token) -> token in
// the supplementary map so that proper nouns and mixed-case literals from
// the question survive restoration.
//
// Tokens keep any punctuation that whitespace splitting leaves attached,
// so "Braund," maps from "braund,". A generated query that renders the
// same word without the trailing punctuation will not match that entry;
// the bare-token form is only present when it occurred bare in the input.
func BuildPrompt(question, tag string, vocab *Vocabulary) (string, CasefoldMap) {
	text := tag + ": " + question + " | " + vocab.serialize()

	supp := make(CasefoldMap)
	for _, token := range strings.Fields(text) {
		if folded := strings.ToLower(token); folded != token {
			supp[folded] = token
		}
	}
	return strings.ToLower(text), supp
}
