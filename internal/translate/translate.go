package translate

// Translator renders a display string in a target language. It is
// purely cosmetic: implementations must return the input unchanged on
// any failure, and the result never affects pricing or the ledger.
type Translator interface {
	Translate(text, lang string) string
}

// Noop passes every string through untranslated.
type Noop struct{}

// Translate returns text unchanged
func (Noop) Translate(text, lang string) string { return text }
