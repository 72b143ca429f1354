package command

import "regexp"

// fixups are literal substitutions for names the model keeps getting wrong:
// Portuguese collection aliases and the misspelled currency field. Each
// replacement must not contain its own pattern, so applying Normalize twice
// yields the same text as applying it once.
var fixups = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`(?i)pacientes`), "patients"},
	{regexp.MustCompile(`(?i)transacoes`), "transactions"},
	{regexp.MustCompile(`(?i)transações`), "transactions"},
	{regexp.MustCompile(`(?i)estoque`), "inventory"},
	{regexp.MustCompile(`(?i)produtos_oficiais`), "official_products"},
	{regexp.MustCompile(`(?i)cost_in_dolar`), "cost_in_dollar"},
	{regexp.MustCompile(`(?i)operation_kind`), "operation_type"},
}

// Normalize applies the known textual fixups to a raw command block before
// parsing. Purely textual; it never inspects structure.
func Normalize(raw string) string {
	for _, f := range fixups {
		raw = f.pattern.ReplaceAllString(raw, f.repl)
	}
	return raw
}
