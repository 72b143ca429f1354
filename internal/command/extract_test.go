package command

import (
	"strings"
	"testing"
)

func TestExtract_FencedBlock(t *testing.T) {
	reply := "Claro, vou registrar.\n```json\n{\"operation\": \"INSERT\", \"table\": \"transactions\"}\n```\nFeito."
	got := Extract(reply)
	want := `{"operation": "INSERT", "table": "transactions"}`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtract_FenceWithoutLanguageTag(t *testing.T) {
	reply := "```\n{\"operation\": \"NONE\"}\n```"
	if got := Extract(reply); got != `{"operation": "NONE"}` {
		t.Errorf("unexpected block: %q", got)
	}
}

func TestExtract_BareJSONToken(t *testing.T) {
	reply := `Segue o comando em json {"operation": "SELECT", "table": "inventory", "where": {"brand": "1Drop"}}`
	got := Extract(reply)
	want := `{"operation": "SELECT", "table": "inventory", "where": {"brand": "1Drop"}}`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExtract_NoBlock(t *testing.T) {
	if got := Extract("Olá! Como posso ajudar?"); got != "" {
		t.Errorf("expected empty extraction, got %q", got)
	}
}

func TestExtract_UnbalancedBracesRejected(t *testing.T) {
	reply := `json {"operation": "INSERT", "fields": {"brand": "1Drop"`
	if got := Extract(reply); got != "" {
		t.Errorf("expected empty extraction for unbalanced span, got %q", got)
	}
}

func TestExtract_CaseLengthChangingRunes(t *testing.T) {
	// 'Ⱥ' grows from 2 to 3 bytes when lower-cased, so byte offsets found
	// in a lower-cased copy of the reply would not be valid in the original.
	reply := strings.Repeat("Ⱥ", 20) + `JSON {"operation": "NONE"}`
	if got := Extract(reply); got != `{"operation": "NONE"}` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtract_TokenWithoutBrace(t *testing.T) {
	if got := Extract("prefiro json a xml, sem comando aqui"); got != "" {
		t.Errorf("expected empty extraction, got %q", got)
	}
}
