package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"estoquebot/internal/command"
)

// Execute dispatches a parsed command to the matching operation and
// composes the confirmation text sent back to the user. Validation and
// lookup failures come back as typed errors for the orchestrator to phrase.
func (s *Store) Execute(ctx context.Context, cmd *command.Command) (string, error) {
	switch cmd.Operation {
	case command.OpInsert:
		return s.executeInsert(ctx, cmd)
	case command.OpUpdate:
		n, err := s.GenericUpdate(ctx, cmd.Table, cmd.Fields, cmd.Where)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d registro(s) atualizado(s) em %s.", n, cmd.Table), nil
	case command.OpDelete:
		n, err := s.GenericDelete(ctx, cmd.Table, cmd.Where)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d registro(s) removido(s) de %s.", n, cmd.Table), nil
	case command.OpSelect:
		res, err := s.GenericSelect(ctx, cmd.Table, cmd.Fields, cmd.Where)
		if err != nil {
			return "", err
		}
		return formatSelect(cmd.Table, res), nil
	default:
		return "", fmt.Errorf("unsupported operation %q", cmd.Operation)
	}
}

func (s *Store) executeInsert(ctx context.Context, cmd *command.Command) (string, error) {
	switch cmd.Table {
	case "patients":
		id, err := s.InsertPatient(ctx, cmd.Fields)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Paciente cadastrado com id %d.", id), nil
	case "transactions":
		// Rewrite the free-text product mention with the canonical catalog
		// name before the movement is recorded.
		brand := command.StringField(cmd.Fields, "brand", "marca")
		if desc := command.StringField(cmd.Fields, "product_name", "produto"); desc != "" {
			if name, ok := s.ResolveProductName(ctx, brand, desc); ok {
				cmd.Fields["product_name"] = name
			}
		}
		res, err := s.InsertTransaction(ctx, cmd.Fields)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Transação %d registrada. Estoque atual de %s: %d unidade(s).",
			res.ID, res.ProductName, res.Quantity), nil
	default:
		return "", fmt.Errorf("insert into %q is not supported", cmd.Table)
	}
}

func formatSelect(table string, res *SelectResult) string {
	if res.Aggregate != nil {
		return fmt.Sprintf("Resultado: %g", *res.Aggregate)
	}
	if len(res.Rows) == 0 {
		return fmt.Sprintf("Nenhum registro encontrado em %s.", table)
	}

	var b strings.Builder
	if res.Truncated {
		fmt.Fprintf(&b, "Mostrando os primeiros %d registro(s) de %s:\n", len(res.Rows), table)
	} else {
		fmt.Fprintf(&b, "%d registro(s) em %s:\n", len(res.Rows), table)
	}
	for _, row := range res.Rows {
		cols := make([]string, 0, len(row))
		for k := range row {
			cols = append(cols, k)
		}
		sort.Strings(cols)
		parts := make([]string, 0, len(cols))
		for _, k := range cols {
			if row[k] == nil {
				continue
			}
			parts = append(parts, fmt.Sprintf("%s=%v", k, row[k]))
		}
		b.WriteString("- " + strings.Join(parts, ", ") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
