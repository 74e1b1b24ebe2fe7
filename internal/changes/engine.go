package changes

import (
	"fmt"
	"strings"
	"time"

	"github.com/sicat_management/internal/models"
)

// Input reúne tudo que o motor precisa para aplicar uma alteração: o tipo,
// o estado editado no formulário, os campos auxiliares que não pertencem ao
// catálogo (nova jornada e novo contrato) e o usuário responsável.
type Input struct {
	Type        ChangeType
	Edited      models.Snapshot
	NewJornada  string
	NewContract *models.NewContractData
	Responsible string
	Now         time.Time
}

// Result é o retorno de uma alteração aplicada: o estado atualizado do
// registro e a entrada de histórico a ser anexada. O motor não persiste
// nada; gravar ambos é responsabilidade do chamador.
type Result struct {
	Updated models.Snapshot
	Entry   models.ThirdPartyHistory
}

// registrationSummaryFields é a ordem de comparação usada no resumo textual
// de "Alteração de dados cadastrais".
var registrationSummaryFields = []Field{
	FieldName, FieldCPF, FieldEscolaridade, FieldGenero, FieldDataNascimento,
	FieldStatus, FieldEndereco, FieldNumero, FieldComplemento, FieldBairro,
	FieldCidade, FieldEstado, FieldUF, FieldCEP, FieldObsReferencia, FieldPais,
}

// Apply valida e aplica uma alteração sobre o estado original do terceiro.
// A validação é curto-circuito (o primeiro campo obrigatório vazio aborta) e
// nenhuma mutação acontece em caso de falha. O snapshot anexado à entrada é
// uma cópia profunda do estado ANTERIOR à alteração, sem o histórico.
func Apply(original models.Snapshot, in Input) (*Result, error) {
	updated := in.Edited.Clone()
	var previousData, currentData string

	switch in.Type {
	case TypeUnitClosure:
		if updated.DataEncerramentoAtividades == "" {
			return nil, requiredField("Data de encerramento das atividades na unidade")
		}
		previousData = "Status: " + original.Status
		updated.Status = models.StatusInativo
		currentData = fmt.Sprintf("Status: %s\nData de Encerramento: %s",
			updated.Status, updated.DataEncerramentoAtividades)

	case TypeContractEnd:
		if updated.DataEncerramentoAtividades == "" {
			return nil, requiredField("Data de encerramento das atividades na unidade")
		}
		if updated.DataEncerramentoVinculo == "" {
			return nil, requiredField("Data encerramento do vínculo com a contratada")
		}
		previousData = "Status: " + original.Status
		updated.Status = models.StatusInativo
		currentData = fmt.Sprintf("Status: %s\nEncerramento Atividades: %s\nEncerramento Vínculo: %s",
			updated.Status, updated.DataEncerramentoAtividades, updated.DataEncerramentoVinculo)

	case TypeHazardAllowance:
		if updated.RecebeInsalubridade == models.RecebeSim {
			if updated.NaturezaAdicional == "" {
				return nil, requiredField("Natureza do adicional de insalubridade ou periculosidade.")
			}
			if updated.DataInicioInsalubridade == "" {
				return nil, requiredField("Data início Insalubridade e Periculosidade.")
			}
			if updated.NaturezaAdicional == models.NaturezaTemporaria && updated.DataTerminoInsalubridade == "" {
				return nil, requiredField("Data Término insalubridade e Periculosidade.")
			}
		}
		updated.NormalizeInsalubridade()
		previousData = fmt.Sprintf("Recebe: %s\nNatureza: %s\nInício: %s",
			original.RecebeInsalubridade, orDash(original.NaturezaAdicional), orDash(original.DataInicioInsalubridade))
		currentData = fmt.Sprintf("Recebe: %s\nNatureza: %s\nInício: %s",
			updated.RecebeInsalubridade, orDash(updated.NaturezaAdicional), orDash(updated.DataInicioInsalubridade))
		if updated.NaturezaAdicional == models.NaturezaTemporaria || original.NaturezaAdicional == models.NaturezaTemporaria {
			previousData += "\nFim: " + orDash(original.DataTerminoInsalubridade)
			currentData += "\nFim: " + orDash(updated.DataTerminoInsalubridade)
		}

	case TypeRegistrationData:
		var lines []string
		for _, f := range registrationSummaryFields {
			before := Value(&original, f)
			after := Value(&updated, f)
			if before != after {
				lines = append(lines, fmt.Sprintf("%s: '%s' -> '%s'", Label(f), before, after))
			}
		}
		if len(lines) == 0 {
			return nil, ErrNoEffectiveChange
		}
		previousData = "Dados originais dos campos alterados."
		currentData = strings.Join(lines, "\n")

	case TypeWorkShift:
		if in.NewJornada == "" {
			return nil, requiredField("Nova Jornada de Trabalho")
		}
		previousData = "Jornada: " + original.JornadaTrabalho
		updated.JornadaTrabalho = in.NewJornada
		currentData = "Jornada: " + updated.JornadaTrabalho

	case TypeCompanyTransfer:
		nc := in.NewContract
		if nc == nil || len(nc.Unidades) == 0 {
			return nil, requiredField("Entidade/Unidade (Novo Contrato)")
		}
		if nc.RazaoSocial == "" {
			return nil, requiredField("Empresa (Novo Contrato)")
		}
		if nc.Cargo == "" {
			return nil, requiredField("Cargo (Novo Contrato)")
		}
		if nc.DataInicioVinculo == "" {
			return nil, requiredField("Data de início do vínculo (Novo Contrato)")
		}
		if nc.DataInicioAtividades == "" {
			return nil, requiredField("Data de início das atividades (Novo Contrato)")
		}
		if nc.JornadaTrabalho == "" {
			return nil, requiredField("Jornada de Trabalho (Novo Contrato)")
		}
		if nc.RecebeInsalubridade == models.RecebeSim {
			if nc.NaturezaAdicional == "" {
				return nil, requiredNewContractField("Natureza do adicional de insalubridade ou periculosidade.")
			}
			if nc.DataInicioInsalubridade == "" {
				return nil, requiredNewContractField("Data início Insalubridade e Periculosidade.")
			}
			if nc.NaturezaAdicional == models.NaturezaTemporaria && nc.DataTerminoInsalubridade == "" {
				return nil, requiredNewContractField("Data Término insalubridade e Periculosidade.")
			}
		}
		previousData = fmt.Sprintf("Empresa: %s\nInício Atividades: %s",
			original.RazaoSocial, original.DataInicioAtividades)
		updated.Unidades = make([]string, len(nc.Unidades))
		copy(updated.Unidades, nc.Unidades)
		updated.RazaoSocial = nc.RazaoSocial
		updated.CNPJ = nc.CNPJ
		updated.Cargo = nc.Cargo
		updated.DataInicioVinculo = nc.DataInicioVinculo
		updated.DataInicioAtividades = nc.DataInicioAtividades
		updated.JornadaTrabalho = nc.JornadaTrabalho
		updated.RecebeInsalubridade = nc.RecebeInsalubridade
		if updated.RecebeInsalubridade == "" {
			updated.RecebeInsalubridade = models.RecebeNao
		}
		updated.NaturezaAdicional = nc.NaturezaAdicional
		updated.DataInicioInsalubridade = nc.DataInicioInsalubridade
		updated.DataTerminoInsalubridade = nc.DataTerminoInsalubridade
		updated.NormalizeInsalubridade()
		currentData = fmt.Sprintf("Nova Empresa: %s\nNovo Início Atividades: %s",
			updated.RazaoSocial, updated.DataInicioAtividades)

	default:
		return nil, ErrUnknownChangeType
	}

	// A entidade é sempre rederivada das unidades, nunca aceita do cliente.
	updated.Entidade = models.DeriveEntidade(updated.Unidades)

	snapshot := original.Clone()
	entry := models.ThirdPartyHistory{
		ChangeType:           in.Type.Label(),
		PreviousData:         previousData,
		CurrentData:          currentData,
		SnapshotBeforeChange: &snapshot,
		ChangeDate:           FormatChangeDate(in.Now),
		Responsible:          responsibleOrSistema(in.Responsible),
	}

	return &Result{Updated: updated, Entry: entry}, nil
}

// NewCreationEntry monta a entrada sintética de criação: sem snapshot (não
// há estado anterior) e com os textos fixos do cadastro inicial.
func NewCreationEntry(responsible string, now time.Time) models.ThirdPartyHistory {
	return models.ThirdPartyHistory{
		ChangeType:   TypeCreation.Label(),
		PreviousData: "-",
		CurrentData:  "Cadastro inicial do colaborador",
		ChangeDate:   FormatChangeDate(now),
		Responsible:  responsibleOrSistema(responsible),
	}
}

// FormatChangeDate formata a data da alteração no padrão pt-BR (DD/MM/AAAA).
func FormatChangeDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func responsibleOrSistema(name string) string {
	if name == "" {
		return "Sistema"
	}
	return name
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
