package llm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vendasim/internal/domain"
	"vendasim/internal/llm"
)

func TestBuildSimulationPrompt_IncludesPersona(t *testing.T) {
	p := &domain.Persona{
		Name:          "Mariana Souza",
		Course:        "Técnico em Enfermagem",
		LifeSituation: "Trabalha em dois empregos",
		Seeks:         "Estabilidade financeira",
		Fear:          "Não conseguir conciliar estudo e trabalho",
		Behavior:      "Desconfiada e objetiva",
		Difficulty:    domain.DifficultyMedium,
	}

	prompt := llm.BuildSimulationPrompt(p)

	assert.Contains(t, prompt, "Mariana Souza")
	assert.Contains(t, prompt, "Técnico em Enfermagem")
	assert.Contains(t, prompt, "Desconfiada e objetiva")
}

func TestBuildSimulationPrompt_ReportContract(t *testing.T) {
	prompt := llm.BuildSimulationPrompt(&domain.Persona{Name: "Carlos", Difficulty: domain.DifficultyEasy})

	// Both report templates must carry the exact headings the parser matches.
	assert.Contains(t, prompt, "❌ SIMULAÇÃO ENCERRADA: VENDA NÃO REALIZADA")
	assert.Contains(t, prompt, "✅ SIMULAÇÃO ENCERRADA: VENDA REALIZADA")
	assert.Contains(t, prompt, "🚨 1. PRINCIPAIS ERROS QUE ATRAPALHARAM A VENDA")
	assert.Contains(t, prompt, "🎯 1. PRINCIPAIS ACERTOS QUE GARANTIRAM A VENDA")
	assert.Contains(t, prompt, "🔍 3. NOTAS GERAIS DO ATENDIMENTO")
	assert.Contains(t, prompt, "👤 4. PERFIL DO CLIENTE SIMULADO")
	assert.Contains(t, prompt, "🏁 7. RESUMO FINAL")
}

func TestBuildSimulationPrompt_BossNote(t *testing.T) {
	regular := llm.BuildSimulationPrompt(&domain.Persona{Name: "Ana", Difficulty: domain.DifficultyHard})
	boss := llm.BuildSimulationPrompt(&domain.Persona{Name: "Chefão", Difficulty: domain.DifficultyBoss, IsBoss: true})

	assert.False(t, strings.Contains(regular, "🏆 VOCÊ CONVENCEU O CHEFÃO"))
	assert.Contains(t, boss, "🏆 VOCÊ CONVENCEU O CHEFÃO")
}
