package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchItemTitle(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		title string
		ok    bool
	}{
		{"simple item", "Erro 1 – Falta de escuta", "Falta de escuta", true},
		{"double digit", "Erro 12 – Outro título", "Outro título", true},
		{"hyphen instead of en-dash", "Erro 1 - Falta de escuta", "", false},
		{"prefix not at line start", "Veja o Erro 1 – algo", "", false},
		{"missing number", "Erro – sem número", "", false},
		{"wrong prefix", "Acerto 1 – título", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, ok := matchItemTitle(errorItemPattern, tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.title, title)
		})
	}
}

func TestExtractTip(t *testing.T) {
	tip, ok := extractTip("Dica: fale mais pausadamente")
	assert.True(t, ok)
	assert.Equal(t, "fale mais pausadamente", tip)

	tip, ok = extractTip("DICA:   sem espaços extras  ")
	assert.True(t, ok)
	assert.Equal(t, "sem espaços extras", tip)

	_, ok = extractTip("uma dica: não é prefixo")
	assert.False(t, ok)

	_, ok = extractTip("Dic")
	assert.False(t, ok)
}

func TestIsPointPlaceholder(t *testing.T) {
	assert.True(t, isPointPlaceholder("Nenhum ponto positivo destacado."))
	assert.True(t, isPointPlaceholder("Performance excelente, sem pontos de atenção críticos."))
	assert.False(t, isPointPlaceholder("Nenhum ponto positivo destacado"))
	assert.False(t, isPointPlaceholder("texto qualquer"))
}

func TestLastFloatToken(t *testing.T) {
	v := lastFloatToken("Acolhimento ⭐⭐⭐⭐ 4.5")
	require.NotNil(t, v)
	assert.Equal(t, 4.5, *v)

	v = lastFloatToken("Clareza 0.0")
	require.NotNil(t, v)
	assert.Equal(t, 0.0, *v)

	assert.Nil(t, lastFloatToken("Acolhimento excelente"))
	assert.Nil(t, lastFloatToken(""))
	assert.Nil(t, lastFloatToken("   "))
}

func TestSplitDevelopmentNote(t *testing.T) {
	summary, note := splitDevelopmentNote(
		"Bom começo. Você precisa melhorar o fechamento. Continue treinando para evoluir.")
	assert.Equal(t, "Bom começo.", summary)
	assert.Equal(t, "Você precisa melhorar o fechamento. Continue treinando para evoluir.", note)

	summary, note = splitDevelopmentNote("Bom começo. Você precisa melhorar o fechamento.")
	assert.Equal(t, "Bom começo.", summary)
	assert.Equal(t, "Você precisa melhorar o fechamento.", note)

	summary, note = splitDevelopmentNote("Resumo sem nota de desenvolvimento.")
	assert.Equal(t, "Resumo sem nota de desenvolvimento.", summary)
	assert.Empty(t, note)
}

func TestSplitLabel(t *testing.T) {
	key, value, ok := splitLabel("Nome: Mariana Souza")
	assert.True(t, ok)
	assert.Equal(t, "nome", key)
	assert.Equal(t, "Mariana Souza", value)

	// Only the first colon splits; later colons stay in the value.
	_, value, ok = splitLabel("Situação de vida: trabalha das 8h às 18h: sem pausa")
	assert.True(t, ok)
	assert.Equal(t, "trabalha das 8h às 18h: sem pausa", value)

	_, _, ok = splitLabel("linha sem rótulo")
	assert.False(t, ok)
}
