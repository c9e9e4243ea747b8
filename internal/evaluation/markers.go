package evaluation

// Section heading literals emitted by the simulation prompt contract. All
// matching against these is literal line-prefix matching; the only regexes in
// this package are the two extractors in extract.go.
const (
	HeaderSaleLost   = "❌ SIMULAÇÃO ENCERRADA: VENDA NÃO REALIZADA"
	HeaderSaleClosed = "✅ SIMULAÇÃO ENCERRADA: VENDA REALIZADA"

	// Success-only substring flagging a win against the boss persona.
	MarkerBossConvinced = "🏆 VOCÊ CONVENCEU O CHEFÃO"

	markerQuickSummaryLost   = "📉 RESUMO RÁPIDO"
	markerQuickSummaryClosed = "📈 RESUMO RÁPIDO"

	markerMainErrors    = "🚨 1. PRINCIPAIS ERROS QUE ATRAPALHARAM A VENDA"
	markerMainSuccesses = "🎯 1. PRINCIPAIS ACERTOS QUE GARANTIRAM A VENDA"

	markerPositivePoint  = "✅ 2. PONTO POSITIVO DO ATENDIMENTO"
	markerAttentionPoint = "⚠️ 2. PONTO DE ATENÇÃO"

	markerGeneralNotes = "🔍 3. NOTAS GERAIS DO ATENDIMENTO"
	markerClientInfo   = "👤 4. PERFIL DO CLIENTE SIMULADO"

	markerWhereFailed = "🧩 5. ONDE A CONDUÇÃO FALHOU"
	markerWhatWorked  = "🧩 5. O QUE FUNCIONOU NA CONDUÇÃO"

	markerImprovementPlan = "🛠️ 6. PLANO DE MELHORIA"
	markerExtraTips       = "💡 6. DICAS PARA EVOLUIR AINDA MAIS"

	markerFinalSummary = "🏁 7. RESUMO FINAL"
)

// Placeholder sentences the generator emits when a second-section point has
// no real content. They must not leak into Point.Description.
const (
	placeholderNoPositive  = "Nenhum ponto positivo destacado."
	placeholderNoAttention = "Performance excelente, sem pontos de atenção críticos."
)

// sectionMarkers groups the heading literals that differ between outcomes.
type sectionMarkers struct {
	quickSummary string
	itemList     string
	secondPoint  string
	analysis     string
	tips         string
}

var lostMarkers = sectionMarkers{
	quickSummary: markerQuickSummaryLost,
	itemList:     markerMainErrors,
	secondPoint:  markerPositivePoint,
	analysis:     markerWhereFailed,
	tips:         markerImprovementPlan,
}

var closedMarkers = sectionMarkers{
	quickSummary: markerQuickSummaryClosed,
	itemList:     markerMainSuccesses,
	secondPoint:  markerAttentionPoint,
	analysis:     markerWhatWorked,
	tips:         markerExtraTips,
}

// HasOutcomeHeader reports whether raw contains either evaluation header,
// i.e. whether the blob is an evaluation report rather than an in-character
// chat reply.
func HasOutcomeHeader(raw string) bool {
	return indexOfAny(raw, HeaderSaleLost, HeaderSaleClosed) >= 0
}
