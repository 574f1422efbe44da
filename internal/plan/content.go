// Package plan holds the improvement-plan report content and assembles it
// into a document model. Everything here is compiled in; the content never
// varies at runtime except for the two embedded timestamps.
package plan

// OutputFilename is the fixed name of the generated artifact.
const OutputFilename = "PIANO_MIGLIORAMENTO_RAG.docx"

// Phase describes one improvement phase: what it is, what gets done, and how
// success is measured. Phases have no identity beyond their position.
type Phase struct {
	Number      int
	Title       string
	Description string
	Activities  []string
	Metrics     []string
}

// TimelineRow is one data row of the implementation timeline table.
type TimelineRow struct {
	Phase    string
	Duration string
	Priority string
}

// ToolGroup is a labeled sublist of recommended tools.
type ToolGroup struct {
	Label string
	Tools []string
}

const (
	documentTitle = "Piano di Miglioramento RAG Documentale"
	subtitleBase  = "Sistema DocN"

	summaryText = "Questo documento delinea un approccio strutturato in fasi per migliorare " +
		"progressivamente il sistema RAG (Retrieval-Augmented Generation) documentale. " +
		"L'obiettivo è ottimizzare la qualità delle risposte, ridurre le allucinazioni, " +
		"migliorare la rilevanza dei risultati e garantire un'esperienza utente eccellente."

	conclusionPart1 = "Il miglioramento di un sistema RAG documentale è un processo iterativo che richiede " +
		"attenzione continua e validazione empirica. Le fasi proposte in questo documento " +
		"forniscono una roadmap strutturata per evolvere progressivamente il sistema, " +
		"bilanciando qualità delle risposte, performance, e esperienza utente."

	conclusionPart2 = "È fondamentale procedere in modo incrementale, validando ogni miglioramento con " +
		"metriche oggettive e feedback degli utenti prima di passare alla fase successiva. " +
		"Il successo a lungo termine dipenderà dalla capacità di monitorare costantemente " +
		"il sistema e adattarsi alle esigenze emergenti degli utenti."

	footerAttribution = "Sistema DocN - Archiviazione Documentale con RAG"
)

// TimelineHeader is the literal header row of the timeline table.
var TimelineHeader = []string{"Fase", "Durata Stimata", "Priorità"}

// CurrentFeatures lists the capabilities of the current system.
func CurrentFeatures() []string {
	return []string{
		"Embedding vettoriali per ricerca semantica",
		"Sistema di caching per ottimizzazione prestazioni",
		"Query analysis con HyDE e query rewriting",
		"Reranking con considerazione di diversità (MMR)",
		"Metriche di qualità RAG con RAGAS",
		"Rilevamento di allucinazioni",
		"Verifica delle citazioni",
		"Configurazione modulare per ogni fase RAG",
	}
}

// Phases returns the seven improvement phases in order.
func Phases() []Phase {
	return []Phase{
		{
			Number:      1,
			Title:       "Ottimizzazione degli Embeddings",
			Description: "Migliorare la qualità della rappresentazione vettoriale dei documenti per una ricerca semantica più accurata.",
			Activities: []string{
				"Valutare modelli di embedding alternativi (es. Multilingual-E5, BGE-M3)",
				"Implementare fine-tuning del modello di embedding su documenti specifici del dominio",
				"Ottimizzare il chunking dei documenti (dimensione, overlap, strategie smart)",
				"Implementare chunking semantico basato su struttura del documento",
				"Aggiungere metadati ricchi per ogni chunk (titolo, sezione, keywords)",
				"Validare miglioramenti con metriche di retrieval (MRR, NDCG)",
			},
			Metrics: []string{
				"Mean Reciprocal Rank (MRR) > 0.85",
				"Normalized Discounted Cumulative Gain (NDCG) > 0.80",
				"Riduzione del 30% dei casi di recupero non rilevante",
			},
		},
		{
			Number:      2,
			Title:       "Miglioramento della Ricerca Ibrida",
			Description: "Combinare efficacemente ricerca vettoriale e ricerca testuale per massimizzare la rilevanza.",
			Activities: []string{
				"Implementare ricerca ibrida con BM25 + Vector Search",
				"Ottimizzare il peso relativo tra ricerca semantica e keyword-based",
				"Aggiungere filtri avanzati (data, tipo documento, autore)",
				"Implementare ricerca multi-hop per query complesse",
				"Abilitare query expansion con sinonimi e termini correlati",
				"Implementare cache semantica per query simili",
			},
			Metrics: []string{
				"Precision@5 > 0.90",
				"Recall@10 > 0.85",
				"Tempo medio di risposta < 1.5 secondi",
			},
		},
		{
			Number:      3,
			Title:       "Reranking Avanzato",
			Description: "Riordinare i risultati recuperati utilizzando modelli più sofisticati per massimizzare la rilevanza.",
			Activities: []string{
				"Integrare modelli di reranking specializzati (es. Cohere Rerank, bge-reranker)",
				"Implementare reranking cross-encoder per precisione maggiore",
				"Aggiungere pesi temporali per privilegiare documenti recenti",
				"Ottimizzare il parametro MMR Lambda per bilanciamento rilevanza/diversità",
				"Implementare contextual reranking basato su conversazione",
				"A/B testing di diverse strategie di reranking",
			},
			Metrics: []string{
				"Miglioramento del 25% nella rilevanza percepita dagli utenti",
				"Riduzione del 40% dei click su risultati non rilevanti",
				"Aumento del 30% del tempo di permanenza sulle risposte",
			},
		},
		{
			Number:      4,
			Title:       "Generazione e Sintesi Avanzata",
			Description: "Migliorare la qualità della generazione della risposta finale utilizzando tecniche avanzate di prompt engineering e LLM.",
			Activities: []string{
				"Ottimizzare i prompt di sistema per risposte più accurate e contestuali",
				"Implementare chain-of-thought reasoning per query complesse",
				"Abilitare compressione contestuale per gestire più informazioni",
				"Implementare self-consistency checking (multiple generations + voting)",
				"Aggiungere fact-checking automatico delle risposte generate",
				"Implementare refinement iterativo per risposte di alta qualità",
				"Gestire meglio le citazioni con link diretti ai documenti fonte",
			},
			Metrics: []string{
				"Faithfulness score (RAGAS) > 0.90",
				"Answer relevancy score (RAGAS) > 0.85",
				"Riduzione del 50% delle allucinazioni rilevate",
			},
		},
		{
			Number:      5,
			Title:       "Monitoraggio e Quality Assurance",
			Description: "Implementare un sistema robusto di monitoraggio continuo e miglioramento della qualità.",
			Activities: []string{
				"Dashboard real-time per metriche RAG (latency, relevance, quality)",
				"Sistema di logging completo per analisi post-mortem",
				"Implementare human-in-the-loop feedback per miglioramento continuo",
				"A/B testing framework per confrontare miglioramenti",
				"Alert automatici per degradazione della qualità",
				"Raccolta e analisi di query fallite per training futuro",
				"Implementare regression testing per prevenire degradazioni",
			},
			Metrics: []string{
				"Copertura di monitoring su 100% delle query",
				"Tempo medio di detection dei problemi < 5 minuti",
				"Feedback degli utenti raccolto su almeno il 10% delle query",
			},
		},
		{
			Number:      6,
			Title:       "Ottimizzazione Prestazioni e Scalabilità",
			Description: "Garantire che il sistema RAG possa gestire un carico crescente mantenendo performance eccellenti.",
			Activities: []string{
				"Implementare caching multi-livello (query, embeddings, risultati)",
				"Ottimizzare le query al database vettoriale (batch processing, indexing)",
				"Implementare pre-computation degli embeddings per documenti statici",
				"Configurare auto-scaling basato sul carico",
				"Ottimizzare l'utilizzo della memoria e delle risorse GPU/CPU",
				"Implementare rate limiting e throttling intelligente",
				"Load testing e stress testing del sistema",
			},
			Metrics: []string{
				"Throughput > 100 query/secondo",
				"P95 latency < 2 secondi",
				"Utilizzo risorse ottimale (CPU < 70%, memoria < 80%)",
			},
		},
		{
			Number:      7,
			Title:       "Personalizzazione e Context Awareness",
			Description: "Rendere il sistema più intelligente adattandolo al contesto e alle preferenze dell'utente.",
			Activities: []string{
				"Implementare user profiling per personalizzare i risultati",
				"Context tracking per conversazioni multi-turn più coerenti",
				"Apprendimento dalle interazioni utente (implicit feedback)",
				"Personalizzazione del linguaggio e del tono delle risposte",
				"Supporto multi-lingua con modelli specifici per lingua",
				"Memorizzazione delle preferenze dell'utente",
				"Raccomandazioni proattive basate su query precedenti",
			},
			Metrics: []string{
				"Aumento del 40% della soddisfazione utente",
				"Riduzione del 30% delle query di follow-up",
				"Aumento del 25% del tasso di utilizzo ripetuto",
			},
		},
	}
}

// TimelineRows returns the seven data rows of the implementation timeline.
func TimelineRows() []TimelineRow {
	return []TimelineRow{
		{"Fase 1: Ottimizzazione Embeddings", "2-3 settimane", "Alta"},
		{"Fase 2: Ricerca Ibrida", "3-4 settimane", "Alta"},
		{"Fase 3: Reranking Avanzato", "2-3 settimane", "Media"},
		{"Fase 4: Generazione Avanzata", "3-4 settimane", "Alta"},
		{"Fase 5: Monitoraggio e QA", "2-3 settimane", "Alta"},
		{"Fase 6: Prestazioni e Scalabilità", "2-3 settimane", "Media"},
		{"Fase 7: Personalizzazione", "4-5 settimane", "Bassa"},
	}
}

// BestPractices lists the general recommendations section items.
func BestPractices() []string {
	return []string{
		"Implementare ogni fase in modo incrementale con A/B testing",
		"Validare ogni miglioramento con metriche oggettive prima di procedere",
		"Mantenere sempre una versione stabile in produzione (rollback ready)",
		"Documentare tutte le modifiche e i risultati dei test",
		"Coinvolgere gli utenti finali per feedback qualitativo",
		"Automatizzare il testing per prevenire regressioni",
		"Monitorare costantemente costi e performance",
		"Rivedere periodicamente le priorità in base ai risultati",
	}
}

// ToolGroups returns the four labeled tool-recommendation sublists.
func ToolGroups() []ToolGroup {
	return []ToolGroup{
		{
			Label: "Embedding Models:",
			Tools: []string{
				"Multilingual-E5-large (per documenti multilingua)",
				"BGE-M3 (per supporto multilingua robusto)",
				"OpenAI text-embedding-3-large (per qualità superiore)",
			},
		},
		{
			Label: "Reranking:",
			Tools: []string{
				"Cohere Rerank API",
				"bge-reranker-large",
				"Cross-encoders (sentence-transformers)",
			},
		},
		{
			Label: "Vector Databases:",
			Tools: []string{
				"Qdrant (attuale, ottimizzare configurazione)",
				"Pinecone (per scalabilità cloud)",
				"Weaviate (per ricerca ibrida avanzata)",
			},
		},
		{
			Label: "Monitoring:",
			Tools: []string{
				"LangSmith (per tracing completo LLM)",
				"Prometheus + Grafana (per metriche real-time)",
				"Sentry (per error tracking)",
				"Custom dashboard con Application Insights",
			},
		},
	}
}
