package dto

// MergeResult resultado de la unificación de items duplicados.
// Total cuenta los grupos distintos procesados (se calcula antes de reinsertar);
// Descartados lista las claves de grupo cuya reinserción falló y fue omitida.
type MergeResult struct {
	OK          bool     `json:"ok"`
	Total       int      `json:"total"`
	Descartados []string `json:"descartados,omitempty"`
}
