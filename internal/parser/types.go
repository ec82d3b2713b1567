package parser

// llmReply is the constrained JSON payload the model must answer with.
// Anything that does not unmarshal into this shape is a parse failure.
type llmReply struct {
	Intencion  string   `json:"intencion"`
	Datos      llmDatos `json:"datos"`
	Confianza  string   `json:"confianza"`
	Aclaracion string   `json:"aclaracion"`
}

// llmDatos carries the extracted event fields. Dates may come back as
// YYYY-MM-DD or as relative Spanish words; both are resolved locally.
type llmDatos struct {
	Titulo        string `json:"titulo"`
	Fecha         string `json:"fecha"`
	HoraInicio    string `json:"hora_inicio"`
	HoraFin       string `json:"hora_fin"`
	DiaCompleto   bool   `json:"dia_completo"`
	RangoDias     int    `json:"rango_dias"`
	Descripcion   string `json:"descripcion"`
	Ubicacion     string `json:"ubicacion"`
	Prioridad     string `json:"prioridad"`
	TextoBusqueda string `json:"texto_busqueda"`
}
