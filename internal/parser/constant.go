package parser

// Log prefixes
const (
	LogPrefixParse = "internal.parser.Parse"
)

// Intent names the model is allowed to answer with.
const (
	intentNameCreate      = "crear"
	intentNameList        = "listar"
	intentNameDelete      = "eliminar"
	intentNameComplete    = "completar"
	intentNameSupplements = "suplementos"
	intentNameOther       = "otro"
)

// Parser prompts
const (
	PromptIntentSystem = `Sos el analizador de intenciones de un asistente personal de agenda.
Analizá el mensaje del usuario y extraé su intención sobre el calendario.

Las intenciones posibles:
1. crear: agendar un evento, reunión, turno o recordatorio nuevo
2. listar: consultar la agenda de un día o de un rango de días
3. eliminar: borrar o cancelar un evento existente
4. completar: marcar un evento o tarea como hecho
5. suplementos: preguntar por los suplementos del día
6. otro: saludos, charla u otra cosa sin acción de calendario

Respondé SOLO con un objeto JSON, sin markdown ni texto extra, con este formato:
{
  "intencion": "crear|listar|eliminar|completar|suplementos|otro",
  "datos": {
    "titulo": "...",
    "fecha": "YYYY-MM-DD",
    "hora_inicio": "HH:MM",
    "hora_fin": "HH:MM",
    "dia_completo": false,
    "rango_dias": 1,
    "descripcion": "...",
    "ubicacion": "...",
    "prioridad": "alta|media|baja",
    "texto_busqueda": "..."
  },
  "confianza": "alta|ambigua",
  "aclaracion": "pregunta para el usuario si falta un dato necesario"
}

Reglas:
- Omití del JSON los campos que no apliquen.
- "fecha" SIEMPRE en formato YYYY-MM-DD, resuelta con el contexto temporal.
- "hora_inicio" y "hora_fin" en formato 24hs HH:MM.
- Para eliminar o completar, poné en "texto_busqueda" las palabras que identifican al evento.
- Si falta un dato necesario (la fecha o la hora de un evento nuevo), usá "confianza": "ambigua" y formulá la "aclaracion".
- No inventes datos que el usuario no dijo.`

	TimeContextTemplate = `
[CONTEXTO TEMPORAL]
- Hoy: %s (%s)
- Esta semana: de %s a %s
- Mañana: %s
- Zona horaria: %s

REGLAS IMPORTANTES:
1. Si el usuario dice "esta semana", usá el rango %s a %s
2. Si el usuario dice "mañana", la fecha es %s
3. NUNCA preguntes por fechas que podés deducir de este contexto
4. El formato de fecha es SIEMPRE YYYY-MM-DD`
)

// Parser configuration
const (
	ParserTemperature     = 0.1
	ParserMaxOutputTokens = 512
)

// Model answer markers
const (
	confianzaAmbigua = "ambigua"
)

// Clarifying questions used when the model omits a needed field.
const (
	ClarifyMissingTitle = "¿Cómo se llama el evento?"
	ClarifyMissingDate  = "¿Para qué día es el evento?"
	ClarifyMissingTime  = "¿A qué hora empieza el evento?"
	ClarifyMissingQuery = "¿Qué evento querés buscar?"
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, falling back to UNPARSEABLE"
	ErrMsgEmptyResponse   = "Empty LLM response, falling back to UNPARSEABLE"
	ErrMsgJSONParseFailed = "Failed to parse LLM JSON, falling back to UNPARSEABLE"
	ErrMsgUnknownIntent   = "Unknown intent name from LLM, falling back to UNPARSEABLE"
)
