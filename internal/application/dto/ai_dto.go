package dto

// ChatRequest pregunta del usuario al asesor de IA.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// AIAdviceDTO respuesta estructurada del asesor de IA.
type AIAdviceDTO struct {
	Advice      string   `json:"advice"`
	ActionItems []string `json:"action_items,omitempty"`
}
