package ports

import "context"

// LLM puerto hacia el proveedor de modelos de lenguaje (Anthropic).
// Complete envía un prompt de sistema y el mensaje del usuario y devuelve
// el texto de la respuesta.
type LLM interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
