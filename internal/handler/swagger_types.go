package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ClassifyTextRequest is the body of POST /classify-text.
type ClassifyTextRequest struct {
	Content string `json:"content" example:"Preciso de uma atualização sobre o chamado 12345, por favor."`
}

// ClassifyAPIRequest is the JSON or form body of POST /api/classify.
type ClassifyAPIRequest struct {
	Content  string `json:"content" form:"content" example:"Thank you for the quick fix yesterday!"`
	Filename string `json:"filename" form:"filename" example:"message-0042.txt"`
}

// --- Response Types ---

// ClassificationResponse mirrors domain.ClassificationResult for documentation.
type ClassificationResponse struct {
	Category          string  `json:"category" example:"REQUIRES_ACTION" enums:"REQUIRES_ACTION,NO_ACTION_NEEDED"`
	Reasoning         string  `json:"reasoning" example:"O remetente solicita uma atualização de chamado."`
	SuggestedResponse string  `json:"suggested_response" example:"Olá! Recebemos sua solicitação e retornaremos em breve."`
	OriginalContent   string  `json:"original_content" example:"Preciso de uma atualização sobre o chamado 12345, por favor."`
	CharCount         int     `json:"char_count" example:"60"`
	WordCount         int     `json:"word_count" example:"10"`
	Filename          *string `json:"filename" example:"pedido.txt"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Service string `json:"service" example:"mailtriage"`
	Detail  string `json:"detail,omitempty"`
}

// IndexResponse is returned by GET /.
type IndexResponse struct {
	Service   string   `json:"service" example:"mailtriage"`
	Version   string   `json:"version" example:"1.0.0"`
	Endpoints []string `json:"endpoints"`
}
