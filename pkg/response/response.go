package response

// Body is the error envelope used across the whole API: a bare message,
// nothing else. Status codes carry the semantics.
type Body struct {
	Message string `json:"message"`
}

func Error(message string) Body {
	return Body{Message: message}
}
